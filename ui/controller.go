package ui

// Controller drives a widget tree from the host loop: events first, then
// one update, then one draw per frame.
type Controller struct {
	root *TopLevel

	windowWidth  int
	windowHeight int
}

// NewController creates a controller for root.
func NewController(root *TopLevel) *Controller {
	return &Controller{root: root}
}

// Root returns the tree the controller drives.
func (c *Controller) Root() *TopLevel {
	return c.root
}

// Update feeds events to the tree in order and then updates it.
func (c *Controller) Update(events []Event) {
	for _, ev := range events {
		c.root.Event(ev)
	}
	c.root.Update()
}

// Draw draws the tree.
func (c *Controller) Draw() {
	c.root.Draw()
}

// UpdateWindowSize sends a resize event to the tree when the window size
// differs from the last one seen.
func (c *Controller) UpdateWindowSize(width, height int) {
	if width == c.windowWidth && height == c.windowHeight {
		return
	}
	c.windowWidth, c.windowHeight = width, height
	c.root.Event(Event{Kind: EventWindowResize, Width: width, Height: height})
}

// IsInteractingWithUI returns true if the pointer is over a button or a
// button is held down.
func (c *Controller) IsInteractingWithUI() bool {
	return anyButton(c.root.Children(), func(b *Button) bool {
		return b.state == StateActive || b.state == StateDown
	})
}

type parentWidget interface {
	Children() WidgetList
}

func anyButton(widgets WidgetList, pred func(*Button) bool) bool {
	for _, w := range widgets {
		if !w.Shown() {
			continue
		}
		switch v := w.(type) {
		case *Button:
			if pred(v) {
				return true
			}
		case parentWidget:
			if anyButton(v.Children(), pred) {
				return true
			}
		}
	}
	return false
}
