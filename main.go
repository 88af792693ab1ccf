package main

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/trellis/config"
	"github.com/OpticalFlyer/trellis/geom"
	"github.com/OpticalFlyer/trellis/gfx"
	"github.com/OpticalFlyer/trellis/ui"
)

const defaultConfigPath = "trellis.yaml"

var background = color.RGBA{16, 16, 24, 255}

// Trellis implements ebiten.Game interface.
type Trellis struct {
	screen    *gfx.Screen
	input     gfx.Input
	ui        *ui.Controller
	debugMode bool

	status     *ui.Label
	difficulty *ui.Label
	quit       *ui.Button
	plays      int
}

func (t *Trellis) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		t.debugMode = !t.debugMode
	}

	t.ui.Update(t.input.Poll())

	if t.ui.IsInteractingWithUI() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}

	if t.quit.Clicked() {
		return ebiten.Termination
	}
	return nil
}

func (t *Trellis) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	t.screen.SetTarget(screen)
	t.ui.Draw()

	if t.debugMode {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (t *Trellis) Layout(outsideWidth, outsideHeight int) (int, int) {
	t.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// buildMenu lays out a title at the top, a menu panel in the middle and a
// status line in the bottom-left corner.
func (t *Trellis) buildMenu(cfg *config.Config) *ui.TopLevel {
	top := ui.NewTopLevel(t.screen, "top", 0, geom.Rect{W: cfg.Window.Width, H: cfg.Window.Height})

	top.Gravity(geom.Top, 0, 40)
	top.AddLabel(cfg.Window.Title, 0)

	top.Gravity(geom.Center, 0, 0)
	menu := top.AddFrame("menu", 0, geom.Rect{W: 260})
	play := menu.AddButton("Play", 0)
	menu.Grid(1, 2)
	easy := menu.AddButton("Easy", 0)
	hard := menu.AddButton("Hard", 0)
	t.difficulty = menu.AddLabel("Difficulty: easy", 0)
	t.quit = menu.AddButton("Quit", 0)

	top.Gravity(geom.BottomLeft, 8, 8)
	t.status = top.AddLabel("Ready", ui.OptNoClip)
	t.status.Properties().ContentAlign = geom.Left

	play.OnClick(func() {
		t.plays++
		t.status.SetLabel(fmt.Sprintf("Played %d times", t.plays))
	})
	easy.OnClick(func() { t.difficulty.SetLabel("Difficulty: easy") })
	hard.OnClick(func() { t.difficulty.SetLabel("Difficulty: hard") })

	// The frame sizes itself first so the top level centres its real height.
	menu.Refresh()
	top.Refresh()
	return top
}

func main() {
	path := os.Getenv("TRELLIS_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if cfg.Debug {
		ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	ui.SetSpacing(*cfg.UI.Padding, *cfg.UI.Margin)

	face, err := gfx.LoadFace(nil, cfg.UI.FontSize)
	if err != nil {
		log.Fatalf("loading font: %v", err)
	}

	app := &Trellis{
		screen:    gfx.NewScreen(face),
		debugMode: cfg.Debug,
	}
	app.ui = ui.NewController(app.buildMenu(cfg))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if *cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
