package gfx

import "image/color"

// maxCachedTexts bounds the number of rendered strings kept by a Screen.
const maxCachedTexts = 256

type textKey struct {
	s string
	c color.RGBA
}

// textCache keeps the most recently rendered textures. The oldest entry is
// dropped first; widgets still holding a dropped texture keep drawing it.
type textCache struct {
	limit int
	items map[textKey]*Texture
	order []textKey
}

func newTextCache(limit int) *textCache {
	return &textCache{limit: limit, items: make(map[textKey]*Texture)}
}

func (c *textCache) get(k textKey) (*Texture, bool) {
	t, ok := c.items[k]
	return t, ok
}

func (c *textCache) put(k textKey, t *Texture) {
	if _, ok := c.items[k]; ok {
		c.items[k] = t
		return
	}
	for len(c.order) >= c.limit {
		delete(c.items, c.order[0])
		c.order = c.order[1:]
	}
	c.items[k] = t
	c.order = append(c.order, k)
}

func (c *textCache) len() int { return len(c.items) }
