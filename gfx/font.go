package gfx

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace parses ttf at the given size. A nil ttf loads Go Regular.
func LoadFace(ttf []byte, size float64) (*text.GoTextFace, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}
