// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/metrics/metrics.go
// Summary: Text metrics for the UI engine: terminal cell widths and font faces.
// Usage: Cells backs terminal composers, Face backs pixel composers. Both are
//   pure queries and never retain the strings they measure.

package metrics

import (
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/framegrace/tilegui/tileui/core"
)

// Cells measures text in terminal cells, one tile per cell. Wide runes
// take two tiles. The font argument is ignored.
type Cells struct{}

// TextWidth implements core.TextMetrics.
func (Cells) TextWidth(_ any, text string) int {
	return runewidth.StringWidth(text) * core.TileSize
}

// GlyphHeight implements core.TextMetrics.
func (Cells) GlyphHeight(any) int {
	return core.TileSize
}

// Face measures text with golang.org/x/image font faces. Fonts are looked
// up by key; a font.Face passed directly is used as is and unknown keys
// fall back to the default face.
type Face struct {
	mu       sync.RWMutex
	faces    map[any]font.Face
	fallback font.Face
}

// NewFace creates metrics whose default face is basicfont.Face7x13.
func NewFace() *Face {
	return &Face{faces: make(map[any]font.Face), fallback: basicfont.Face7x13}
}

// Register binds a font key used by widgets to a face.
func (f *Face) Register(key any, face font.Face) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faces[key] = face
}

// SetDefault replaces the fallback face.
func (f *Face) SetDefault(face font.Face) {
	if face == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fallback = face
}

func (f *Face) lookup(key any) font.Face {
	if face, ok := key.(font.Face); ok {
		return face
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if key != nil {
		if face, ok := f.faces[key]; ok {
			return face
		}
	}
	return f.fallback
}

// TextWidth implements core.TextMetrics.
func (f *Face) TextWidth(key any, text string) int {
	return font.MeasureString(f.lookup(key), text).Ceil()
}

// GlyphHeight implements core.TextMetrics.
func (f *Face) GlyphHeight(key any) int {
	m := f.lookup(key).Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// NewGoFont parses the bundled Go Regular font at size points and 72 DPI.
func NewGoFont(size float64) (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

var (
	_ core.TextMetrics = Cells{}
	_ core.TextMetrics = (*Face)(nil)
)
