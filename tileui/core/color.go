// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/color.go
// Summary: Tint colors and the scoped tint stack used while composing a frame.

package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB tint with alpha.
type Color struct {
	colorful.Color
	A float64
}

var (
	White       = RGBA(1, 1, 1, 1)
	Black       = RGBA(0, 0, 0, 1)
	Gray        = RGBA(0.5, 0.5, 0.5, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGBA builds a color from float channels in [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{Color: c, A: alpha}, nil
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Mul multiplies two tints channel-wise.
func (c Color) Mul(o Color) Color {
	return RGBA(c.R*o.R, c.G*o.G, c.B*o.B, c.A*o.A)
}

// Blend interpolates towards o in RGB space.
func (c Color) Blend(o Color, t float64) Color {
	return Color{Color: c.Color.BlendRgb(o.Color, t), A: c.A + (o.A-c.A)*t}
}

// Grayscale removes chroma while keeping lightness. Used for windows
// behind a modal.
func (c Color) Grayscale() Color {
	_, _, l := c.Color.Hcl()
	return Color{Color: colorful.Hcl(0, 0, l).Clamped(), A: c.A}
}

// RGBA255 returns 8-bit channels.
func (c Color) RGBA255() (r, g, b, a uint8) {
	r, g, b = c.Color.Clamped().RGB255()
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return r, g, b, uint8(alpha*255 + 0.5)
}

// TintStack accumulates nested tints. Tints are only applied through
// WithTint, so every push is matched by a pop.
type TintStack struct {
	stack []Color
}

// Current returns the product of all active tints.
func (t *TintStack) Current() Color {
	out := White
	for _, c := range t.stack {
		out = out.Mul(c)
	}
	return out
}

// Depth returns the nesting depth.
func (t *TintStack) Depth() int {
	return len(t.stack)
}

// WithTint runs fn with c multiplied into the current tint.
func (t *TintStack) WithTint(c Color, fn func()) {
	t.stack = append(t.stack, c)
	defer func() {
		t.stack = t.stack[:len(t.stack)-1]
	}()
	fn()
}
