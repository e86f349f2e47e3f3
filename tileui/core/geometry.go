// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/geometry.go
// Summary: Tile grid constants, internal-resolution viewport and game camera math.

package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/framegrace/tilegui/internal/calc"
)

// TileSize is the pixel edge of one tile. Widget positions and sizes are
// expressed in tiles; window positions and the pointer in pixels.
const (
	TileSize     = 8
	TileSizeHalf = TileSize / 2
)

// ViewportMode selects how the screen maps onto the internal resolution.
type ViewportMode int

const (
	ViewportFit ViewportMode = iota
	ViewportStretch
	ViewportPixelPerfect
)

func (m ViewportMode) String() string {
	switch m {
	case ViewportFit:
		return "fit"
	case ViewportStretch:
		return "stretch"
	case ViewportPixelPerfect:
		return "pixel_perfect"
	default:
		return fmt.Sprintf("ViewportMode(%d)", int(m))
	}
}

// ParseViewportMode accepts the names produced by String.
func ParseViewportMode(name string) (ViewportMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fit", "":
		return ViewportFit, nil
	case "stretch":
		return ViewportStretch, nil
	case "pixel_perfect", "pixelperfect":
		return ViewportPixelPerfect, nil
	}
	return ViewportFit, fmt.Errorf("unknown viewport mode %q", name)
}

// Viewport maps device coordinates onto the internal resolution.
type Viewport struct {
	Mode          ViewportMode
	Width, Height int // internal resolution
	ScreenWidth   int
	ScreenHeight  int
}

func (v Viewport) scale() (sx, sy, offX, offY float64) {
	if v.ScreenWidth <= 0 || v.ScreenHeight <= 0 {
		return 1, 1, 0, 0
	}
	fx := float64(v.ScreenWidth) / float64(v.Width)
	fy := float64(v.ScreenHeight) / float64(v.Height)
	switch v.Mode {
	case ViewportStretch:
		return fx, fy, 0, 0
	case ViewportPixelPerfect:
		s := math.Max(1, math.Floor(math.Min(fx, fy)))
		return s, s, (float64(v.ScreenWidth) - float64(v.Width)*s) / 2, (float64(v.ScreenHeight) - float64(v.Height)*s) / 2
	default:
		s := math.Min(fx, fy)
		return s, s, (float64(v.ScreenWidth) - float64(v.Width)*s) / 2, (float64(v.ScreenHeight) - float64(v.Height)*s) / 2
	}
}

// Unproject converts a device position to an internal-resolution position.
// The result is clamped into the internal resolution.
func (v Viewport) Unproject(sx, sy int) (int, int) {
	scaleX, scaleY, offX, offY := v.scale()
	x := int(math.Floor((float64(sx) - offX) / scaleX))
	y := int(math.Floor((float64(sy) - offY) / scaleY))
	return calc.Clamp(x, 0, v.Width-1), calc.Clamp(y, 0, v.Height-1)
}

// Project converts an internal position to device coordinates.
func (v Viewport) Project(x, y int) (int, int) {
	scaleX, scaleY, offX, offY := v.scale()
	return int(math.Floor(float64(x)*scaleX + offX)), int(math.Floor(float64(y)*scaleY + offY))
}

// Camera is an orthographic view onto the game world. X and Y are the world
// position shown at the centre of the view.
type Camera struct {
	X, Y float32
	Zoom float32
}

// Unproject converts a position on a view of the given pixel size into
// world coordinates.
func (c Camera) Unproject(x, y, width, height int) (float32, float32) {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return c.X + (float32(x)-float32(width)/2)*zoom, c.Y + (float32(y)-float32(height)/2)*zoom
}
