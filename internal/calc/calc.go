// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/calc/calc.go
// Summary: Generic numeric helpers shared by the UI engine packages.

package calc

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp restricts v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LowerBounds returns v or lo, whichever is larger.
func LowerBounds[T Number](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}

// UpperBounds returns v or hi, whichever is smaller.
func UpperBounds[T Number](v, hi T) T {
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Round rounds half up, matching how pointer deltas are quantized.
func Round(v float32) int {
	return int(math.Floor(float64(v) + 0.5))
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// PointInRect reports whether (px, py) lies inside the half-open rectangle
// starting at (x, y) with the given size.
func PointInRect(px, py, x, y, w, h int) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// RectsOverlap reports whether two rectangles intersect.
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 int) bool {
	return x1 < x2+w2 && x2 < x1+w1 && y1 < y2+h2 && y2 < y1+h1
}

// RectInside reports whether the inner rectangle lies fully inside the outer one.
func RectInside(x, y, w, h, ox, oy, ow, oh int) bool {
	return x >= ox && y >= oy && x+w <= ox+ow && y+h <= oy+oh
}
