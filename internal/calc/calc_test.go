// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(1.2, 0, 1); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := Clamp(float32(0.5), 0, 1); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float32]int{0.5: 1, -0.5: 0, 2.49: 2, -2.6: -3, 10: 10}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Fatalf("Round(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	if got := FloorDiv(-1, 8); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := FloorDiv(15, 8); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := FloorDiv(-16, 8); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}
}

func TestPointInRectHalfOpen(t *testing.T) {
	if !PointInRect(0, 0, 0, 0, 8, 8) {
		t.Fatalf("origin should be inside")
	}
	if PointInRect(8, 0, 0, 0, 8, 8) {
		t.Fatalf("right edge should be outside")
	}
	if !RectInside(2, 2, 4, 4, 0, 0, 8, 8) || RectInside(6, 6, 4, 4, 0, 0, 8, 8) {
		t.Fatalf("RectInside mismatch")
	}
	if !RectsOverlap(0, 0, 4, 4, 3, 3, 4, 4) || RectsOverlap(0, 0, 4, 4, 4, 0, 4, 4) {
		t.Fatalf("RectsOverlap mismatch")
	}
}
