// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"testing"
	"time"

	"github.com/framegrace/tilegui/tileui/core"
)

func TestUpdateActionsRespectInterval(t *testing.T) {
	h := newHarness(t, nil)
	btn := core.NewButton(0, 1, 2, 1)
	w := h.newMainWindow(btn)
	fired := 0
	btn.AddUpdateAction(&core.UpdateAction{Interval: 100 * time.Millisecond, OnUpdate: func() { fired++ }})

	h.frames(8)
	if fired != 2 {
		t.Fatalf("expected 2 fires in 128ms, got %d", fired)
	}

	// An action added by another action runs from the next frame on.
	added := 0
	w.AddUpdateAction(&core.UpdateAction{OnUpdate: func() {
		w.AddUpdateAction(&core.UpdateAction{OnUpdate: func() { added++ }})
	}})
	h.frame()
	if added != 0 {
		t.Fatalf("action added during iteration ran in the same frame")
	}
}

func TestSingleUpdateActionFiresOnce(t *testing.T) {
	h := newHarness(t, nil)
	fired := 0
	h.s.AddSingleUpdateAction(&core.UpdateAction{Interval: 50 * time.Millisecond, OnUpdate: func() { fired++ }})
	h.frames(2)
	if fired != 0 {
		t.Fatalf("single action fired before its interval")
	}
	h.frames(5)
	if fired != 1 || len(h.s.SingleUpdateActions()) != 0 {
		t.Fatalf("expected one fire and removal, fired=%d", fired)
	}
}

func TestWindowsStayOnScreen(t *testing.T) {
	h := newHarness(t, nil)
	w := core.NewWindow(300, -20, 10, 5, "edge")
	w.EnforceScreenBounds = true
	h.s.AddWindow(w)
	h.frame()
	if w.X != 240 || w.Y != 0 {
		t.Fatalf("expected window clamped to (240,0), got (%d,%d)", w.X, w.Y)
	}
}
