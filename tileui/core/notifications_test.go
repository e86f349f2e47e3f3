// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/tileui/core"
)

func TestNotificationLifecycle(t *testing.T) {
	h := newHarness(t, nil)
	n := core.NewNotification("saved")
	removed := 0
	n.OnRemove = func() { removed++ }
	h.s.AddNotification(n)
	if n.State() != core.NotificationInitDisplay {
		t.Fatalf("expected short text to display directly, got %v", n.State())
	}

	h.frame()
	if n.State() != core.NotificationDisplay {
		t.Fatalf("expected display state, got %v", n.State())
	}
	h.clock.Advance(3 * time.Second)
	h.frame()
	if n.State() != core.NotificationFadeOut {
		t.Fatalf("expected fade-out, got %v", n.State())
	}
	if a := h.s.NotificationAlpha(n); a != 1 {
		t.Fatalf("expected full alpha at fade start, got %v", a)
	}
	h.clock.Advance(100 * time.Millisecond)
	if a := h.s.NotificationAlpha(n); math.Abs(float64(a)-0.5) > 0.01 {
		t.Fatalf("expected half alpha mid fade, got %v", a)
	}
	h.clock.Advance(200 * time.Millisecond)
	h.frame()
	if len(h.s.Notifications()) != 0 || removed != 1 {
		t.Fatalf("expected notification removed once, removed=%d", removed)
	}
}

func TestLongNotificationScrolls(t *testing.T) {
	h := newHarness(t, nil)
	n := core.NewNotification(strings.Repeat("x", 100))
	h.s.AddNotification(n)
	if n.State() != core.NotificationInitScroll {
		t.Fatalf("expected scrolling notification")
	}
	h.frames(3)
	if n.State() != core.NotificationScroll || n.Scroll() != 0 {
		t.Fatalf("expected scroll to wait, got state %v scroll %d", n.State(), n.Scroll())
	}
	h.clock.Advance(500 * time.Millisecond)
	h.frame()
	if n.Scroll() != 1 {
		t.Fatalf("expected scroll to advance, got %d", n.Scroll())
	}
	h.frames(100)
	if n.State() != core.NotificationDisplay || n.Scroll() != 88 {
		t.Fatalf("expected scroll to stop at 88, got state %v scroll %d", n.State(), n.Scroll())
	}
}

func TestNotificationQueueIsBounded(t *testing.T) {
	h := newHarness(t, func(o *core.Options) { o.NotificationsMax = 2 })
	first := core.NewNotification("one")
	dropped := false
	first.OnRemove = func() { dropped = true }
	h.s.AddNotification(first)
	h.s.AddNotification(core.NewNotification("two"))
	h.s.AddNotification(core.NewNotification("three"))
	if !dropped || len(h.s.Notifications()) != 2 {
		t.Fatalf("expected oldest dropped, have %d", len(h.s.Notifications()))
	}
}

func TestClickableNotificationIsHitFirst(t *testing.T) {
	h := newHarness(t, nil)
	bar := core.NewScrollBar(0, 0, 40, core.Horizontal)
	h.s.AddScreenComponent(bar)
	n := core.NewNotification("click me")
	clicks := 0
	n.OnMouseClick = func(input.MouseButton) { clicks++ }
	h.s.AddNotification(n)

	h.click(100, 4)
	if clicks != 1 || bar.ButtonPressed {
		t.Fatalf("expected notification to take the click, clicks=%d", clicks)
	}
}

func TestScrollOverNotificationReachesIt(t *testing.T) {
	h := newHarness(t, nil)
	bar := core.NewScrollBar(0, 0, 40, core.Horizontal)
	h.s.AddScreenComponent(bar)
	n := core.NewNotification("scroll me")
	var scrolled []float32
	n.OnMouseScroll = func(amount float32) { scrolled = append(scrolled, amount) }
	h.s.AddNotification(n)

	h.moveTo(100, 4)
	h.in.Scroll(2)
	h.frame()
	if len(scrolled) != 1 || scrolled[0] != 2 {
		t.Fatalf("notification scroll callbacks = %v, want [2]", scrolled)
	}
	if bar.Scrolled != 0 {
		t.Fatalf("scroll bar under the notification moved to %v", bar.Scrolled)
	}
}
