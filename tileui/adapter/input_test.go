// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package adapter

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tilegui/input"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestInputRuneHeldUntilQuiet(t *testing.T) {
	buf := input.NewBuffer()
	in := NewInput(buf, 0)

	if !in.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), epoch) {
		t.Fatalf("key event not handled")
	}
	if got := buf.Typed(); len(got) != 1 || got[0] != 'a' {
		t.Fatalf("typed = %q, want a", got)
	}
	if !buf.IsHeld(input.RuneKey('a')) {
		t.Fatalf("rune key not held after event")
	}

	// A repeat inside the release window keeps the key held.
	in.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), epoch.Add(100*time.Millisecond))
	in.Flush(epoch.Add(150 * time.Millisecond))
	if !buf.IsHeld(input.RuneKey('a')) {
		t.Fatalf("key released while still repeating")
	}
	if got := len(buf.Typed()); got != 2 {
		t.Fatalf("typed %d runes, want 2 for the repeat", got)
	}

	in.Flush(epoch.Add(100*time.Millisecond + DefaultKeyRelease))
	if buf.IsHeld(input.RuneKey('a')) {
		t.Fatalf("key still held after quiet period")
	}
	if ups := buf.KeysUp(); len(ups) != 1 || ups[0] != input.RuneKey('a') {
		t.Fatalf("keys up = %v", ups)
	}
}

func TestInputEditingKeysType(t *testing.T) {
	buf := input.NewBuffer()
	in := NewInput(buf, time.Second)
	in.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), epoch)
	in.HandleEvent(tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), epoch)
	in.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), epoch)
	in.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), epoch)

	want := []rune{'\b', 0x7f, '\n'}
	got := buf.Typed()
	if len(got) != len(want) {
		t.Fatalf("typed = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("typed[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	for _, k := range []input.Key{input.KeyBackspace, input.KeyDelete, input.KeyEnter, input.KeyUp} {
		if !buf.IsHeld(k) {
			t.Fatalf("%v not held", k)
		}
	}
}

func TestInputMouseTransitions(t *testing.T) {
	buf := input.NewBuffer()
	in := NewInput(buf, 0)

	in.HandleEvent(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone), epoch)
	if x, y := buf.Pointer(); x != 28 || y != 20 {
		t.Fatalf("pointer = (%d,%d), want (28,20)", x, y)
	}
	if downs := buf.MouseDowns(); len(downs) != 1 || downs[0] != input.ButtonLeft {
		t.Fatalf("downs = %v", downs)
	}

	// Drag reports the same mask and must not press again.
	in.HandleEvent(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone), epoch)
	if downs := buf.MouseDowns(); len(downs) != 1 {
		t.Fatalf("drag pressed again: %v", downs)
	}
	in.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone), epoch)
	if ups := buf.MouseUps(); len(ups) != 1 || ups[0] != input.ButtonLeft {
		t.Fatalf("ups = %v", ups)
	}
	if buf.AnyButtonHeld() {
		t.Fatalf("button still held after release")
	}
}

func TestInputWheelScrolls(t *testing.T) {
	buf := input.NewBuffer()
	in := NewInput(buf, 0)
	in.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone), epoch)
	if amount, ok := buf.Scrolled(); !ok || amount != 1 {
		t.Fatalf("scroll = %v,%v want 1,true", amount, ok)
	}
	if len(buf.MouseDowns()) != 0 {
		t.Fatalf("wheel produced a button press")
	}
	buf.Reset()
	in.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone), epoch)
	if amount, _ := buf.Scrolled(); amount != -1 {
		t.Fatalf("scroll up = %v, want -1", amount)
	}
}

func TestInputIgnoresOtherEvents(t *testing.T) {
	in := NewInput(input.NewBuffer(), 0)
	if in.HandleEvent(tcell.NewEventResize(80, 25), epoch) {
		t.Fatalf("resize reported as input")
	}
}
