// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/tileui/core"
)

func TestComponentOwnershipIsExclusive(t *testing.T) {
	h := newHarness(t, nil)
	w1 := h.newMainWindow()
	w2 := core.NewWindow(200, 100, 8, 8, "Other")
	h.s.AddWindow(w2)

	btn := core.NewButton(0, 1, 2, 1)
	w1.AddComponent(btn)
	w2.AddComponent(btn)
	h.s.AddScreenComponent(btn)
	if btn.Window() != w1 || len(w2.Components) != 0 || len(h.s.ScreenComponents()) != 0 {
		t.Fatalf("component was attached twice")
	}

	w2.RemoveComponent(btn)
	if btn.Window() != w1 {
		t.Fatalf("removing from a foreign window detached the component")
	}
	w1.RemoveComponent(btn)
	if btn.Attached() || len(w1.Components) != 0 {
		t.Fatalf("expected component detached")
	}
	h.s.AddScreenComponent(btn)
	if !btn.OnScreen() || len(h.s.ScreenComponents()) != 1 {
		t.Fatalf("expected component on screen")
	}
	if err := h.s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestAttachAndDetachResetInteraction(t *testing.T) {
	h := newHarness(t, nil)
	tf := core.NewTextField(0, 1, 10)
	unfocused := 0
	tf.OnUnFocus = func() { unfocused++ }
	h.newMainWindow(tf)

	h.click(20, 26)
	if h.s.FocusedTextField() != tf {
		t.Fatalf("expected field focused")
	}
	// A no-op attach still resets transient state.
	h.s.AddScreenComponent(nil)
	if h.s.Active() != nil {
		t.Fatalf("expected interaction reset on attach, got %T", h.s.Active())
	}
	if unfocused != 0 {
		t.Fatalf("reset must not fire callbacks")
	}
}

func TestWindowComponentChangesResetInteraction(t *testing.T) {
	h := newHarness(t, nil)
	tf := core.NewTextField(0, 1, 10)
	unfocused := 0
	tf.OnUnFocus = func() { unfocused++ }
	w := h.newMainWindow(tf)
	extra := core.NewButton(0, 3, 4, 1)

	h.click(20, 26)
	if h.s.FocusedTextField() != tf {
		t.Fatalf("expected field focused")
	}
	w.AddComponent(extra)
	if h.s.FocusedTextField() != nil {
		t.Fatalf("adding a component kept the field focused")
	}

	h.click(20, 26)
	if h.s.FocusedTextField() != tf {
		t.Fatalf("expected field focused again")
	}
	w.RemoveComponent(extra)
	if h.s.Active() != nil {
		t.Fatalf("removing a component kept %T active", h.s.Active())
	}
	if unfocused != 0 {
		t.Fatalf("reset must not fire callbacks, got %d", unfocused)
	}
}

func TestAttachClearsGameTooltip(t *testing.T) {
	h := newHarness(t, nil)
	tip := core.NewTooltip("terrain")
	h.s.SetGameTooltip(tip)

	h.moveTo(300, 230)
	if h.s.Tooltip() != tip {
		t.Fatalf("expected game tooltip while nothing is hovered")
	}
	h.s.AddWindow(core.NewWindow(8, 8, 4, 4, "Late"))
	h.clock.Advance(2 * time.Second)
	h.frame()
	if h.s.Tooltip() != nil {
		t.Fatalf("game tooltip survived an attach")
	}
}

func TestRemovingComponentClearsItsInteraction(t *testing.T) {
	h := newHarness(t, nil)
	btn := core.NewButton(0, 1, 4, 1)
	w := h.newMainWindow(btn)

	h.press(20, 26)
	if h.s.PressedButton() != btn {
		t.Fatalf("expected button pressed")
	}
	w.RemoveComponent(btn)
	if h.s.Active() != nil || h.s.Hover() == core.Target(btn) {
		t.Fatalf("removed component still referenced")
	}
	h.release()
}

func TestWindowReaddRestoresPlacement(t *testing.T) {
	h := newHarness(t, nil)
	w := h.newMainWindow()

	h.press(20, 18)
	if h.s.DraggedWindow() != w {
		t.Fatalf("expected title bar press to start a drag")
	}
	h.moveTo(60, 58)
	h.release()
	if w.X != 56 || w.Y != 56 {
		t.Fatalf("expected window at (56,56), got (%d,%d)", w.X, w.Y)
	}

	// Two quick clicks on the title bar fold the window.
	h.clock.Advance(time.Second)
	h.press(60, 58)
	h.release()
	h.press(60, 58)
	h.release()
	if !w.Folded {
		t.Fatalf("expected double click to fold the window")
	}

	h.s.RemoveWindow(w)
	if w.X != 16 || w.Y != 16 || w.Folded {
		t.Fatalf("expected placement restored, got (%d,%d) folded=%v", w.X, w.Y, w.Folded)
	}

	w.SetPosition(30, 40)
	h.s.AddWindow(w)
	w.X = 100
	h.s.RemoveWindow(w)
	if w.X != 30 || w.Y != 40 {
		t.Fatalf("expected SetPosition to stick, got (%d,%d)", w.X, w.Y)
	}
}

func TestBringWindowToFrontKeepsPinnedOnTop(t *testing.T) {
	h := newHarness(t, nil)
	a := core.NewWindow(0, 0, 4, 4, "a")
	b := core.NewWindow(0, 0, 4, 4, "b")
	pinned := core.NewWindow(0, 0, 4, 4, "pinned")
	pinned.AlwaysOnTop = true

	h.s.AddWindow(a)
	h.s.AddWindow(pinned)
	h.s.AddWindow(b)
	assertOrder(t, h.s.Windows(), a, b, pinned)

	h.s.BringWindowToFront(a)
	assertOrder(t, h.s.Windows(), b, a, pinned)

	h.s.BringWindowToFront(pinned)
	assertOrder(t, h.s.Windows(), b, a, pinned)
}

func assertOrder(t *testing.T, got []*core.Window, want ...*core.Window) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d windows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("window %d: expected %q, got %q", i, want[i].Title, got[i].Title)
		}
	}
}

func TestModalGatesInputAndQueues(t *testing.T) {
	h := newHarness(t, nil)
	outside := core.NewButton(0, 1, 4, 1)
	outsidePresses := 0
	outside.OnPress = func() { outsidePresses++ }
	h.newMainWindow(outside)

	modal := core.NewWindow(200, 100, 8, 6, "Confirm")
	inside := core.NewButton(0, 1, 4, 1)
	insidePresses := 0
	inside.OnPress = func() { insidePresses++ }
	modal.AddComponent(inside)

	h.s.OpenModal(modal)
	if h.s.Modal() != modal || !modal.OnScreen() {
		t.Fatalf("expected modal attached and active")
	}
	h.click(20, 26)
	if outsidePresses != 0 {
		t.Fatalf("press outside the modal was dispatched")
	}
	h.click(204, 110)
	if insidePresses != 1 {
		t.Fatalf("expected press inside the modal, got %d", insidePresses)
	}

	second := core.NewWindow(40, 150, 6, 4, "Second")
	h.s.OpenModal(second)
	if h.s.Modal() != modal || len(h.s.ModalQueue()) != 1 {
		t.Fatalf("expected second modal queued")
	}
	h.s.CloseModal()
	if modal.OnScreen() || h.s.Modal() != second || len(h.s.ModalQueue()) != 0 {
		t.Fatalf("expected queued modal promoted")
	}
	h.s.CloseModal()
	if h.s.Modal() != nil {
		t.Fatalf("expected no modal")
	}
	h.click(20, 26)
	if outsidePresses != 1 {
		t.Fatalf("expected input restored after modal closed")
	}
}

// TestExclusiveSlotHoldsUnderRandomOperations drives random presses,
// releases, focus changes and tree edits and checks the session invariants
// after every frame.
func TestExclusiveSlotHoldsUnderRandomOperations(t *testing.T) {
	h := newHarness(t, nil)
	rng := rand.New(rand.NewSource(7))

	menu := core.NewContextMenu()
	menu.AddItem(core.NewContextMenuItem("Inspect", nil))

	build := func(x, y int, title string) *core.Window {
		w := core.NewWindow(x, y, 16, 12, title)
		cb := core.NewComboBox(0, 6, 6)
		cb.AddItem(core.NewComboBoxItem("one"))
		cb.AddItem(core.NewComboBoxItem("two"))
		list := core.NewList(8, 1, 6, 3, []any{"a", "b", "c", "d"})
		list.DragEnabled = true
		inv := core.NewInventory(8, 6, [][]any{{"x", nil}, {nil, "y"}}, false)
		inv.DragEnabled = true
		w.AddComponents(
			core.NewButton(0, 1, 4, 1),
			core.NewKnob(0, 2),
			core.NewTextField(0, 5, 6),
			cb,
			core.NewScrollBar(14, 1, 8, core.Vertical),
			list,
			inv,
		)
		return w
	}
	windows := []*core.Window{build(0, 0, "left"), build(140, 60, "right")}
	for _, w := range windows {
		h.s.AddWindow(w)
	}

	for step := 0; step < 2000; step++ {
		switch rng.Intn(10) {
		case 0, 1, 2:
			h.in.PointerMoved(rng.Intn(320), rng.Intn(240))
			h.in.MouseDown(input.ButtonLeft)
		case 3, 4:
			h.in.MouseUp(input.ButtonLeft)
		case 5:
			h.in.PointerMoved(rng.Intn(320), rng.Intn(240))
		case 6:
			h.s.OpenContextMenu(menu, rng.Intn(320), rng.Intn(240))
		case 7:
			w := windows[rng.Intn(len(windows))]
			if w.OnScreen() {
				h.s.RemoveWindow(w)
			} else {
				h.s.AddWindow(w)
			}
		case 8:
			w := windows[rng.Intn(len(windows))]
			if len(w.Components) > 0 {
				c := w.Components[rng.Intn(len(w.Components))]
				w.RemoveComponent(c)
				w.AddComponent(c)
			}
		case 9:
			h.in.KeyTyped(rune('a' + rng.Intn(26)))
		}
		h.frame()
		if err := h.s.Validate(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
}
