// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"testing"
	"time"

	"github.com/framegrace/tilegui/tileui/core"
)

func TestTooltipFadesInOnceUnderJitter(t *testing.T) {
	h := newHarness(t, nil)
	btn := core.NewButton(0, 1, 4, 1)
	btn.Tooltip = core.NewTooltip("Save the game")
	displays := 0
	btn.Tooltip.OnDisplay = func() { displays++ }
	h.newMainWindow(btn)

	fadingIn := 0
	prev := h.s.TooltipPhase()
	track := func() {
		phase := h.s.TooltipPhase()
		if phase == core.TooltipFadingIn && prev != core.TooltipFadingIn {
			fadingIn++
		}
		prev = phase
	}

	h.moveTo(20, 26)
	track()
	if h.s.Tooltip() != btn.Tooltip || h.s.TooltipPhase() != core.TooltipIdle {
		t.Fatalf("expected tooltip waiting for its delay")
	}
	for i := 0; i < 80; i++ {
		h.in.PointerMoved(20+i%3, 26+i%2)
		h.frame()
		track()
	}
	if fadingIn != 1 || displays != 1 {
		t.Fatalf("expected one fade-in and one display, got %d and %d", fadingIn, displays)
	}
	if h.s.TooltipPhase() != core.TooltipVisible {
		t.Fatalf("expected tooltip visible, got %v", h.s.TooltipPhase())
	}
}

func TestTooltipResetsWhenHoverLeaves(t *testing.T) {
	h := newHarness(t, nil)
	btn := core.NewButton(0, 1, 4, 1)
	btn.Tooltip = core.NewTooltip("tip")
	h.newMainWindow(btn)

	h.moveTo(20, 26)
	h.clock.Advance(2 * time.Second)
	h.frame()
	if h.s.TooltipPhase() == core.TooltipIdle {
		t.Fatalf("expected tooltip shown")
	}
	h.moveTo(250, 200)
	if h.s.Tooltip() != nil || h.s.TooltipPhase() != core.TooltipIdle {
		t.Fatalf("expected tooltip cleared")
	}
}

func TestListTooltipFollowsRows(t *testing.T) {
	h := newHarness(t, nil)
	list := core.NewList(0, 1, 6, 3, []any{"A", "B", "C"})
	tips := map[any]*core.Tooltip{"A": core.NewTooltip("a"), "B": core.NewTooltip("b")}
	list.ToolTip = func(item any) *core.Tooltip { return tips[item] }
	h.newMainWindow(list)

	h.moveTo(20, 26)
	if h.s.Tooltip() != tips["A"] {
		t.Fatalf("expected row A tooltip")
	}
	h.moveTo(20, 34)
	if h.s.Tooltip() != tips["B"] {
		t.Fatalf("expected row B tooltip")
	}
}

func TestTooltipPlacementAvoidsEdges(t *testing.T) {
	h := newHarness(t, nil)
	left := core.NewButton(0, 14, 2, 2)
	left.Tooltip = core.NewTooltip("tip")
	right := core.NewButton(38, 14, 2, 2)
	right.Tooltip = core.NewTooltip("tip")
	h.s.AddScreenComponent(left)
	h.s.AddScreenComponent(right)

	h.moveTo(10, 120)
	x, _, w, _, dir, ok := h.s.TooltipPlacement()
	if !ok || dir != core.TooltipRight || x != 18 || w != 24 {
		t.Fatalf("expected right placement at x=18 w=24, got x=%d w=%d dir=%v", x, w, dir)
	}
	h.moveTo(310, 120)
	x, _, _, _, dir, _ = h.s.TooltipPlacement()
	if dir != core.TooltipLeft || x != 278 {
		t.Fatalf("expected left placement at x=278, got x=%d dir=%v", x, dir)
	}
}

func TestTooltipHiddenBehindModal(t *testing.T) {
	h := newHarness(t, nil)
	btn := core.NewButton(0, 1, 4, 1)
	btn.Tooltip = core.NewTooltip("behind")
	displays := 0
	btn.Tooltip.OnDisplay = func() { displays++ }
	h.newMainWindow(btn)
	h.s.OpenModal(core.NewWindow(200, 150, 8, 4, "Modal"))

	h.moveTo(20, 26)
	h.clock.Advance(2 * time.Second)
	h.frames(3)
	if h.s.Tooltip() != nil || h.s.TooltipPhase() != core.TooltipIdle || displays != 0 {
		t.Fatalf("tooltip shown behind a modal: phase %v, displays %d", h.s.TooltipPhase(), displays)
	}

	h.s.CloseModal()
	h.frame()
	h.clock.Advance(2 * time.Second)
	h.frames(3)
	if h.s.Tooltip() != btn.Tooltip || displays != 1 {
		t.Fatalf("expected tooltip once the modal closed, displays %d", displays)
	}
}
