// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/tileui/core"
)

func TestNewEngineRejectsMissingCollaborators(t *testing.T) {
	opts := core.DefaultOptions()
	if _, err := core.NewEngine(nil, fixedMetrics{}, 320, 240, opts); !errors.Is(err, core.ErrNoAdapter) {
		t.Fatalf("expected ErrNoAdapter, got %v", err)
	}
	if _, err := core.NewEngine(&stubAdapter{}, nil, 320, 240, opts); !errors.Is(err, core.ErrNoMetrics) {
		t.Fatalf("expected ErrNoMetrics, got %v", err)
	}
	if _, err := core.NewEngine(&stubAdapter{}, fixedMetrics{}, 8, 240, opts); err == nil {
		t.Fatalf("expected error for a resolution below two tiles")
	}
}

func TestEngineLifecycleCallsAdapter(t *testing.T) {
	h := newHarness(t, nil)
	if h.adapter.inits != 1 {
		t.Fatalf("expected Init once, got %d", h.adapter.inits)
	}
	h.frames(3)
	if h.adapter.updates != 3 {
		t.Fatalf("expected 3 host updates, got %d", h.adapter.updates)
	}

	removed := 0
	w := h.newMainWindow()
	w.OnRemove = func() { removed++ }
	h.e.Shutdown()
	if h.adapter.shutdowns != 1 {
		t.Fatalf("expected Shutdown once, got %d", h.adapter.shutdowns)
	}
	if removed != 1 || len(h.s.Windows()) != 0 {
		t.Fatalf("expected windows torn down, removed=%d left=%d", removed, len(h.s.Windows()))
	}
	h.frame()
	h.e.Shutdown()
	if h.adapter.updates != 3 || h.adapter.shutdowns != 1 {
		t.Fatalf("engine kept running after shutdown")
	}
}

func TestRenderRespectsViewportInterval(t *testing.T) {
	h := newHarness(t, nil)
	vp := core.NewGameViewPort(0, 1, 4, 4, core.Camera{Zoom: 1})
	vp.UpdateInterval = 100 * time.Millisecond
	h.newMainWindow(vp)

	h.e.Render()
	h.e.Render()
	viewportRenders := 0
	for _, r := range h.adapter.renders {
		if r == vp {
			viewportRenders++
		}
	}
	if len(h.adapter.renders) != 3 || viewportRenders != 1 {
		t.Fatalf("expected 2 main renders and 1 viewport render, got %d total, %d viewport", len(h.adapter.renders), viewportRenders)
	}
	h.clock.Advance(100 * time.Millisecond)
	h.e.Render()
	if got := h.adapter.renders[len(h.adapter.renders)-1]; got != vp {
		t.Fatalf("expected viewport to render once its interval passed")
	}
}

func TestFrozenEngineSkipsInteraction(t *testing.T) {
	h := newHarness(t, nil)
	btn := core.NewButton(0, 1, 4, 1)
	pressed := 0
	btn.OnPress = func() { pressed++ }
	h.newMainWindow(btn)

	h.s.SetFrozen(true)
	h.press(20, 26)
	if pressed != 0 || h.s.PressedButton() != nil {
		t.Fatalf("frozen engine dispatched a press")
	}
	if h.adapter.updates != 1 {
		t.Fatalf("host update must still run while frozen")
	}
}

type recordingComposer struct{ frames int }

func (c *recordingComposer) Compose(*core.State) { c.frames++ }

func TestRenderComposesAfterGameLayer(t *testing.T) {
	h := newHarness(t, nil)
	comp := &recordingComposer{}
	h.e.SetComposer(comp)
	h.e.Render()
	if comp.frames != 1 || len(h.adapter.renders) != 1 || h.adapter.renders[0] != nil {
		t.Fatalf("expected one main render and one compose, got %d renders, %d composes", len(h.adapter.renders), comp.frames)
	}
}

func TestMouseToolReceivesOffGUIEvents(t *testing.T) {
	h := newHarness(t, nil)
	var presses, releases, moves int
	var px, py float32
	h.s.SetMouseTool(&core.MouseTool{
		Name: "paint",
		OnPress: func(x, y float32, btn input.MouseButton) {
			presses++
			px, py = x, y
		},
		OnRelease: func(float32, float32, input.MouseButton) { releases++ },
		OnMove:    func(float32, float32) { moves++ },
	})
	h.moveTo(200, 200)
	h.press(170, 130)
	h.release()
	if presses != 1 || releases != 1 || moves != 1 {
		t.Fatalf("unexpected tool calls press=%d release=%d move=%d", presses, releases, moves)
	}
	// The default camera centres the world on the resolution, so world and
	// screen coordinates agree.
	if px != 170 || py != 130 {
		t.Fatalf("expected world position (170,130), got (%v,%v)", px, py)
	}
}
