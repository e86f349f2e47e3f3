// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core_test

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/tileui/core"
)

type stubAdapter struct {
	inits     int
	updates   int
	shutdowns int
	renders   []*core.GameViewPort
}

func (a *stubAdapter) Init(*core.Engine) { a.inits++ }
func (a *stubAdapter) Update()           { a.updates++ }
func (a *stubAdapter) Render(_ core.Camera, vp *core.GameViewPort) {
	a.renders = append(a.renders, vp)
}
func (a *stubAdapter) Shutdown() { a.shutdowns++ }

// fixedMetrics measures every rune as half a tile.
type fixedMetrics struct{}

func (fixedMetrics) TextWidth(_ any, text string) int { return utf8.RuneCountInString(text) * 4 }
func (fixedMetrics) GlyphHeight(any) int              { return core.TileSize }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type harness struct {
	t       *testing.T
	e       *core.Engine
	s       *core.State
	in      *input.Buffer
	clock   *fakeClock
	adapter *stubAdapter
}

const frameTime = 16 * time.Millisecond

// newHarness builds a 320x240 engine in pointer control with invariant
// checks enabled.
func newHarness(t *testing.T, mutate func(*core.Options)) *harness {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	opts := core.DefaultOptions()
	opts.KeyboardControl = false
	opts.Magnet = false
	opts.DebugInvariants = true
	opts.Clock = clock.Now
	if mutate != nil {
		mutate(&opts)
	}
	adapter := &stubAdapter{}
	e, err := core.NewEngine(adapter, fixedMetrics{}, 320, 240, opts)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return &harness{t: t, e: e, s: e.State(), in: e.Input(), clock: clock, adapter: adapter}
}

func (h *harness) frame() {
	h.clock.Advance(frameTime)
	h.e.Update()
}

func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.frame()
	}
}

func (h *harness) moveTo(x, y int) {
	h.in.PointerMoved(x, y)
	h.frame()
}

func (h *harness) press(x, y int) {
	h.in.PointerMoved(x, y)
	h.in.MouseDown(input.ButtonLeft)
	h.frame()
}

func (h *harness) release() {
	h.in.MouseUp(input.ButtonLeft)
	h.frame()
}

// click presses and releases, then waits out the double-click window so
// consecutive clicks stay single clicks.
func (h *harness) click(x, y int) {
	h.press(x, y)
	h.release()
	h.clock.Advance(time.Second)
}

func (h *harness) typeText(text string) {
	for _, r := range text {
		h.in.KeyTyped(r)
	}
	h.frame()
}

func (h *harness) tapKey(k input.Key) {
	h.in.KeyDown(k)
	h.frame()
	h.in.KeyUp(k)
	h.frame()
}

// newMainWindow attaches a 20x10 tile window at (16,16). Components at
// tile (0,1) start at pixel (16,24).
func (h *harness) newMainWindow(cs ...core.Component) *core.Window {
	w := core.NewWindow(16, 16, 20, 10, "Main")
	w.AddComponents(cs...)
	h.s.AddWindow(w)
	return w
}
