// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner_test.go
// Summary: Exercises devshell runner behaviour to ensure the standalone harness remains reliable.
// Usage: Executed during `go test` to guard against regressions.

package devshell_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tilegui/internal/devshell"
	"github.com/framegrace/tilegui/tileui/core"
)

type stubHost struct {
	inits     atomic.Int32
	updates   atomic.Int32
	renders   atomic.Int32
	shutdowns atomic.Int32
}

func (h *stubHost) Init(*core.Engine)                     { h.inits.Add(1) }
func (h *stubHost) Update()                               { h.updates.Add(1) }
func (h *stubHost) Render(core.Camera, *core.GameViewPort) { h.renders.Add(1) }
func (h *stubHost) Shutdown()                             { h.shutdowns.Add(1) }

func useSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	devshell.SetScreenFactory(func() (tcell.Screen, error) {
		return screen, nil
	})
	t.Cleanup(func() { devshell.SetScreenFactory(nil) })
	return screen
}

func TestRunTypesIntoFocusedFieldAndShutsDown(t *testing.T) {
	screen := useSimulationScreen(t)
	host := &stubHost{}
	opts := devshell.DefaultOptions()
	opts.FrameRate = 100
	opts.Host = func(tcell.Screen) core.Adapter { return host }

	contents := make(chan string, 8)
	build := func(e *core.Engine) error {
		w := core.NewWindow(8, 8, 20, 4, "Input")
		tf := core.NewTextField(1, 1, 10)
		tf.OnContentChange = func(content string, _ bool) { contents <- content }
		w.AddComponent(tf)
		e.State().AddWindow(w)
		e.State().FocusTextField(tf)
		return nil
	}

	errCh := make(chan error, 1)
	go func() { errCh <- devshell.Run(build, opts) }()

	waitFor(func() bool { return host.updates.Load() > 0 }, time.Second, t, "first frame")
	if host.inits.Load() != 1 {
		t.Fatalf("host initialized %d times", host.inits.Load())
	}
	if host.renders.Load() == 0 {
		t.Fatalf("game layer was not rendered")
	}

	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	select {
	case got := <-contents:
		if got != "x" {
			t.Fatalf("content = %q, want x", got)
		}
	case <-time.After(time.Second):
		t.Fatal("typed rune did not reach the text field")
	}

	screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone))
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not exit after Ctrl-C")
	}
	if host.shutdowns.Load() != 1 {
		t.Fatalf("host shut down %d times, want 1", host.shutdowns.Load())
	}
}

func TestRunReturnsBuilderError(t *testing.T) {
	useSimulationScreen(t)
	errBoom := errors.New("boom")
	err := devshell.Run(func(*core.Engine) error { return errBoom }, devshell.DefaultOptions())
	if !errors.Is(err, errBoom) {
		t.Fatalf("Run error = %v, want boom", err)
	}
}

func TestRegisterAndRunAppUnknown(t *testing.T) {
	devshell.Register("zz-test", func(*core.Engine) error { return nil })
	found := false
	for _, name := range devshell.Names() {
		if name == "zz-test" {
			found = true
		}
	}
	if !found {
		t.Fatalf("registered builder missing from %v", devshell.Names())
	}
	if err := devshell.RunApp("does-not-exist", devshell.DefaultOptions()); err == nil {
		t.Fatal("expected error for unknown app")
	}
}

func waitFor(cond func() bool, timeout time.Duration, t *testing.T, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %s", msg)
}
