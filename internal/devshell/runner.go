// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Standalone terminal harness running a UI engine session in a tcell screen.
// Usage: Register builders by name or call Run directly. One terminal cell is
//   one tile of the internal resolution.

package devshell

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tilegui/tileui/adapter"
	"github.com/framegrace/tilegui/tileui/core"
	"github.com/framegrace/tilegui/tileui/metrics"
)

// Builder populates a freshly created engine with windows and widgets.
type Builder func(e *core.Engine) error

// Options configure a devshell session.
type Options struct {
	Engine     core.Options
	FrameRate  int
	KeyRelease time.Duration
	// Host creates the game layer adapter; nil runs without one.
	Host func(screen tcell.Screen) core.Adapter
	// Metrics defaults to cell metrics.
	Metrics core.TextMetrics
}

// DefaultOptions returns stock engine options at 30 frames per second.
func DefaultOptions() Options {
	return Options{Engine: core.DefaultOptions(), FrameRate: 30, KeyRelease: adapter.DefaultKeyRelease}
}

var (
	registryMu sync.Mutex
	registry   = map[string]Builder{}
)

// Register makes a builder available to RunApp.
func Register(name string, b Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = b
}

// Names lists the registered builders in order.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

type nopHost struct{}

func (nopHost) Init(*core.Engine)                     {}
func (nopHost) Update()                               {}
func (nopHost) Render(core.Camera, *core.GameViewPort) {}
func (nopHost) Shutdown()                             {}

// Run executes build inside a local tcell screen until Ctrl-C or the
// screen closes. All engine calls happen on the frame loop goroutine.
func Run(build Builder, opts Options) error {
	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	var host core.Adapter = nopHost{}
	if opts.Host != nil {
		host = opts.Host(screen)
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.Cells{}
	}
	cols, rows := screen.Size()
	e, err := core.NewEngine(host, m, cols*core.TileSize, rows*core.TileSize, opts.Engine)
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer e.Shutdown()
	e.Resize(cols*core.TileSize, rows*core.TileSize)
	e.SetComposer(adapter.NewTerminal(screen))
	if build != nil {
		if err := build(e); err != nil {
			return err
		}
	}

	clock := opts.Engine.Clock
	if clock == nil {
		clock = time.Now
	}
	in := adapter.NewInput(e.Input(), opts.KeyRelease)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	fps := opts.FrameRate
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frame := func() {
		in.Flush(clock())
		e.Update()
		e.Render()
		screen.Show()
	}
	frame()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch tev := ev.(type) {
			case *tcell.EventResize:
				w, h := tev.Size()
				e.Resize(w*core.TileSize, h*core.TileSize)
				screen.Sync()
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyCtrlC {
					log.Printf("Devshell: interrupted")
					return nil
				}
				in.HandleEvent(tev, clock())
			default:
				in.HandleEvent(ev, clock())
			}
		case <-ticker.C:
			frame()
		}
	}
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, opts Options) error {
	registryMu.Lock()
	build, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(build, opts)
}
