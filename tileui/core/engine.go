// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/engine.go
// Summary: Engine lifecycle and the fixed per-frame update pipeline.
// Usage: The host feeds Input() between frames, then calls Update and Render
//   once per frame from a single goroutine.

package core

import (
	"errors"
	"fmt"
	"log"

	"github.com/framegrace/tilegui/input"
)

var (
	ErrNoAdapter = errors.New("ui engine requires an adapter")
	ErrNoMetrics = errors.New("ui engine requires text metrics")
)

// Adapter is implemented by the host application.
type Adapter interface {
	Init(e *Engine)
	// Update runs after GUI interaction has been processed for the frame.
	Update()
	// Render draws the game layer for the main camera (vp == nil) or for a
	// game viewport.
	Render(cam Camera, vp *GameViewPort)
	Shutdown()
}

// Composer draws the GUI from the session state. It must not mutate it.
type Composer interface {
	Compose(s *State)
}

// frameMouse holds the pointer events the engine acts on this frame, either
// read from the buffer or synthesized from keyboard control.
type frameMouse struct {
	down        []input.MouseButton
	up          []input.MouseButton
	doubleClick bool
	moved       bool
	dragged     bool
	scroll      float32
	scrolled    bool
	held        bool
}

// Engine runs the interaction pipeline over one State.
type Engine struct {
	state    *State
	adapter  Adapter
	composer Composer
	events   *input.Buffer
	mouse    frameMouse
	shutdown bool
}

// NewEngine creates the session state for an internal resolution of
// width x height pixels and initializes the adapter.
func NewEngine(adapter Adapter, metrics TextMetrics, width, height int, opts Options) (*Engine, error) {
	if adapter == nil {
		return nil, ErrNoAdapter
	}
	if metrics == nil {
		return nil, ErrNoMetrics
	}
	if width < TileSize*2 || height < TileSize*2 {
		return nil, fmt.Errorf("internal resolution %dx%d is below %dx%d", width, height, TileSize*2, TileSize*2)
	}
	e := &Engine{
		state:   newState(opts, metrics, width, height),
		adapter: adapter,
		events:  input.NewBuffer(),
	}
	log.Printf("UIEngine: Initialized %dx%d (%s, control %s)", width, height, opts.ViewportMode, e.state.controlMode)
	adapter.Init(e)
	return e, nil
}

// State returns the session state.
func (e *Engine) State() *State { return e.state }

// Input returns the buffer the input backend writes into.
func (e *Engine) Input() *input.Buffer { return e.events }

// SetComposer installs the GUI composer used by Render.
func (e *Engine) SetComposer(c Composer) { e.composer = c }

// Resize updates the device size the viewport maps from.
func (e *Engine) Resize(screenWidth, screenHeight int) {
	e.state.viewport.ScreenWidth = screenWidth
	e.state.viewport.ScreenHeight = screenHeight
}

// Update runs one frame of the interaction pipeline followed by the host update.
func (e *Engine) Update() {
	if e.shutdown {
		return
	}
	s := e.state
	if !s.frozen {
		e.resolveControlMode()
		e.derivePointer()
		e.updateHover()
		e.updateKeyboard()
		e.updateMouse()
		e.updateTimed()
		e.updateTooltip()
		e.updateNotifications()
		e.enforceWindowBounds()
		if s.opts.DebugInvariants {
			if err := s.Validate(); err != nil {
				panic(err)
			}
		}
	}
	e.adapter.Update()
	e.events.Reset()
}

// Render draws the game layer, due game viewports and then the GUI.
func (e *Engine) Render() {
	if e.shutdown {
		return
	}
	s := e.state
	e.adapter.Render(s.camera, nil)
	now := s.now()
	for _, vp := range s.GameViewPorts() {
		if vp.UpdateInterval > 0 && !vp.lastRender.IsZero() && now.Sub(vp.lastRender) < vp.UpdateInterval {
			continue
		}
		vp.lastRender = now
		e.adapter.Render(vp.Camera, vp)
	}
	if e.composer != nil {
		e.composer.Compose(s)
	}
}

// Shutdown tears the session down and shuts the adapter down. The engine
// must not be used afterwards.
func (e *Engine) Shutdown() {
	if e.shutdown {
		return
	}
	e.shutdown = true
	e.adapter.Shutdown()

	s := e.state
	s.modalQueue = nil
	s.RemoveAllWindows()
	for len(s.screenComponents) > 0 {
		s.RemoveScreenComponent(s.screenComponents[len(s.screenComponents)-1])
	}
	for len(s.notifications) > 0 {
		s.RemoveNotification(s.notifications[0])
	}
	s.hotKeys = nil
	s.singleUpdateActions = nil
	s.tooltips.Clear()
	s.notifyFades.Clear()
	e.events.ReleaseAll()
	e.events.Reset()
	log.Printf("UIEngine: Shutdown complete")
}
