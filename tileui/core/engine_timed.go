// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/engine_timed.go
// Summary: Button hold repeat, timed update actions and window bounds.

package core

import (
	"time"

	"github.com/framegrace/tilegui/internal/calc"
)

func (e *Engine) updateTimed() {
	s := e.state
	now := s.now()

	if p, ok := s.active.(*ButtonPress); ok && p.Button.Mode == ButtonHold {
		p.HoldFrames++
		if p.HoldFrames > s.opts.ButtonHoldFrames {
			p.HoldFrames = 0
			if p.Button.OnHold != nil {
				p.Button.OnHold()
			}
		}
	}

	n := len(s.screenComponents)
	for i := 0; i < n && i < len(s.screenComponents); i++ {
		runUpdateActions(&s.screenComponents[i].base().UpdateActions, now)
	}
	n = len(s.windows)
	for i := 0; i < n && i < len(s.windows); i++ {
		w := s.windows[i]
		runUpdateActions(&w.UpdateActions, now)
		m := len(w.Components)
		for j := 0; j < m && j < len(w.Components); j++ {
			runUpdateActions(&w.Components[j].base().UpdateActions, now)
		}
	}
	e.runSingleUpdateActions(now)
}

// runSingleUpdateActions fires due one-shot actions and drops them. Actions
// queued by a callback wait for the next frame.
func (e *Engine) runSingleUpdateActions(now time.Time) {
	s := e.state
	n := len(s.singleUpdateActions)
	for i := 0; i < n && i < len(s.singleUpdateActions); {
		a := s.singleUpdateActions[i]
		if a.fire(now) {
			s.singleUpdateActions = removeItem(s.singleUpdateActions, a)
			n--
			continue
		}
		i++
	}
}

func (e *Engine) enforceWindowBounds() {
	s := e.state
	width, height := s.Resolution()
	for _, w := range s.windows {
		if !w.EnforceScreenBounds {
			continue
		}
		w.X = calc.Clamp(w.X, 0, calc.LowerBounds(width-w.RealWidth(), 0))
		w.Y = calc.Clamp(w.Y, 0, calc.LowerBounds(height-w.RealHeight(), 0))
	}
}
