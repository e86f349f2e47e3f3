// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/engine_hover.go
// Summary: Hit testing from the topmost overlay down to screen components.

package core

import "github.com/framegrace/tilegui/internal/calc"

func (e *Engine) updateHover() {
	s := e.state
	s.hover = s.HitTest(s.pointerX, s.pointerY)
}

func hittable(c Component) bool {
	b := c.base()
	return b.Visible && !b.Disabled && !IsHiddenByTab(c)
}

func componentContains(c Component, x, y int) bool {
	cx, cy, w, h := Bounds(c)
	return calc.PointInRect(x, y, cx, cy, w, h)
}

// HitTest returns the topmost target at (x, y): clickable notifications,
// then the open context menu, then the open combo box items, then windows
// from the top with their components in reverse order, then screen
// components in reverse order.
func (s *State) HitTest(x, y int) Target {
	width, _ := s.Resolution()
	for i, n := range s.notifications {
		if n.hasAny() && calc.PointInRect(x, y, 0, i*TileSize, width, TileSize) {
			return n
		}
	}
	if item := s.ContextMenuItemAt(x, y); item != nil {
		return item
	}
	if cb := s.OpenedComboBox(); cb != nil {
		ax, ay := AbsolutePosition(cb)
		if calc.PointInRect(x, y, ax, ay+TileSize, cb.Width*TileSize, len(cb.Items)*TileSize) {
			return cb
		}
	}
	for i := len(s.windows) - 1; i >= 0; i-- {
		w := s.windows[i]
		if !w.Visible || !calc.PointInRect(x, y, w.X, w.Y, w.RealWidth(), w.RealHeight()) {
			continue
		}
		if !w.Folded {
			for j := len(w.Components) - 1; j >= 0; j-- {
				c := w.Components[j]
				if hittable(c) && componentContains(c, x, y) {
					return c
				}
			}
		}
		return w
	}
	for j := len(s.screenComponents) - 1; j >= 0; j-- {
		c := s.screenComponents[j]
		if hittable(c) && componentContains(c, x, y) {
			return c
		}
	}
	return nil
}
