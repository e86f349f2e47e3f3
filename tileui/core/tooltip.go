// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/tooltip.go
// Summary: Tooltip delay and fade-in, keyed by the hovered object and sub-item.

package core

import (
	"time"

	"github.com/framegrace/tilegui/internal/effects"
)

type inventoryCell struct{ x, y int }

func (e *Engine) updateTooltip() {
	s := e.state
	now := s.now()
	switch s.active.(type) {
	case *ListDrag, *InventoryDrag, *WindowDrag:
		s.resetTooltip()
		return
	}
	if s.hover != nil && !s.inModalScope(s.hover) {
		s.resetTooltip()
		return
	}

	key := hoverKey{object: s.hover, sub: s.hoverSubItem()}
	redraw := false
	if c, ok := s.hover.(Component); ok && c.base().tooltipRedraw {
		c.base().tooltipRedraw = false
		redraw = true
	}
	// The game tooltip can change under a still pointer.
	if key != s.tooltip.last || redraw || key.object == nil {
		s.tooltip.last = key
		s.setTooltip(s.tooltipFor(key), now)
	}

	t := &s.tooltip
	if t.current == nil {
		return
	}
	if t.waiting {
		if now.Sub(t.delayStart) < s.opts.TooltipDelay {
			return
		}
		t.waiting = false
		s.tooltips.Start(t.current, 0, 1, effects.AnimateOptions{Duration: s.opts.TooltipFade}, now)
		if t.current.OnDisplay != nil {
			t.current.OnDisplay()
		}
	}
	t.fadeIn = s.tooltips.Get(t.current, now)
	if t.fadeIn >= 1 && t.current.OnUpdate != nil {
		t.current.OnUpdate()
	}
}

// setTooltip switches the tooltip content. Switching to the tooltip already
// shown keeps its phase.
func (s *State) setTooltip(t *Tooltip, now time.Time) {
	if t == s.tooltip.current {
		return
	}
	if s.tooltip.current != nil {
		s.tooltips.Reset(s.tooltip.current)
	}
	s.tooltip.current = t
	s.tooltip.fadeIn = 0
	s.tooltip.waiting = t != nil
	s.tooltip.delayStart = now
}

// hoverSubItem identifies the row or cell under the pointer for containers
// with per-item tooltips.
func (s *State) hoverSubItem() any {
	switch c := s.hover.(type) {
	case *List:
		if idx, ok := ListItemAt(c, s.pointerX, s.pointerY); ok && idx < len(c.Items) {
			return idx
		}
	case *Inventory:
		if x, y, ok := InventoryCellAt(c, s.pointerX, s.pointerY); ok {
			return inventoryCell{x, y}
		}
	}
	return nil
}

func (s *State) tooltipFor(key hoverKey) *Tooltip {
	switch c := key.object.(type) {
	case nil:
		return s.gameTooltip
	case *List:
		if idx, ok := key.sub.(int); ok && c.ToolTip != nil {
			if t := c.ToolTip(c.Items[idx]); t != nil {
				return t
			}
		}
		return c.Tooltip
	case *Inventory:
		if cell, ok := key.sub.(inventoryCell); ok && c.ToolTip != nil {
			if item := c.Items[cell.x][cell.y]; item != nil {
				if t := c.ToolTip(item); t != nil {
					return t
				}
			}
		}
		return c.Tooltip
	case Component:
		return c.base().Tooltip
	}
	return nil
}
