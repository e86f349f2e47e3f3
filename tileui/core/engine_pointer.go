// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/engine_pointer.go
// Summary: Control mode resolution and pointer derivation, including keyboard
//   emulation of the pointer with speed ramp and magnet pull.

package core

import (
	"log"
	"time"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/internal/calc"
)

func (e *Engine) resolveControlMode() {
	s := e.state
	o := s.opts
	mode := s.controlMode
	switch {
	case o.KeyboardControl && o.PointerControl:
		if s.FocusedTextField() == nil && e.events.AnyHeld(o.Keys.controlKeys()) {
			mode = ControlKeyboard
		} else if e.events.Moved() || len(e.events.MouseDowns()) > 0 {
			mode = ControlPointer
		}
	case o.KeyboardControl:
		mode = ControlKeyboard
	case o.PointerControl:
		mode = ControlPointer
	default:
		mode = ControlNone
	}
	if mode != s.controlMode {
		log.Printf("UIEngine: Control mode %s -> %s", s.controlMode, mode)
		s.controlMode = mode
		s.speedUp = 0
	}
}

func (e *Engine) derivePointer() {
	s := e.state
	e.mouse = frameMouse{}
	oldX, oldY := s.pointerX, s.pointerY

	switch s.controlMode {
	case ControlPointer:
		e.pointerFromDevice()
	case ControlKeyboard:
		e.pointerFromKeyboard()
	default:
		e.releaseVirtualButtons()
	}

	s.deltaX, s.deltaY = s.pointerX-oldX, s.pointerY-oldY
	if s.deltaX != 0 || s.deltaY != 0 {
		e.mouse.moved = true
		e.mouse.dragged = e.mouse.held
	}
	width, height := s.Resolution()
	s.gameX, s.gameY = s.camera.Unproject(s.pointerX, s.pointerY, width, height)
	e.detectDoubleClick()
}

func (e *Engine) pointerFromDevice() {
	s := e.state
	ev := e.events
	if ev.Moved() {
		s.pointerX, s.pointerY = s.viewport.Unproject(ev.Pointer())
	}
	e.releaseVirtualButtons()
	e.mouse.down = append(e.mouse.down, ev.MouseDowns()...)
	e.mouse.up = append(e.mouse.up, ev.MouseUps()...)
	e.mouse.scroll, e.mouse.scrolled = ev.Scrolled()
	e.mouse.held = ev.AnyButtonHeld()
}

// releaseVirtualButtons ends keyboard-held buttons when keyboard control
// is left, so presses armed by them are released.
func (e *Engine) releaseVirtualButtons() {
	s := e.state
	for i, held := range s.virtualButtons {
		if held {
			s.virtualButtons[i] = false
			e.mouse.up = append(e.mouse.up, input.MouseButton(i))
		}
	}
}

func (e *Engine) pointerFromKeyboard() {
	s := e.state
	o := s.opts
	ev := e.events
	typing := s.FocusedTextField() != nil
	width, height := s.Resolution()

	up := !typing && ev.AnyHeld(o.Keys.Up)
	down := !typing && ev.AnyHeld(o.Keys.Down)
	left := !typing && ev.AnyHeld(o.Keys.Left)
	right := !typing && ev.AnyHeld(o.Keys.Right)

	for i := range s.virtualButtons {
		btn := input.MouseButton(i)
		if s.virtualButtons[i] {
			if typing || !ev.AnyHeld(o.Keys.Buttons[i]) {
				s.virtualButtons[i] = false
				e.mouse.up = append(e.mouse.up, btn)
			}
			continue
		}
		if typing {
			continue
		}
		for _, k := range o.Keys.Buttons[i] {
			if ev.WasPressed(k) {
				s.virtualButtons[i] = true
				e.mouse.down = append(e.mouse.down, btn)
				break
			}
		}
	}
	for _, held := range s.virtualButtons {
		e.mouse.held = e.mouse.held || held
	}

	dx, dy := 0, 0
	if up || down || left || right {
		s.speedUp = calc.UpperBounds(s.speedUp+0.25, 1)
		step := calc.LowerBounds(calc.Round(o.KeyboardCursorSpeed*s.speedUp), 1)
		if left {
			dx -= step
		}
		if right {
			dx += step
		}
		if up {
			dy -= step
		}
		if down {
			dy += step
		}
	} else {
		s.speedUp = 0
		if o.Magnet && !e.mouse.held {
			dx, dy = e.magnetPull()
		}
	}
	s.pointerX = calc.Clamp(s.pointerX+dx, 0, width-1)
	s.pointerY = calc.Clamp(s.pointerY+dy, 0, height-1)

	if !typing {
		for _, k := range o.Keys.ScrollUp {
			if ev.WasPressed(k) {
				e.mouse.scroll--
				e.mouse.scrolled = true
			}
		}
		for _, k := range o.Keys.ScrollDown {
			if ev.WasPressed(k) {
				e.mouse.scroll++
				e.mouse.scrolled = true
			}
		}
	}
}

func (e *Engine) detectDoubleClick() {
	s := e.state
	for _, btn := range e.mouse.down {
		if btn != input.ButtonLeft {
			continue
		}
		now := s.now()
		if !s.lastClick.IsZero() && now.Sub(s.lastClick) <= s.opts.DoubleClickTime {
			e.mouse.doubleClick = true
			s.lastClick = time.Time{}
			continue
		}
		s.lastClick = now
	}
}

// magnetPull moves the emulated pointer a quarter of the way to the point
// of interest of the hovered widget. Nothing hovered means no pull.
func (e *Engine) magnetPull() (int, int) {
	s := e.state
	tx, ty, ok := e.magnetTarget()
	if !ok {
		return 0, 0
	}
	return calc.Round(float32(tx-s.pointerX) / 4), calc.Round(float32(ty-s.pointerY) / 4)
}

func rowCenter(top, y, size int) int {
	return top + calc.FloorDiv(y-top, size)*size + size/2
}

func (e *Engine) magnetTarget() (int, int, bool) {
	s := e.state
	px, py := s.pointerX, s.pointerY
	switch h := s.hover.(type) {
	case *Window:
		if h.OnTitleBar(px, py) {
			return px, h.Y + TileSizeHalf, true
		}
		return 0, 0, false
	case *ContextMenuItem:
		if h.menu == nil {
			return 0, 0, false
		}
		return px, rowCenter(h.menu.Y, py, TileSize), true
	case Component:
		ax, ay, w, hgt := Bounds(h)
		switch c := h.(type) {
		case *List:
			return px, rowCenter(ay, py, TileSize), true
		case *Inventory:
			cell := c.CellSize()
			return rowCenter(ax, px, cell), rowCenter(ay, py, cell), true
		case *TabBar:
			if _, idx := TabAt(c, px, py); idx < 0 {
				return 0, 0, false
			}
			offset := c.TabOffset
			for i := 0; i < len(c.Tabs); i++ {
				tw := tabWidth(c, c.Tabs[i])
				if calc.PointInRect(px, py, ax+offset*TileSize, ay, tw*TileSize, hgt) {
					return ax + offset*TileSize + tw*TileSize/2, ay + hgt/2, true
				}
				offset += tw
			}
			return 0, 0, false
		case *ComboBox:
			if s.OpenedComboBox() == c && py >= ay+TileSize {
				return px, rowCenter(ay, py, TileSize), true
			}
			return ax + w/2, ay + hgt/2, true
		case *ScrollBar:
			if c.Orientation == Vertical {
				return ax + w/2, py, true
			}
			return px, ay + hgt/2, true
		case *TextField:
			return px, ay + hgt/2, true
		case *Map, *GameViewPort, *Text, *Image, *Shape, *ProgressBar:
			return 0, 0, false
		default:
			return ax + w/2, ay + hgt/2, true
		}
	}
	return 0, 0, false
}
