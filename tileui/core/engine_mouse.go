// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/engine_mouse.go
// Summary: Press, release, drag, scroll and double-click dispatch, drag-and-drop
//   resolution and the mouse tool.

package core

import (
	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/internal/calc"
)

func (e *Engine) updateMouse() {
	s := e.state
	m := &e.mouse
	armed := s.active
	for _, btn := range m.down {
		e.press(btn)
	}
	if m.doubleClick {
		e.doubleClick()
	}
	// An interaction armed this frame starts following the pointer next frame.
	if s.active == armed {
		e.drag()
	}
	if m.scrolled && m.scroll != 0 {
		e.scroll(m.scroll)
	}
	for _, btn := range m.up {
		e.release(btn)
	}
	if m.moved && !m.held && s.hover == nil && s.mouseTool != nil && s.mouseTool.OnMove != nil {
		s.mouseTool.OnMove(s.gameX, s.gameY)
	}
}

// closePopups closes the context menu and, unless keep is the widget in
// question, the open combo box and the focused text field.
func (s *State) closePopups(keep Component) {
	s.CloseContextMenu()
	if cb := s.OpenedComboBox(); cb != nil && Component(cb) != keep {
		s.CloseComboBox()
	}
	if tf := s.FocusedTextField(); tf != nil && Component(tf) != keep {
		s.UnfocusTextField()
	}
}

func (e *Engine) press(btn input.MouseButton) {
	s := e.state
	hover := s.hover
	if hover != nil && !s.inModalScope(hover) {
		return
	}
	switch h := hover.(type) {
	case nil:
		s.closePopups(nil)
		if t := s.mouseTool; t != nil && t.OnPress != nil {
			t.OnPress(s.gameX, s.gameY, btn)
		}
	case *Notification:
		h.click(btn)
	case *ContextMenuItem:
		menu := h.menu
		s.CloseContextMenu()
		if h.OnSelect != nil {
			h.OnSelect()
		}
		if menu != nil && menu.OnItemSelected != nil {
			menu.OnItemSelected(h)
		}
	case *Window:
		s.closePopups(nil)
		if btn == input.ButtonLeft {
			s.BringWindowToFront(h)
			if h.Movable && h.OnTitleBar(s.pointerX, s.pointerY) {
				s.setActive(&WindowDrag{Window: h, OffsetX: s.pointerX - h.X, OffsetY: s.pointerY - h.Y})
			}
		}
		h.click(btn)
	case Component:
		s.closePopups(h)
		b := h.base()
		if btn == input.ButtonLeft {
			if b.window != nil {
				s.BringWindowToFront(b.window)
			}
			e.pressComponent(h)
		}
		b.click(btn)
		if b.window != nil {
			b.window.click(btn)
		}
	}
}

func (e *Engine) pressComponent(c Component) {
	s := e.state
	px, py := s.pointerX, s.pointerY
	switch c := c.(type) {
	case *Button:
		if c.Mode == ButtonToggle {
			c.SetPressed(!c.Pressed)
		} else {
			c.Pressed = true
		}
		s.setActive(&ButtonPress{Button: c})
		if c.OnPress != nil {
			c.OnPress()
		}
	case *ScrollBar:
		c.ButtonPressed = true
		s.setActive(&ScrollBarDrag{ScrollBar: c})
		if c.OnPress != nil {
			c.OnPress()
		}
		e.followScrollBar(c)
	case *Knob:
		s.setActive(&KnobTurn{Knob: c})
		if c.OnPress != nil {
			c.OnPress()
		}
	case *Map:
		s.setActive(&MapPress{Map: c})
		if c.OnPress != nil {
			ax, ay := AbsolutePosition(c)
			c.OnPress(px-ax, py-ay)
		}
	case *GameViewPort:
		s.setActive(&ViewPortPress{ViewPort: c})
		if c.OnPress != nil {
			ax, ay := AbsolutePosition(c)
			c.OnPress(px-ax, py-ay)
		}
	case *TextField:
		s.FocusTextField(c)
		s.SetTextFieldMarker(c, s.textFieldCaretAt(c, px))
	case *ComboBox:
		if s.OpenedComboBox() != c {
			s.OpenComboBox(c)
			return
		}
		if item := ComboBoxItemAt(c, px, py); item != nil {
			c.Select(item)
			if s.controlMode == ControlKeyboard {
				_, ay := AbsolutePosition(c)
				s.pointerY = ay + TileSizeHalf
			}
		}
		s.CloseComboBox()
	case *CheckBox:
		c.SetChecked(!c.Checked)
	case *TabBar:
		if _, idx := TabAt(c, px, py); idx >= 0 {
			c.SelectTab(idx)
		}
	case *List:
		idx, ok := ListItemAt(c, px, py)
		if !ok {
			return
		}
		var item any
		if idx < len(c.Items) {
			item = c.Items[idx]
		}
		if item == nil {
			c.ClearSelection()
			return
		}
		if c.MultiSelect {
			c.ToggleSelect(item)
		} else {
			c.Select(item)
		}
		if c.DragEnabled && item != nil {
			ax, ay := AbsolutePosition(c)
			rowY := ay + (idx-ListItemFrom(c))*TileSize
			s.setActive(&ListDrag{List: c, FromIndex: idx, Item: item, OffsetX: px - ax, OffsetY: py - rowY})
		}
	case *Inventory:
		x, y, ok := InventoryCellAt(c, px, py)
		if !ok {
			return
		}
		item := c.Items[x][y]
		c.SelectedItem = item
		if c.OnItemSelected != nil {
			c.OnItemSelected(item, x, y)
		}
		if c.DragEnabled && item != nil {
			ax, ay := AbsolutePosition(c)
			cell := c.CellSize()
			s.setActive(&InventoryDrag{
				Inventory: c, FromX: x, FromY: y, Item: item,
				OffsetX: px - (ax + x*cell), OffsetY: py - (ay + y*cell),
			})
		}
	}
}

func (e *Engine) doubleClick() {
	s := e.state
	hover := s.hover
	if hover != nil && !s.inModalScope(hover) {
		return
	}
	switch h := hover.(type) {
	case nil:
		if t := s.mouseTool; t != nil && t.OnDoubleClick != nil {
			t.OnDoubleClick(s.gameX, s.gameY, input.ButtonLeft)
		}
	case *Notification:
		h.doubleClick(input.ButtonLeft)
	case *Window:
		if s.opts.FoldWindowsOnDoubleClick && h.OnTitleBar(s.pointerX, s.pointerY) {
			h.setFolded(!h.Folded)
		}
		h.doubleClick(input.ButtonLeft)
	case Component:
		b := h.base()
		b.doubleClick(input.ButtonLeft)
		if b.window != nil {
			b.window.doubleClick(input.ButtonLeft)
		}
	}
}

func (e *Engine) followScrollBar(sb *ScrollBar) {
	s := e.state
	ax, ay := AbsolutePosition(sb)
	var v float32
	if sb.Orientation == Vertical {
		v = float32(s.pointerY-ay) / float32(sb.Height*TileSize)
	} else {
		v = float32(s.pointerX-ax) / float32(sb.Width*TileSize)
	}
	sb.Scrolled = calc.Clamp(v, 0, 1)
	if sb.OnScrolled != nil {
		sb.OnScrolled(sb.Scrolled)
	}
}

func (e *Engine) drag() {
	s := e.state
	m := &e.mouse
	switch a := s.active.(type) {
	case *WindowDrag:
		if m.moved {
			a.Window.X = s.pointerX - a.OffsetX
			a.Window.Y = s.pointerY - a.OffsetY
			if a.Window.OnMove != nil {
				a.Window.OnMove()
			}
		}
	case *ScrollBarDrag:
		if m.moved {
			e.followScrollBar(a.ScrollBar)
		}
	case *KnobTurn:
		if s.deltaY != 0 {
			amount := -(float32(s.deltaY) / 100) * s.opts.KnobSensitivity
			a.Knob.Turn(a.Knob.Turned+amount, amount)
			if s.controlMode == ControlKeyboard {
				s.pointerY -= s.deltaY
				s.deltaY = 0
			}
		}
	case nil:
		if m.dragged && s.hover == nil && s.mouseTool != nil && s.mouseTool.OnDrag != nil {
			s.mouseTool.OnDrag(s.gameX, s.gameY)
		}
	}
}

func (e *Engine) scroll(amount float32) {
	s := e.state
	hover := s.hover
	if hover != nil && !s.inModalScope(hover) {
		return
	}
	switch h := hover.(type) {
	case *Notification:
		h.scroll(amount)
	case *Window:
		h.scroll(amount)
	case Component:
		switch c := h.(type) {
		case *List:
			n := calc.LowerBounds(len(c.Items), 1)
			c.Scrolled = calc.Clamp(c.Scrolled+amount/float32(n), 0, 1)
		case *ScrollBar:
			c.Scrolled = calc.Clamp(c.Scrolled+amount/20, 0, 1)
			if c.OnScrolled != nil {
				c.OnScrolled(c.Scrolled)
			}
		case *Knob:
			turn := -amount / 20 * s.opts.KnobSensitivity
			c.Turn(c.Turned+turn, turn)
		}
		b := h.base()
		b.scroll(amount)
		if b.window != nil {
			b.window.scroll(amount)
		}
	}
}

func (e *Engine) release(btn input.MouseButton) {
	s := e.state
	handled := btn == input.ButtonLeft
	if handled {
		switch a := s.active.(type) {
		case *WindowDrag:
			s.clearActive()
		case *ButtonPress:
			s.clearActive()
			if a.Button.Mode != ButtonToggle {
				a.Button.Pressed = false
			}
			if a.Button.OnRelease != nil {
				a.Button.OnRelease()
			}
		case *ScrollBarDrag:
			s.clearActive()
			a.ScrollBar.ButtonPressed = false
			if a.ScrollBar.OnRelease != nil {
				a.ScrollBar.OnRelease()
			}
		case *KnobTurn:
			s.clearActive()
			if a.Knob.OnRelease != nil {
				a.Knob.OnRelease()
			}
		case *MapPress:
			s.clearActive()
			if a.Map.OnRelease != nil {
				a.Map.OnRelease()
			}
		case *ViewPortPress:
			s.clearActive()
			if a.ViewPort.OnRelease != nil {
				a.ViewPort.OnRelease()
			}
		case *ListDrag:
			s.clearActive()
			e.dropListItem(a)
		case *InventoryDrag:
			s.clearActive()
			e.dropInventoryItem(a)
		default:
			handled = false
		}
	}
	if !handled && s.hover == nil && s.mouseTool != nil && s.mouseTool.OnRelease != nil {
		s.mouseTool.OnRelease(s.gameX, s.gameY, btn)
	}
}

func (e *Engine) dropListItem(d *ListDrag) {
	s := e.state
	px, py := s.pointerX, s.pointerY
	if s.hover != nil && !s.inModalScope(s.hover) {
		return
	}
	switch dst := s.hover.(type) {
	case *List:
		if idx, ok := ListItemAt(dst, px, py); ok && CanDragIntoList(d.List, dst) && dst.OnDragFromList != nil {
			dst.OnDragFromList(d.List, d.FromIndex, idx)
		}
	case *Inventory:
		if x, y, ok := InventoryCellAt(dst, px, py); ok && CanDragIntoInventory(d.List, dst) && dst.OnDragFromList != nil {
			dst.OnDragFromList(d.List, d.FromIndex, x, y)
		}
	case nil:
		src := d.List
		if src.CanDragIntoScreen != nil && src.CanDragIntoScreen() && src.OnDragIntoScreen != nil {
			src.OnDragIntoScreen(d.Item, d.FromIndex, px, py)
		}
	}
}

func (e *Engine) dropInventoryItem(d *InventoryDrag) {
	s := e.state
	px, py := s.pointerX, s.pointerY
	if s.hover != nil && !s.inModalScope(s.hover) {
		return
	}
	switch dst := s.hover.(type) {
	case *List:
		if idx, ok := ListItemAt(dst, px, py); ok && CanDragIntoList(d.Inventory, dst) && dst.OnDragFromInventory != nil {
			dst.OnDragFromInventory(d.Inventory, d.FromX, d.FromY, idx)
		}
	case *Inventory:
		if x, y, ok := InventoryCellAt(dst, px, py); ok && CanDragIntoInventory(d.Inventory, dst) && dst.OnDragFromInventory != nil {
			dst.OnDragFromInventory(d.Inventory, d.FromX, d.FromY, x, y)
		}
	case nil:
		src := d.Inventory
		if src.CanDragIntoScreen != nil && src.CanDragIntoScreen() && src.OnDragIntoScreen != nil {
			src.OnDragIntoScreen(d.Item, d.FromX, d.FromY, px, py)
		}
	}
}
