// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/ops_widgets.go
// Summary: Menu, combo box and text field focus discipline, drag eligibility and
//   pointer-to-item coordinate math.

package core

import (
	"strings"
	"unicode"

	"github.com/framegrace/tilegui/internal/calc"
)

// OpenContextMenu opens menu at (x, y), closing any other open menu. It
// returns false for a menu without items.
func (s *State) OpenContextMenu(menu *ContextMenu, x, y int) bool {
	if menu == nil || len(menu.Items) == 0 {
		return false
	}
	maxWidth := 0
	for _, item := range menu.Items {
		w := s.metrics.TextWidth(item.Font, item.Text)
		if item.Icon != nil {
			w += TileSize
		}
		if w > maxWidth {
			maxWidth = w
		}
	}
	menu.Width = (maxWidth + TileSize) / TileSize
	width, height := s.Resolution()
	menu.X = calc.Clamp(x, 0, calc.LowerBounds(width-menu.Width*TileSize, 0))
	menu.Y = calc.Clamp(y, 0, calc.LowerBounds(height-len(menu.Items)*TileSize, 0))

	menu.state = s
	s.setActive(&ContextMenuOpen{Menu: menu})
	if menu.OnOpen != nil {
		menu.OnOpen()
	}
	if s.controlMode == ControlKeyboard {
		s.pointerX = calc.Clamp(s.pointerX+TileSizeHalf, 0, width-1)
		s.pointerY = calc.Clamp(s.pointerY+TileSizeHalf, 0, height-1)
	}
	return true
}

// OpenContextMenuAtPointer opens menu at the GUI pointer.
func (s *State) OpenContextMenuAtPointer(menu *ContextMenu) bool {
	return s.OpenContextMenu(menu, s.pointerX, s.pointerY)
}

// CloseContextMenu closes the open context menu.
func (s *State) CloseContextMenu() {
	if s.OpenedContextMenu() != nil {
		s.setActive(nil)
	}
}

// ContextMenuItemAt returns the item of the open menu under (x, y).
func (s *State) ContextMenuItemAt(x, y int) *ContextMenuItem {
	menu := s.OpenedContextMenu()
	if menu == nil {
		return nil
	}
	for i, item := range menu.Items {
		if calc.PointInRect(x, y, menu.X, menu.Y+i*TileSize, menu.Width*TileSize, TileSize) {
			return item
		}
	}
	return nil
}

// OpenComboBox opens cb, closing anything else that was open or focused.
func (s *State) OpenComboBox(cb *ComboBox) {
	if cb == nil || s.OpenedComboBox() == cb {
		return
	}
	s.setActive(&ComboBoxOpen{ComboBox: cb})
	if cb.OnOpen != nil {
		cb.OnOpen()
	}
}

// CloseComboBox closes the open combo box.
func (s *State) CloseComboBox() {
	if s.OpenedComboBox() != nil {
		s.setActive(nil)
	}
}

// ComboBoxItemAt returns the item row of an open cb under (x, y). Rows
// start one tile below the box.
func ComboBoxItemAt(cb *ComboBox, x, y int) *ComboBoxItem {
	ax, ay := AbsolutePosition(cb)
	for i, item := range cb.Items {
		if calc.PointInRect(x, y, ax, ay+(i+1)*TileSize, cb.Width*TileSize, TileSize) {
			return item
		}
	}
	return nil
}

// FocusTextField gives tf the keyboard.
func (s *State) FocusTextField(tf *TextField) {
	if tf == nil || s.FocusedTextField() == tf {
		return
	}
	s.setActive(&TextFieldFocus{Field: tf})
	if tf.OnFocus != nil {
		tf.OnFocus()
	}
}

// UnfocusTextField releases the keyboard.
func (s *State) UnfocusTextField() {
	if s.FocusedTextField() != nil {
		s.setActive(nil)
	}
}

// SetTextFieldContent replaces the content, truncating to MaxLength, and
// reports the change.
func (s *State) SetTextFieldContent(tf *TextField, content string) {
	runes := []rune(content)
	if tf.MaxLength > 0 && len(runes) > tf.MaxLength {
		runes = runes[:tf.MaxLength]
	}
	tf.Content = string(runes)
	tf.ContentValid = tf.IsContentValid == nil || tf.IsContentValid(tf.Content)
	if tf.Marker > len(runes) {
		s.SetTextFieldMarker(tf, len(runes))
	}
	if tf.OnContentChange != nil {
		tf.OnContentChange(tf.Content, tf.ContentValid)
	}
}

// SetTextFieldMarker moves the caret and scrolls the visible window so the
// text before the caret fits the field.
func (s *State) SetTextFieldMarker(tf *TextField, pos int) {
	runes := []rune(tf.Content)
	tf.Marker = calc.Clamp(pos, 0, len(runes))
	tf.Offset = calc.Clamp(tf.Offset, 0, len(runes))
	if tf.Marker < tf.Offset {
		tf.Offset = tf.Marker
		return
	}
	limit := tf.Width*TileSize - 4
	for tf.Offset < tf.Marker && s.metrics.TextWidth(tf.Font, string(runes[tf.Offset:tf.Marker])) > limit {
		tf.Offset++
	}
}

// AllowsRune reports whether tf accepts r.
func (tf *TextField) AllowsRune(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	return tf.AllowedCharacters == "" || strings.ContainsRune(tf.AllowedCharacters, r)
}

// textFieldCaretAt returns the caret index for a click at pixel x.
func (s *State) textFieldCaretAt(tf *TextField, x int) int {
	ax, _ := AbsolutePosition(tf)
	rel := x - ax
	runes := []rune(tf.Content)
	offset := calc.Clamp(tf.Offset, 0, len(runes))
	for i := offset; i < len(runes); i++ {
		if s.metrics.TextWidth(tf.Font, string(runes[offset:i+1])) > rel {
			return i
		}
	}
	return len(runes)
}

// CanDragIntoList reports whether an item dragged out of src (a *List or
// *Inventory) may be dropped on dst.
func CanDragIntoList(src Component, dst *List) bool {
	if src == nil || dst == nil {
		return false
	}
	if src == Component(dst) {
		return true
	}
	if !dst.DragInEnabled || dst.Disabled || src.base().Disabled {
		return false
	}
	switch from := src.(type) {
	case *List:
		return from.DragOutEnabled && dst.CanDragFromList != nil && dst.CanDragFromList(from)
	case *Inventory:
		return from.DragOutEnabled && dst.CanDragFromInventory != nil && dst.CanDragFromInventory(from)
	}
	return false
}

// CanDragIntoInventory reports whether an item dragged out of src may be
// dropped on dst.
func CanDragIntoInventory(src Component, dst *Inventory) bool {
	if src == nil || dst == nil {
		return false
	}
	if src == Component(dst) {
		return true
	}
	if !dst.DragInEnabled || dst.Disabled || src.base().Disabled {
		return false
	}
	switch from := src.(type) {
	case *List:
		return from.DragOutEnabled && dst.CanDragFromList != nil && dst.CanDragFromList(from)
	case *Inventory:
		return from.DragOutEnabled && dst.CanDragFromInventory != nil && dst.CanDragFromInventory(from)
	}
	return false
}

// ListItemFrom returns the index of the first visible row.
func ListItemFrom(l *List) int {
	return calc.LowerBounds(calc.Round(l.Scrolled*float32(len(l.Items)-l.Height)), 0)
}

// ListItemAt maps a pixel position to an item index. An index equal to
// len(l.Items) means below the last item.
func ListItemAt(l *List, x, y int) (int, bool) {
	ax, ay := AbsolutePosition(l)
	if !calc.PointInRect(x, y, ax, ay, l.Width*TileSize, l.Height*TileSize) {
		return 0, false
	}
	idx := ListItemFrom(l) + (y-ay)/TileSize
	if idx < len(l.Items) {
		return idx, true
	}
	return len(l.Items), true
}

// InventoryCellAt maps a pixel position to a grid cell.
func InventoryCellAt(inv *Inventory, x, y int) (int, int, bool) {
	ax, ay := AbsolutePosition(inv)
	cell := inv.CellSize()
	cx := calc.FloorDiv(x-ax, cell)
	cy := calc.FloorDiv(y-ay, cell)
	if !inv.PositionValid(cx, cy) {
		return 0, 0, false
	}
	return cx, cy, true
}

func tabWidth(bar *TabBar, tab *Tab) int {
	if bar.BigIconMode {
		return 2
	}
	return tab.Width
}

// TabAt returns the tab under (x, y) and its index, or nil and -1.
func TabAt(bar *TabBar, x, y int) (*Tab, int) {
	ax, ay := AbsolutePosition(bar)
	offset := bar.TabOffset
	for i, tab := range bar.Tabs {
		w := tabWidth(bar, tab)
		if offset+w > bar.Width {
			break
		}
		if calc.PointInRect(x, y, ax+offset*TileSize, ay, w*TileSize, bar.Height*TileSize) {
			return tab, i
		}
		offset += w
	}
	return nil, -1
}

// TooltipDirection is where a tooltip sits relative to the pointer.
type TooltipDirection int

const (
	TooltipRight TooltipDirection = iota
	TooltipLeft
	TooltipBelow
	TooltipAbove
)

// TooltipPlacement positions the current tooltip next to the pointer,
// trying right, left, below and above in that order and using above if
// none fits. Sizes are in pixels.
func (s *State) TooltipPlacement() (x, y, w, h int, dir TooltipDirection, ok bool) {
	t := s.tooltip.current
	if t == nil {
		return 0, 0, 0, 0, TooltipAbove, false
	}
	tw, th := t.Size(s.metrics)
	w, h = tw*TileSize, th*TileSize
	width, height := s.Resolution()
	px, py := s.pointerX, s.pointerY
	candidates := [...]struct {
		x, y int
		dir  TooltipDirection
	}{
		{px + TileSize, py - h/2, TooltipRight},
		{px - TileSize - w, py - h/2, TooltipLeft},
		{px - w/2, py + TileSize, TooltipBelow},
		{px - w/2, py - TileSize - h, TooltipAbove},
	}
	for _, c := range candidates {
		if calc.RectInside(c.x, c.y, w, h, 0, 0, width, height) {
			return c.x, c.y, w, h, c.dir, true
		}
	}
	last := candidates[len(candidates)-1]
	return last.x, last.y, w, h, last.dir, true
}
