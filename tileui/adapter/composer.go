// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/adapter/composer.go
// Summary: Terminal composer drawing the session state into a tcell screen.
// Usage: One tile maps to one cell. Layers go screen components, windows,
//   open combo box, context menu, drag ghost, tooltip, notifications, then
//   the emulated pointer.

package adapter

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/tilegui/internal/calc"
	"github.com/framegrace/tilegui/tileui/core"
)

// Terminal is a core.Composer for tcell screens.
type Terminal struct {
	screen tcell.Screen
	tints  *core.TintStack
	// Background is the window body color before tinting.
	Background core.Color
}

// NewTerminal creates a composer drawing into screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, Background: core.RGBA(0.12, 0.12, 0.16, 1)}
}

func toCell(px int) int {
	return calc.FloorDiv(px, core.TileSize)
}

func (t *Terminal) color(c core.Color) tcell.Color {
	if t.tints != nil {
		c = c.Mul(t.tints.Current())
	}
	r, g, b, a := c.RGBA255()
	scale := int32(a)
	return tcell.NewRGBColor(int32(r)*scale/255, int32(g)*scale/255, int32(b)*scale/255)
}

func (t *Terminal) style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(t.color(fg)).Background(t.color(bg))
}

func (t *Terminal) fill(x, y, w, h int, ch rune, st tcell.Style) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			t.screen.SetContent(xx, yy, ch, nil, st)
		}
	}
}

// text draws s clipped to maxWidth cells and returns the cells used.
func (t *Terminal) text(x, y, maxWidth int, s string, st tcell.Style) int {
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if used+rw > maxWidth {
			break
		}
		t.screen.SetContent(x+used, y, r, nil, st)
		used += rw
	}
	return used
}

// Compose implements core.Composer.
func (t *Terminal) Compose(s *core.State) {
	t.tints = s.Tints()
	defer func() { t.tints = nil }()
	t.screen.Clear()

	for _, c := range s.ScreenComponents() {
		t.component(s, c)
	}
	modal := s.Modal()
	for _, w := range s.Windows() {
		if !w.Visible {
			continue
		}
		tint := w.Color
		if modal != nil && w != modal {
			tint = tint.Grayscale()
		}
		t.tints.WithTint(tint, func() { t.window(s, w) })
	}
	t.openComboBox(s)
	t.contextMenu(s)
	t.dragGhost(s)
	t.tooltip(s)
	t.notifications(s)
	if s.ControlMode() == core.ControlKeyboard {
		px, py := s.Pointer()
		t.screen.SetContent(toCell(px), toCell(py), '+', nil, t.style(core.White, core.Black).Reverse(true))
	}
}

func (t *Terminal) window(s *core.State, w *core.Window) {
	x, y := toCell(w.X), toCell(w.Y)
	h := w.RealHeight() / core.TileSize
	body := t.style(core.White, t.Background)
	t.fill(x, y, w.Width, h, ' ', body)
	if w.HasTitleBar {
		bar := t.style(core.Black, core.White)
		t.fill(x, y, w.Width, 1, ' ', bar)
		marker := '▾'
		if w.Folded {
			marker = '▸'
		}
		t.screen.SetContent(x, y, marker, nil, bar)
		t.text(x+2, y, w.Width-2, w.Title, bar.Bold(true))
	}
	if w.Folded {
		return
	}
	for _, c := range w.Components {
		t.component(s, c)
	}
}

func (t *Terminal) component(s *core.State, c core.Component) {
	b := core.Base(c)
	if !b.Visible || core.IsHiddenByTab(c) {
		return
	}
	px, py, pw, ph := core.Bounds(c)
	x, y, w, h := toCell(px), toCell(py), pw/core.TileSize, ph/core.TileSize
	fg, bg := b.Color, t.Background
	if b.Disabled {
		fg = fg.Grayscale().Mul(core.Gray)
	}
	st := t.style(fg, bg)

	switch v := c.(type) {
	case *core.Button:
		if v.Pressed {
			st = st.Reverse(true)
		}
		t.fill(x, y, w, h, ' ', st)
		label := "[" + v.Text + "]"
		if v.Text == "" {
			label = "[ ]"
		}
		lw := runewidth.StringWidth(label)
		t.text(x+calc.LowerBounds((w-lw)/2, 0), y+h/2, w, label, st)
	case *core.Text:
		for i, line := range v.Lines {
			if i >= h {
				break
			}
			t.text(x, y+i, w, line, st)
		}
	case *core.ScrollBar:
		t.scrollBar(v, x, y, w, h, st)
	case *core.List:
		from := core.ListItemFrom(v)
		for row := 0; row < h && from+row < len(v.Items); row++ {
			item := v.Items[from+row]
			rowStyle := st
			if v.IsSelected(item) {
				rowStyle = st.Reverse(true)
			}
			t.fill(x, y+row, w, 1, ' ', rowStyle)
			t.text(x, y+row, w, v.ItemText(item), rowStyle)
		}
	case *core.Knob:
		t.fill(x, y, w, h, ' ', st)
		t.text(x, y, w, fmt.Sprintf("%3d", int(v.Turned*100+0.5)), st)
		if s.TurnedKnob() == v {
			t.text(x, y+1, w, "<>", st.Reverse(true))
		}
	case *core.Map:
		t.fill(x, y, w, h, '~', t.style(fg.Mul(core.Gray), bg))
		for _, o := range v.Overlays {
			t.screen.SetContent(x+toCell(o.X), y+toCell(o.Y), '*', nil, t.style(o.Color, bg))
		}
	case *core.TextField:
		t.textField(s, v, x, y, w, st)
	case *core.Inventory:
		t.inventory(v, x, y, st)
	case *core.TabBar:
		offset := v.TabOffset
		for i, tab := range v.Tabs {
			tw := tab.Width
			if v.BigIconMode {
				tw = 2
			}
			if offset+tw > w {
				break
			}
			tabStyle := st
			if i == v.Selected {
				tabStyle = st.Reverse(true)
			}
			t.fill(x+offset, y, tw, 1, ' ', tabStyle)
			t.text(x+offset, y, tw, tab.Title, tabStyle)
			offset += tw
		}
	case *core.ComboBox:
		t.fill(x, y, w, 1, ' ', st.Underline(true))
		if v.Selected != nil {
			t.text(x, y, w-1, v.Selected.Text, st.Underline(true))
		}
		t.screen.SetContent(x+w-1, y, '▾', nil, st)
	case *core.Shape:
		t.fill(x, y, w, h, shapeGlyph(v.Kind), st)
	case *core.ProgressBar:
		filled := calc.Clamp(int(v.Progress*float32(w)+0.5), 0, w)
		t.fill(x, y, filled, 1, '█', st)
		t.fill(x+filled, y, w-filled, 1, '░', st)
		if v.ShowText {
			label := v.ProgressText()
			t.text(x+calc.LowerBounds((w-len(label))/2, 0), y, w, label, st.Reverse(true))
		}
	case *core.CheckBox:
		box := "[ ] "
		if v.Style == core.CheckBoxRadio {
			box = "( ) "
		}
		if v.Checked {
			box = strings.Replace(box, " ", "x", 1)
		}
		t.text(x, y, calc.LowerBounds(w, len(box)+runewidth.StringWidth(v.Text)), box+v.Text, st)
	case *core.Image:
		t.fill(x, y, w, h, '▒', st)
	case *core.GameViewPort:
		// The host renders the game layer into the viewport area.
	}
}

func shapeGlyph(kind core.ShapeKind) rune {
	switch kind {
	case core.ShapeRect:
		return '█'
	case core.ShapeDiamond:
		return '◆'
	case core.ShapeOval:
		return '●'
	case core.ShapeRightTriangle:
		return '◢'
	case core.ShapeTriangleUp:
		return '▲'
	case core.ShapeTriangleDown:
		return '▼'
	}
	panic(fmt.Errorf("%w: shape kind %d", core.ErrUnsupported, kind))
}

func (t *Terminal) scrollBar(v *core.ScrollBar, x, y, w, h int, st tcell.Style) {
	if v.ButtonPressed {
		st = st.Bold(true)
	}
	if v.Orientation == core.Vertical {
		t.fill(x, y, w, h, '│', st)
		thumb := int(v.Scrolled*float32(h-1) + 0.5)
		t.fill(x, y+thumb, w, 1, '█', st)
		return
	}
	t.fill(x, y, w, h, '─', st)
	thumb := int(v.Scrolled*float32(w-1) + 0.5)
	t.fill(x+thumb, y, 1, h, '█', st)
}

func (t *Terminal) textField(s *core.State, v *core.TextField, x, y, w int, st tcell.Style) {
	if !v.ContentValid {
		st = st.Foreground(t.color(core.RGBA(1, 0.3, 0.3, 1)))
	}
	t.fill(x, y, w, 1, '_', st)
	runes := []rune(v.Content)
	offset := calc.Clamp(v.Offset, 0, len(runes))
	used := t.text(x, y, w, string(runes[offset:]), st)
	if s.FocusedTextField() != v {
		return
	}
	caret := x + runewidth.StringWidth(string(runes[offset:calc.Clamp(v.Marker, offset, len(runes))]))
	if caret < x+w {
		ch := '_'
		if v.Marker < len(runes) && caret-x < used {
			ch = runes[v.Marker]
		}
		t.screen.SetContent(caret, y, ch, nil, st.Reverse(true))
	}
}

func itemGlyph(icon func(any) any, item any) string {
	if icon != nil {
		if s, ok := icon(item).(string); ok && s != "" {
			return s
		}
	}
	text := fmt.Sprint(item)
	for _, r := range text {
		return string(r)
	}
	return "?"
}

func (t *Terminal) inventory(v *core.Inventory, x, y int, st tcell.Style) {
	cols, rows := v.GridSize()
	cell := v.CellSize() / core.TileSize
	grid := t.style(v.GridColor.Mul(core.Gray), t.Background)
	for cx := 0; cx < cols; cx++ {
		for cy := 0; cy < rows; cy++ {
			item := v.Items[cx][cy]
			ox, oy := x+cx*cell, y+cy*cell
			t.fill(ox, oy, cell, cell, '·', grid)
			if item == nil {
				continue
			}
			itemStyle := st
			if item == v.SelectedItem {
				itemStyle = st.Reverse(true)
			}
			t.text(ox, oy, cell, itemGlyph(v.Icon, item), itemStyle)
		}
	}
}

func (t *Terminal) openComboBox(s *core.State) {
	cb := s.OpenedComboBox()
	if cb == nil {
		return
	}
	px, py := core.AbsolutePosition(cb)
	x, y := toCell(px), toCell(py)
	hover := s.Hover()
	mx, my := s.Pointer()
	hovered := core.ComboBoxItemAt(cb, mx, my)
	for i, item := range cb.Items {
		st := t.style(item.Color, t.Background)
		if hover == core.Target(cb) && item == hovered {
			st = st.Reverse(true)
		}
		t.fill(x, y+1+i, cb.Width, 1, ' ', st)
		t.text(x, y+1+i, cb.Width, item.Text, st)
	}
}

func (t *Terminal) contextMenu(s *core.State) {
	menu := s.OpenedContextMenu()
	if menu == nil {
		return
	}
	x, y := toCell(menu.X), toCell(menu.Y)
	hover := s.Hover()
	for i, item := range menu.Items {
		st := t.style(item.Color.Mul(menu.Color), t.Background)
		if hover == core.Target(item) {
			st = st.Reverse(true)
		}
		t.fill(x, y+i, menu.Width, 1, ' ', st)
		t.text(x, y+i, menu.Width, item.Text, st)
	}
}

func (t *Terminal) dragGhost(s *core.State) {
	alpha := float64(s.Options().DragAlpha)
	px, py := s.Pointer()
	if d := s.DraggedList(); d != nil {
		st := t.style(d.List.Color.WithAlpha(alpha), t.Background)
		t.text(toCell(px-d.OffsetX), toCell(py-d.OffsetY), d.List.Width, d.List.ItemText(d.Item), st)
		return
	}
	if d := s.DraggedInventory(); d != nil {
		st := t.style(d.Inventory.Color.WithAlpha(alpha), t.Background)
		cell := d.Inventory.CellSize() / core.TileSize
		t.text(toCell(px-d.OffsetX), toCell(py-d.OffsetY), cell, itemGlyph(d.Inventory.Icon, d.Item), st)
	}
}

func (t *Terminal) tooltip(s *core.State) {
	if s.TooltipPhase() == core.TooltipIdle {
		return
	}
	tip := s.Tooltip()
	px, py, pw, ph, _, ok := s.TooltipPlacement()
	if !ok || tip == nil {
		return
	}
	fade := float64(s.TooltipFade())
	x, y, w, h := toCell(px), toCell(py), pw/core.TileSize, ph/core.TileSize
	st := t.style(tip.LineColor.WithAlpha(fade), tip.Color.Mul(t.Background).WithAlpha(fade))
	t.fill(x, y, w, h, ' ', st)
	for i, line := range tip.Lines {
		t.text(x+1, y+i, w-1, line, st)
	}
	for _, img := range tip.Images {
		t.screen.SetContent(x+toCell(img.X), y+toCell(img.Y), '■', nil, t.style(img.Color.WithAlpha(fade), t.Background))
	}
}

func (t *Terminal) notifications(s *core.State) {
	width, _ := s.Resolution()
	cols := width / core.TileSize
	for i, n := range s.Notifications() {
		alpha := float64(s.NotificationAlpha(n))
		st := t.style(n.Color.WithAlpha(alpha), core.Black)
		t.fill(0, i, cols, 1, ' ', st)
		runes := []rune(n.Text)
		skip := calc.Clamp(toCell(n.Scroll()), 0, len(runes))
		t.text(0, i, cols, string(runes[skip:]), st)
	}
}

var _ core.Composer = (*Terminal)(nil)
