// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/widgets.go
// Summary: Concrete widget kinds and their callback hooks.
// Notes: Callbacks are optional func fields; a nil hook is skipped.

package core

import (
	"fmt"
	"time"

	"github.com/framegrace/tilegui/internal/calc"
)

// ButtonMode controls how a button reacts to press and release.
type ButtonMode int

const (
	ButtonDefault ButtonMode = iota
	ButtonToggle
	ButtonHold
)

// Button is a pressable widget with optional text or icon content.
type Button struct {
	ComponentBase
	Mode    ButtonMode
	Pressed bool
	Text    string
	Icon    any
	Font    any

	OnPress   func()
	OnRelease func()
	OnHold    func()
	OnToggle  func(pressed bool)
}

// NewButton creates a default-mode button.
func NewButton(x, y, w, h int) *Button {
	return &Button{ComponentBase: newBase(x, y, w, h)}
}

// SetPressed changes the toggle state and reports it.
func (b *Button) SetPressed(pressed bool) {
	if b.Pressed == pressed {
		return
	}
	b.Pressed = pressed
	if b.Mode == ButtonToggle && b.OnToggle != nil {
		b.OnToggle(pressed)
	}
}

// Image shows a media handle.
type Image struct {
	ComponentBase
	Media      any
	ArrayIndex int
	Started    time.Time
}

// NewImage creates an image sized in tiles.
func NewImage(x, y, w, h int, media any) *Image {
	return &Image{ComponentBase: newBase(x, y, w, h), Media: media}
}

// Text is a static multi-line label.
type Text struct {
	ComponentBase
	Lines []string
	Font  any
}

// NewText creates a label one tile high per line.
func NewText(x, y, w int, lines ...string) *Text {
	h := len(lines)
	if h == 0 {
		h = 1
	}
	return &Text{ComponentBase: newBase(x, y, w, h), Lines: lines}
}

// Orientation of a scroll bar.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// ScrollBar holds a normalized scroll position in [0,1]. For vertical bars
// 0 is the top, for horizontal bars 0 is the left end.
type ScrollBar struct {
	ComponentBase
	Orientation   Orientation
	Scrolled      float32
	ButtonPressed bool

	OnScrolled func(scrolled float32)
	OnPress    func()
	OnRelease  func()
}

// NewScrollBar creates a bar of the given length in tiles.
func NewScrollBar(x, y, length int, o Orientation) *ScrollBar {
	w, h := length, 1
	if o == Vertical {
		w, h = 1, length
	}
	return &ScrollBar{ComponentBase: newBase(x, y, w, h), Orientation: o}
}

// List shows one item per tile row. Items must be comparable values.
type List struct {
	ComponentBase
	Items         []any
	Scrolled      float32
	SelectedItem  any
	SelectedItems []any
	MultiSelect   bool
	Font          any

	DragEnabled    bool
	DragInEnabled  bool
	DragOutEnabled bool

	Text                 func(item any) string
	Icon                 func(item any) any
	ToolTip              func(item any) *Tooltip
	OnItemSelected       func(item any)
	OnItemsSelected      func(items []any)
	CanDragFromList      func(from *List) bool
	OnDragFromList       func(from *List, fromIndex, toIndex int)
	CanDragFromInventory func(from *Inventory) bool
	OnDragFromInventory  func(from *Inventory, fromX, fromY, toIndex int)
	CanDragIntoScreen    func() bool
	OnDragIntoScreen     func(item any, fromIndex, screenX, screenY int)
}

// NewList creates a list showing h rows.
func NewList(x, y, w, h int, items []any) *List {
	return &List{ComponentBase: newBase(x, y, w, h), Items: items, DragOutEnabled: true}
}

// IsSelected reports whether item is in the selection.
func (l *List) IsSelected(item any) bool {
	if l.MultiSelect {
		return indexOf(l.SelectedItems, item) >= 0
	}
	return l.SelectedItem != nil && l.SelectedItem == item
}

// ToggleSelect adds or removes item from the multi-selection.
func (l *List) ToggleSelect(item any) {
	if indexOf(l.SelectedItems, item) >= 0 {
		l.SelectedItems = removeItem(l.SelectedItems, item)
	} else {
		l.SelectedItems = append(l.SelectedItems, item)
	}
	if l.OnItemsSelected != nil {
		l.OnItemsSelected(l.SelectedItems)
	}
}

// Select replaces the single selection.
func (l *List) Select(item any) {
	l.SelectedItem = item
	if l.OnItemSelected != nil {
		l.OnItemSelected(item)
	}
}

// ClearSelection empties the selection and reports a nil item.
func (l *List) ClearSelection() {
	if l.MultiSelect {
		l.SelectedItems = nil
		if l.OnItemsSelected != nil {
			l.OnItemsSelected(nil)
		}
	} else {
		l.SelectedItem = nil
	}
	if l.OnItemSelected != nil {
		l.OnItemSelected(nil)
	}
}

// ItemText returns the display text for item.
func (l *List) ItemText(item any) string {
	if l.Text != nil {
		return l.Text(item)
	}
	return fmt.Sprint(item)
}

// Knob is a rotary control with a normalized value.
type Knob struct {
	ComponentBase
	Turned  float32
	Endless bool

	OnTurned  func(turned, amount float32)
	OnPress   func()
	OnRelease func()
}

// NewKnob creates a two by two tile knob.
func NewKnob(x, y int) *Knob {
	return &Knob{ComponentBase: newBase(x, y, 2, 2)}
}

// Turn sets the knob to value, wrapping for endless knobs and clamping to
// [0,1] otherwise, then reports the change.
func (k *Knob) Turn(value, amount float32) {
	if k.Endless {
		if value > 1 {
			value -= 1
		} else if value < 0 {
			value = 1 - calc.Abs(value)
		}
	}
	k.Turned = calc.Clamp(value, 0, 1)
	if k.OnTurned != nil {
		k.OnTurned(k.Turned, amount)
	}
}

// Map is a pressable canvas with overlay markers.
type Map struct {
	ComponentBase
	Texture  any
	Overlays []*MapOverlay

	OnPress   func(x, y int)
	OnRelease func()
}

// NewMap creates a map canvas.
func NewMap(x, y, w, h int) *Map {
	return &Map{ComponentBase: newBase(x, y, w, h)}
}

// MapOverlay is a marker drawn on a Map at pixel coordinates.
type MapOverlay struct {
	X, Y    int
	Media   any
	Color   Color
	FadeOut bool
	Created time.Time

	m *Map
}

// Map returns the map the overlay belongs to.
func (o *MapOverlay) Map() *Map { return o.m }

// AddOverlay attaches o unless it belongs to a map already.
func (m *Map) AddOverlay(o *MapOverlay) {
	if o == nil || o.m != nil {
		return
	}
	o.m = m
	m.Overlays = append(m.Overlays, o)
}

// RemoveOverlay detaches o if it belongs to m.
func (m *Map) RemoveOverlay(o *MapOverlay) {
	if o == nil || o.m != m {
		return
	}
	o.m = nil
	m.Overlays = removeItem(m.Overlays, o)
}

// TextField is a single line editor. MaxLength 0 means unlimited and an
// empty AllowedCharacters accepts every printable rune.
type TextField struct {
	ComponentBase
	Content           string
	Font              any
	AllowedCharacters string
	MaxLength         int
	Offset            int
	Marker            int
	ContentValid      bool

	IsContentValid  func(content string) bool
	OnContentChange func(content string, valid bool)
	OnTyped         func(r rune)
	OnEnter         func(content string, valid bool)
	OnFocus         func()
	OnUnFocus       func()
}

// NewTextField creates a one tile high field.
func NewTextField(x, y, w int) *TextField {
	return &TextField{ComponentBase: newBase(x, y, w, 1), ContentValid: true}
}

// Inventory is a grid of item cells indexed Items[x][y].
type Inventory struct {
	ComponentBase
	Items        [][]any
	DoubleSized  bool
	SelectedItem any
	GridColor    Color

	DragEnabled    bool
	DragInEnabled  bool
	DragOutEnabled bool

	Icon                 func(item any) any
	ToolTip              func(item any) *Tooltip
	OnItemSelected       func(item any, x, y int)
	CanDragFromInventory func(from *Inventory) bool
	OnDragFromInventory  func(from *Inventory, fromX, fromY, toX, toY int)
	CanDragFromList      func(from *List) bool
	OnDragFromList       func(from *List, fromIndex, toX, toY int)
	CanDragIntoScreen    func() bool
	OnDragIntoScreen     func(item any, fromX, fromY, screenX, screenY int)
}

// NewInventory creates an inventory sized to its grid.
func NewInventory(x, y int, items [][]any, doubleSized bool) *Inventory {
	inv := &Inventory{Items: items, DoubleSized: doubleSized, DragOutEnabled: true, GridColor: White}
	cols, rows := inv.GridSize()
	factor := 1
	if doubleSized {
		factor = 2
	}
	inv.ComponentBase = newBase(x, y, cols*factor, rows*factor)
	return inv
}

// GridSize returns the number of columns and rows.
func (inv *Inventory) GridSize() (int, int) {
	if len(inv.Items) == 0 {
		return 0, 0
	}
	return len(inv.Items), len(inv.Items[0])
}

// CellSize returns the pixel edge of one cell.
func (inv *Inventory) CellSize() int {
	if inv.DoubleSized {
		return TileSize * 2
	}
	return TileSize
}

// PositionValid reports whether (x, y) is a cell of the grid.
func (inv *Inventory) PositionValid(x, y int) bool {
	cols, rows := inv.GridSize()
	return x >= 0 && y >= 0 && x < cols && y < rows
}

// ShapeKind enumerates the primitive shapes a composer must support.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeDiamond
	ShapeOval
	ShapeRightTriangle
	ShapeTriangleUp
	ShapeTriangleDown
)

// Shape is a filled primitive.
type Shape struct {
	ComponentBase
	Kind ShapeKind
}

// NewShape creates a shape component.
func NewShape(x, y, w, h int, kind ShapeKind) *Shape {
	return &Shape{ComponentBase: newBase(x, y, w, h), Kind: kind}
}

// ProgressBar shows a fill ratio in [0,1].
type ProgressBar struct {
	ComponentBase
	Progress         float32
	ShowText         bool
	TwoDecimalDigits bool
	Font             any
}

// NewProgressBar creates a one tile high bar.
func NewProgressBar(x, y, w int) *ProgressBar {
	return &ProgressBar{ComponentBase: newBase(x, y, w, 1)}
}

// ProgressText renders the percentage label.
func (p *ProgressBar) ProgressText() string {
	if p.TwoDecimalDigits {
		return fmt.Sprintf("%.2f%%", p.Progress*100)
	}
	return fmt.Sprintf("%d%%", int(p.Progress*100))
}

// CheckBoxStyle selects the checkbox glyph.
type CheckBoxStyle int

const (
	CheckBoxSquare CheckBoxStyle = iota
	CheckBoxRadio
)

// CheckBox is a labelled boolean toggle.
type CheckBox struct {
	ComponentBase
	Text    string
	Font    any
	Checked bool
	Style   CheckBoxStyle

	OnCheck func(checked bool)
}

// NewCheckBox creates a checkbox one tile high and wide enough for its box.
func NewCheckBox(x, y int, text string) *CheckBox {
	return &CheckBox{ComponentBase: newBase(x, y, 1, 1), Text: text}
}

// SetChecked changes the state and reports it.
func (c *CheckBox) SetChecked(checked bool) {
	c.Checked = checked
	if c.OnCheck != nil {
		c.OnCheck(checked)
	}
}

// GameViewPort renders a secondary camera into a window region.
type GameViewPort struct {
	ComponentBase
	Camera         Camera
	UpdateInterval time.Duration

	OnPress   func(x, y int)
	OnRelease func()

	lastRender time.Time
}

// NewGameViewPort creates a viewport looking at the given camera.
func NewGameViewPort(x, y, w, h int, cam Camera) *GameViewPort {
	return &GameViewPort{ComponentBase: newBase(x, y, w, h), Camera: cam}
}
