// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/interaction.go
// Summary: The exclusive interaction slot as a closed set of variants.

package core

// Interaction is the one widget interaction in progress. A nil Interaction
// means nothing is pressed, dragged, focused or open.
type Interaction interface {
	interaction()
}

// WindowDrag moves a window with the pointer.
type WindowDrag struct {
	Window           *Window
	OffsetX, OffsetY int
}

// ButtonPress holds a pressed button.
type ButtonPress struct {
	Button     *Button
	HoldFrames int
}

// KnobTurn turns a knob with vertical pointer movement.
type KnobTurn struct {
	Knob *Knob
}

// TextFieldFocus routes typed characters to a field.
type TextFieldFocus struct {
	Field *TextField
}

// ComboBoxOpen shows a combo box's items.
type ComboBoxOpen struct {
	ComboBox *ComboBox
}

// ContextMenuOpen shows a context menu.
type ContextMenuOpen struct {
	Menu *ContextMenu
}

// ListDrag carries a list item with the pointer.
type ListDrag struct {
	List             *List
	FromIndex        int
	Item             any
	OffsetX, OffsetY int
}

// InventoryDrag carries an inventory item with the pointer.
type InventoryDrag struct {
	Inventory        *Inventory
	FromX, FromY     int
	Item             any
	OffsetX, OffsetY int
}

// MapPress holds a pressed map.
type MapPress struct {
	Map *Map
}

// ViewPortPress holds a pressed game viewport.
type ViewPortPress struct {
	ViewPort *GameViewPort
}

// ScrollBarDrag moves a scroll bar with the pointer.
type ScrollBarDrag struct {
	ScrollBar *ScrollBar
}

func (*WindowDrag) interaction()      {}
func (*ButtonPress) interaction()     {}
func (*KnobTurn) interaction()        {}
func (*TextFieldFocus) interaction()  {}
func (*ComboBoxOpen) interaction()    {}
func (*ContextMenuOpen) interaction() {}
func (*ListDrag) interaction()        {}
func (*InventoryDrag) interaction()   {}
func (*MapPress) interaction()        {}
func (*ViewPortPress) interaction()   {}
func (*ScrollBarDrag) interaction()   {}

// references reports whether the interaction points at t.
func references(a Interaction, t Target) bool {
	switch v := a.(type) {
	case *WindowDrag:
		return Target(v.Window) == t
	case *ButtonPress:
		return Target(v.Button) == t
	case *KnobTurn:
		return Target(v.Knob) == t
	case *TextFieldFocus:
		return Target(v.Field) == t
	case *ComboBoxOpen:
		return Target(v.ComboBox) == t
	case *ListDrag:
		return Target(v.List) == t
	case *InventoryDrag:
		return Target(v.Inventory) == t
	case *MapPress:
		return Target(v.Map) == t
	case *ViewPortPress:
		return Target(v.ViewPort) == t
	case *ScrollBarDrag:
		return Target(v.ScrollBar) == t
	}
	return false
}

// interactionComponent returns the widget the interaction acts on.
func interactionComponent(a Interaction) Component {
	switch v := a.(type) {
	case *ButtonPress:
		return v.Button
	case *KnobTurn:
		return v.Knob
	case *TextFieldFocus:
		return v.Field
	case *ComboBoxOpen:
		return v.ComboBox
	case *ListDrag:
		return v.List
	case *InventoryDrag:
		return v.Inventory
	case *MapPress:
		return v.Map
	case *ViewPortPress:
		return v.ViewPort
	case *ScrollBarDrag:
		return v.ScrollBar
	}
	return nil
}
