// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/containers.go
// Summary: Tab bars, combo boxes and context menus with their child relations.
// Notes: Children keep a back-reference to their container; add and remove
//   update the reference and the membership slice together.

package core

// Tab groups components that are only visible while the tab is selected.
type Tab struct {
	Title      string
	Icon       any
	Width      int // tiles
	Components []Component

	OnSelect func()

	bar *TabBar
}

// NewTab creates a tab of the given width in tiles.
func NewTab(title string, width int) *Tab {
	return &Tab{Title: title, Width: width}
}

// TabBar returns the bar the tab belongs to.
func (t *Tab) TabBar() *TabBar { return t.bar }

// AddComponent makes c a member of the tab. The component keeps its
// window or screen owner; a component belongs to at most one tab.
func (t *Tab) AddComponent(c Component) {
	if c == nil {
		return
	}
	b := c.base()
	if b.tab != nil {
		return
	}
	b.tab = t
	t.Components = append(t.Components, c)
}

// RemoveComponent drops c from the tab.
func (t *Tab) RemoveComponent(c Component) {
	if c == nil {
		return
	}
	b := c.base()
	if b.tab != t {
		return
	}
	b.tab = nil
	t.Components = removeItem(t.Components, c)
}

// TabBar is a row of tabs.
type TabBar struct {
	ComponentBase
	Tabs        []*Tab
	Selected    int
	TabOffset   int
	BigIconMode bool

	OnChangeTab func(index int, tab *Tab)
}

// NewTabBar creates a one tile high tab bar.
func NewTabBar(x, y, w int) *TabBar {
	return &TabBar{ComponentBase: newBase(x, y, w, 1)}
}

// AddTab appends tab unless it already belongs to a bar.
func (tb *TabBar) AddTab(tab *Tab) {
	if tab == nil || tab.bar != nil {
		return
	}
	tab.bar = tb
	tb.Tabs = append(tb.Tabs, tab)
}

// RemoveTab detaches tab from the bar.
func (tb *TabBar) RemoveTab(tab *Tab) {
	if tab == nil || tab.bar != tb {
		return
	}
	tab.bar = nil
	tb.Tabs = removeItem(tb.Tabs, tab)
	if tb.Selected >= len(tb.Tabs) {
		tb.Selected = len(tb.Tabs) - 1
	}
	if tb.Selected < 0 {
		tb.Selected = 0
	}
}

// SelectedTab returns the active tab or nil for an empty bar.
func (tb *TabBar) SelectedTab() *Tab {
	if tb.Selected < 0 || tb.Selected >= len(tb.Tabs) {
		return nil
	}
	return tb.Tabs[tb.Selected]
}

// SelectTab activates the tab at index.
func (tb *TabBar) SelectTab(index int) {
	if index < 0 || index >= len(tb.Tabs) || index == tb.Selected {
		return
	}
	tb.Selected = index
	tab := tb.Tabs[index]
	if tab.OnSelect != nil {
		tab.OnSelect()
	}
	if tb.OnChangeTab != nil {
		tb.OnChangeTab(index, tab)
	}
}

// IsHiddenByTab reports whether c sits in a tab that is not shown, looking
// through nested tab bars.
func IsHiddenByTab(c Component) bool {
	tab := c.base().tab
	if tab == nil {
		return false
	}
	if tab.bar == nil || tab.bar.SelectedTab() != tab {
		return true
	}
	return IsHiddenByTab(tab.bar)
}

// ComboBoxItem is one selectable entry.
type ComboBoxItem struct {
	Text  string
	Font  any
	Icon  any
	Color Color
	Data  any

	OnSelect func()

	comboBox *ComboBox
}

// NewComboBoxItem creates an item with text.
func NewComboBoxItem(text string) *ComboBoxItem {
	return &ComboBoxItem{Text: text, Color: White}
}

// ComboBox returns the combo box the item belongs to.
func (i *ComboBoxItem) ComboBox() *ComboBox { return i.comboBox }

// ComboBox is a drop-down selector. Items open below the box.
type ComboBox struct {
	ComponentBase
	Items    []*ComboBoxItem
	Selected *ComboBoxItem

	OnItemSelected func(item *ComboBoxItem)
	OnOpen         func()
	OnClose        func()
}

// NewComboBox creates a one tile high combo box.
func NewComboBox(x, y, w int) *ComboBox {
	return &ComboBox{ComponentBase: newBase(x, y, w, 1)}
}

// AddItem appends item unless it already belongs to a combo box.
func (cb *ComboBox) AddItem(item *ComboBoxItem) {
	if item == nil || item.comboBox != nil {
		return
	}
	item.comboBox = cb
	cb.Items = append(cb.Items, item)
}

// RemoveItem detaches item, clearing the selection if it was selected.
func (cb *ComboBox) RemoveItem(item *ComboBoxItem) {
	if item == nil || item.comboBox != cb {
		return
	}
	item.comboBox = nil
	cb.Items = removeItem(cb.Items, item)
	if cb.Selected == item {
		cb.Selected = nil
	}
}

// Select makes item the current selection.
func (cb *ComboBox) Select(item *ComboBoxItem) {
	if item != nil && item.comboBox != cb {
		return
	}
	cb.Selected = item
	if item == nil {
		return
	}
	if item.OnSelect != nil {
		item.OnSelect()
	}
	if cb.OnItemSelected != nil {
		cb.OnItemSelected(item)
	}
}

// ContextMenuItem is one entry of a context menu.
type ContextMenuItem struct {
	Text  string
	Font  any
	Icon  any
	Color Color
	Data  any

	OnSelect func()

	menu *ContextMenu
}

// NewContextMenuItem creates an item with text.
func NewContextMenuItem(text string, onSelect func()) *ContextMenuItem {
	return &ContextMenuItem{Text: text, Color: White, OnSelect: onSelect}
}

func (i *ContextMenuItem) target() {}

// ContextMenu returns the menu the item belongs to.
func (i *ContextMenuItem) ContextMenu() *ContextMenu { return i.menu }

// ContextMenu is a floating list of actions opened at a screen position.
type ContextMenu struct {
	X, Y  int // pixels, set when opened
	Width int // tiles, set when opened
	Items []*ContextMenuItem
	Color Color

	OnOpen         func()
	OnClose        func()
	OnItemSelected func(item *ContextMenuItem)

	state *State // set while opened
}

// NewContextMenu creates an empty menu.
func NewContextMenu() *ContextMenu {
	return &ContextMenu{Color: White}
}

// AddItem appends item unless it already belongs to a menu.
func (m *ContextMenu) AddItem(item *ContextMenuItem) {
	if item == nil || item.menu != nil {
		return
	}
	item.menu = m
	m.Items = append(m.Items, item)
}

// RemoveItem detaches item from the menu.
func (m *ContextMenu) RemoveItem(item *ContextMenuItem) {
	if item == nil || item.menu != m {
		return
	}
	item.menu = nil
	m.Items = removeItem(m.Items, item)
	if len(m.Items) == 0 && m.state != nil && m.state.OpenedContextMenu() == m {
		m.state.CloseContextMenu()
	}
}
