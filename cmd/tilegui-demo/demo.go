// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/tilegui-demo/demo.go
// Summary: Builds the demo windows.

package main

import (
	"fmt"
	"time"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/tileui/core"
)

func buildDemo(e *core.Engine) error {
	s := e.State()
	status := core.NewText(1, 13, 28, "ready")
	say := func(format string, args ...any) {
		status.Lines[0] = fmt.Sprintf(format, args...)
	}

	widgets := core.NewWindow(8, 8, 30, 15, "Widgets")
	tabs := core.NewTabBar(0, 1, 30)
	controls := core.NewTab("Controls", 10)
	lists := core.NewTab("Lists", 8)
	tabs.AddTab(controls)
	tabs.AddTab(lists)

	hold := core.NewButton(1, 3, 8, 1)
	hold.Text = "Hold"
	hold.Mode = core.ButtonHold
	count := 0
	hold.OnHold = func() { count++; say("held %d", count) }

	toggle := core.NewButton(10, 3, 8, 1)
	toggle.Text = "Toggle"
	toggle.Mode = core.ButtonToggle
	toggle.OnToggle = func(p bool) { say("toggle %v", p) }

	knob := core.NewKnob(20, 3)
	progress := core.NewProgressBar(1, 9, 26)
	progress.ShowText = true
	knob.OnTurned = func(turned, _ float32) { progress.Progress = turned }

	field := core.NewTextField(1, 5, 16)
	field.MaxLength = 24
	field.OnEnter = func(content string, _ bool) { say("entered %q", content) }

	combo := core.NewComboBox(1, 7, 12)
	for _, name := range []string{"Red", "Green", "Blue"} {
		combo.AddItem(core.NewComboBoxItem(name))
	}
	combo.OnItemSelected = func(item *core.ComboBoxItem) { say("picked %s", item.Text) }

	check := core.NewCheckBox(15, 7, "Magnet")
	check.Width = 10
	check.OnCheck = func(on bool) { say("magnet %v", on) }

	for _, c := range []core.Component{hold, toggle, knob, field, combo, check, progress} {
		controls.AddComponent(c)
	}

	list := core.NewList(1, 3, 12, 8, []any{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota"})
	list.DragEnabled = true
	list.OnItemSelected = func(item any) { say("selected %v", item) }
	list.ToolTip = func(item any) *core.Tooltip { return core.NewTooltip(fmt.Sprintf("item %v", item)) }
	list.OnDragFromList = func(from *core.List, fromIndex, toIndex int) {
		if from != list {
			return
		}
		item := list.Items[fromIndex]
		items := append(list.Items[:fromIndex:fromIndex], list.Items[fromIndex+1:]...)
		list.Items = append(items[:toIndex:toIndex], append([]any{item}, items[toIndex:]...)...)
	}
	bar := core.NewScrollBar(13, 3, 8, core.Vertical)
	bar.OnScrolled = func(v float32) { list.Scrolled = v }
	lists.AddComponent(list)
	lists.AddComponent(bar)

	widgets.AddComponents(tabs, hold, toggle, knob, field, combo, check, progress, list, bar, status)
	menu := core.NewContextMenu()
	menu.AddItem(core.NewContextMenuItem("Notify", func() {
		s.AddNotification(core.NewNotification("Hello from the context menu"))
	}))
	menu.AddItem(core.NewContextMenuItem("Fold", func() { widgets.SetFolded(true) }))
	widgets.OnMouseClick = func(btn input.MouseButton) {
		if btn == input.ButtonRight {
			s.OpenContextMenuAtPointer(menu)
		}
	}
	s.AddWindow(widgets)

	bag := core.NewWindow(8*40, 8, 12, 8, "Bag")
	inv := core.NewInventory(1, 2, [][]any{{"sword", nil, nil}, {nil, "shield", nil}, {nil, nil, "potion"}, {nil, nil, nil}}, true)
	inv.DragEnabled = true
	inv.ToolTip = func(item any) *core.Tooltip { return core.NewTooltip(fmt.Sprint(item)) }
	inv.OnDragFromInventory = func(from *core.Inventory, fx, fy, tx, ty int) {
		from.Items[fx][fy], inv.Items[tx][ty] = inv.Items[tx][ty], from.Items[fx][fy]
	}
	bag.AddComponent(inv)
	bag.EnforceScreenBounds = true
	s.AddWindow(bag)

	clock := core.NewText(0, 0, 10, "")
	clock.AddUpdateAction(&core.UpdateAction{Interval: time.Second, OnUpdate: func() {
		clock.Lines[0] = time.Now().Format("15:04:05")
	}})
	s.AddScreenComponent(clock)

	f2, err := input.ParseKey("F2")
	if err != nil {
		return err
	}
	s.AddHotKey(core.NewHotKey(func() {
		s.AddNotification(core.NewNotification("F2 pressed"))
	}, f2))
	return nil
}
