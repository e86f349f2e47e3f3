// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/extras.go
// Summary: Notifications, hotkeys and the mouse tool.

package core

import (
	"time"

	"github.com/framegrace/tilegui/input"
)

// NotificationState is the lifecycle stage of a notification.
type NotificationState int

const (
	NotificationInitScroll NotificationState = iota
	NotificationInitDisplay
	NotificationScroll
	NotificationDisplay
	NotificationFadeOut
)

// Notification is a one-line message shown across the top of the screen.
type Notification struct {
	Text        string
	Font        any
	Color       Color
	DisplayTime time.Duration // 0 uses the engine default
	CommonActions

	OnRemove func()

	state        NotificationState
	scrollOffset int
	scrollMax    int
	timer        time.Time
	queued       bool
}

// NewNotification creates a notification with the default display time.
func NewNotification(text string) *Notification {
	return &Notification{Text: text, Color: White}
}

func (n *Notification) target() {}

// State returns the lifecycle stage.
func (n *Notification) State() NotificationState { return n.state }

// Scroll returns the horizontal scroll offset in pixels for long texts.
func (n *Notification) Scroll() int { return n.scrollOffset }

// HotKey fires when all Keys are held together.
type HotKey struct {
	Keys      []input.Key
	OnPress   func()
	OnRelease func()

	pressed bool
}

// NewHotKey creates a hotkey for the given key combination.
func NewHotKey(onPress func(), keys ...input.Key) *HotKey {
	return &HotKey{Keys: keys, OnPress: onPress}
}

// Pressed reports whether the combination is currently active.
func (h *HotKey) Pressed() bool { return h.pressed }

// MouseTool receives pointer events that do not land on the GUI, in game
// world coordinates.
type MouseTool struct {
	Name       string
	Cursor     any
	CursorDown any

	OnPress       func(x, y float32, btn input.MouseButton)
	OnRelease     func(x, y float32, btn input.MouseButton)
	OnDoubleClick func(x, y float32, btn input.MouseButton)
	OnDrag        func(x, y float32)
	OnMove        func(x, y float32)
}
