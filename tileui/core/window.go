// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/window.go
// Summary: Windows own an ordered list of components and a title bar row.

package core

// Window is a movable container. X and Y are the top-left pixel position;
// Width and Height are tiles. The title bar, when present, is the top row.
type Window struct {
	X, Y          int
	Width, Height int
	Title         string
	Font          any
	Icon          any
	Color         Color
	Name          string
	Data          any

	Folded              bool
	HasTitleBar         bool
	Movable             bool
	AlwaysOnTop         bool
	Visible             bool
	EnforceScreenBounds bool

	Components    []Component
	UpdateActions []*UpdateAction
	CommonActions

	OnAdd    func()
	OnRemove func()
	OnMove   func()
	OnFold   func()
	OnUnfold func()

	state        *State
	placedX      int
	placedY      int
	placedFolded bool
}

// NewWindow creates a visible, movable window with a title bar.
func NewWindow(x, y, w, h int, title string) *Window {
	return &Window{
		X: x, Y: y, Width: w, Height: h,
		Title:       title,
		Color:       White,
		HasTitleBar: true,
		Movable:     true,
		Visible:     true,
		placedX:     x,
		placedY:     y,
	}
}

func (w *Window) target() {}

// OnScreen reports whether the window is attached to a session.
func (w *Window) OnScreen() bool { return w.state != nil }

// SetPosition places the window. A window removed from the screen returns
// to the position it was added at or the last position set here.
func (w *Window) SetPosition(x, y int) {
	w.X, w.Y = x, y
	w.placedX, w.placedY = x, y
}

// SetFolded sets the fold state explicitly.
func (w *Window) SetFolded(folded bool) {
	w.setFolded(folded)
	w.placedFolded = folded
}

func (w *Window) setFolded(folded bool) {
	if w.Folded == folded {
		return
	}
	w.Folded = folded
	if folded && w.OnFold != nil {
		w.OnFold()
	} else if !folded && w.OnUnfold != nil {
		w.OnUnfold()
	}
}

// RealWidth returns the pixel width.
func (w *Window) RealWidth() int {
	return w.Width * TileSize
}

// RealHeight returns the pixel height, one tile when folded.
func (w *Window) RealHeight() int {
	if w.Folded {
		return TileSize
	}
	return w.Height * TileSize
}

// OnTitleBar reports whether the pixel position lies on the title bar row.
func (w *Window) OnTitleBar(x, y int) bool {
	return w.HasTitleBar && x >= w.X && x < w.X+w.RealWidth() && y >= w.Y && y < w.Y+TileSize
}

// Center moves the window to the middle of a resolution.
func (w *Window) Center(width, height int) {
	w.SetPosition((width-w.RealWidth())/2, (height-w.RealHeight())/2)
}

// AddComponent attaches c unless it is already owned by a window or the
// screen. On an attached window every call resets the session's transient
// interaction state.
func (w *Window) AddComponent(c Component) {
	if w.state != nil {
		defer w.state.resetTransient()
	}
	if c == nil {
		return
	}
	b := c.base()
	if b.Attached() {
		return
	}
	b.window = w
	w.Components = append(w.Components, c)
}

// AddComponents attaches several components in order.
func (w *Window) AddComponents(cs ...Component) {
	for _, c := range cs {
		w.AddComponent(c)
	}
}

// RemoveComponent detaches c, dropping its tab membership and any session
// reference to it.
func (w *Window) RemoveComponent(c Component) {
	if w.state != nil {
		defer w.state.resetTransient()
	}
	if c == nil {
		return
	}
	b := c.base()
	if b.window != w {
		return
	}
	w.Components = removeItem(w.Components, c)
	b.window = nil
	if b.tab != nil {
		b.tab.RemoveComponent(c)
	}
	if w.state != nil {
		w.state.forget(c)
	}
}

// AddUpdateAction registers a timed callback on the window.
func (w *Window) AddUpdateAction(a *UpdateAction) {
	if a == nil || indexOf(w.UpdateActions, a) >= 0 {
		return
	}
	w.UpdateActions = append(w.UpdateActions, a)
}

// RemoveUpdateAction unregisters a timed callback.
func (w *Window) RemoveUpdateAction(a *UpdateAction) {
	w.UpdateActions = removeItem(w.UpdateActions, a)
}
