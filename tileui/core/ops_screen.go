// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/ops_screen.go
// Summary: Attaching and detaching windows and screen components, z-order and modality.

package core

import "log"

// BringWindowToFront raises w. Pinned windows go to the very top, others
// just below the lowest pinned window.
func (s *State) BringWindowToFront(w *Window) {
	if len(s.windows) <= 1 || w == nil || w.state != s {
		return
	}
	s.windows = removeItem(s.windows, w)
	if w.AlwaysOnTop {
		s.windows = append(s.windows, w)
		return
	}
	i := len(s.windows)
	for i > 0 && s.windows[i-1].AlwaysOnTop {
		i--
	}
	s.windows = append(s.windows, nil)
	copy(s.windows[i+1:], s.windows[i:])
	s.windows[i] = w
}

// AddWindow attaches w on top of the non-pinned windows.
func (s *State) AddWindow(w *Window) {
	if w == nil || w.state != nil {
		s.resetTransient()
		return
	}
	w.state = s
	w.placedX, w.placedY, w.placedFolded = w.X, w.Y, w.Folded
	s.windows = append(s.windows, w)
	s.BringWindowToFront(w)
	s.resetTransient()
	if w.OnAdd != nil {
		w.OnAdd()
	}
}

// RemoveWindow detaches w. Moves and folds made by interaction since it was
// added are dropped; SetPosition and SetFolded are kept.
func (s *State) RemoveWindow(w *Window) {
	if w == nil || w.state != s {
		s.resetTransient()
		return
	}
	s.windows = removeItem(s.windows, w)
	w.state = nil
	if s.hover == Target(w) {
		s.hover = nil
	} else if c, ok := s.hover.(Component); ok && c.base().window == w {
		s.hover = nil
	}
	s.resetTransient()
	w.X, w.Y = w.placedX, w.placedY
	w.Folded = w.placedFolded
	if s.modal == w {
		s.modal = nil
		s.openNextModal()
	}
	if w.OnRemove != nil {
		w.OnRemove()
	}
}

// RemoveAllWindows detaches every window, topmost first.
func (s *State) RemoveAllWindows() {
	for len(s.windows) > 0 {
		s.RemoveWindow(s.windows[len(s.windows)-1])
	}
}

// AddScreenComponent attaches c directly to the screen.
func (s *State) AddScreenComponent(c Component) {
	if c == nil {
		s.resetTransient()
		return
	}
	b := c.base()
	if !b.Attached() {
		b.onScreen = true
		s.screenComponents = append(s.screenComponents, c)
	}
	s.resetTransient()
}

// RemoveScreenComponent detaches a screen component.
func (s *State) RemoveScreenComponent(c Component) {
	if c == nil {
		s.resetTransient()
		return
	}
	b := c.base()
	if b.onScreen {
		s.screenComponents = removeItem(s.screenComponents, c)
		b.onScreen = false
		if b.tab != nil {
			b.tab.RemoveComponent(c)
		}
		s.forget(c)
	}
	s.resetTransient()
}

// OpenModal shows w as the modal window, or queues it behind the active one.
func (s *State) OpenModal(w *Window) {
	if w == nil || s.modal == w || indexOf(s.modalQueue, w) >= 0 {
		return
	}
	if s.modal != nil {
		s.modalQueue = append(s.modalQueue, w)
		log.Printf("UIEngine: Queued modal window %q behind %q", w.Title, s.modal.Title)
		return
	}
	if w.state == nil {
		s.AddWindow(w)
	}
	if w.state != s {
		return
	}
	w.Visible = true
	w.setFolded(false)
	s.modal = w
	s.BringWindowToFront(w)
}

// CloseModal removes the modal window and shows the next queued one.
func (s *State) CloseModal() {
	if s.modal == nil {
		return
	}
	s.RemoveWindow(s.modal)
}

func (s *State) openNextModal() {
	if len(s.modalQueue) == 0 {
		return
	}
	next := s.modalQueue[0]
	s.modalQueue = s.modalQueue[1:]
	s.OpenModal(next)
}

// inModalScope reports whether t may receive pointer input while a modal
// window is active.
func (s *State) inModalScope(t Target) bool {
	if s.modal == nil {
		return true
	}
	switch v := t.(type) {
	case *Window:
		return v == s.modal
	case Component:
		return v.base().window == s.modal
	case *ContextMenuItem:
		return true
	}
	return false
}

// GameViewPorts returns the visible viewports of attached windows and the screen.
func (s *State) GameViewPorts() []*GameViewPort {
	var out []*GameViewPort
	collect := func(c Component) {
		if vp, ok := c.(*GameViewPort); ok && vp.Visible && !IsHiddenByTab(vp) {
			out = append(out, vp)
		}
	}
	for _, w := range s.windows {
		if !w.Visible || w.Folded {
			continue
		}
		for _, c := range w.Components {
			collect(c)
		}
	}
	for _, c := range s.screenComponents {
		collect(c)
	}
	return out
}

// AddNotification queues n, dropping the oldest beyond the configured maximum.
func (s *State) AddNotification(n *Notification) {
	if n == nil || n.queued {
		return
	}
	n.queued = true
	n.scrollOffset = 0
	width, _ := s.Resolution()
	textWidth := s.metrics.TextWidth(n.Font, n.Text)
	if textWidth > width {
		n.state = NotificationInitScroll
		n.scrollMax = textWidth - width + TileSize
	} else {
		n.state = NotificationInitDisplay
		n.scrollMax = 0
	}
	s.notifications = append(s.notifications, n)
	for s.opts.NotificationsMax > 0 && len(s.notifications) > s.opts.NotificationsMax {
		s.RemoveNotification(s.notifications[0])
	}
}

// RemoveNotification drops n from the queue.
func (s *State) RemoveNotification(n *Notification) {
	if n == nil || !n.queued {
		return
	}
	n.queued = false
	s.notifications = removeItem(s.notifications, n)
	s.notifyFades.Reset(n)
	if s.hover == Target(n) {
		s.hover = nil
	}
	if n.OnRemove != nil {
		n.OnRemove()
	}
}

// AddHotKey registers h.
func (s *State) AddHotKey(h *HotKey) {
	if h == nil || indexOf(s.hotKeys, h) >= 0 {
		return
	}
	s.hotKeys = append(s.hotKeys, h)
}

// RemoveHotKey unregisters h.
func (s *State) RemoveHotKey(h *HotKey) {
	if h == nil {
		return
	}
	h.pressed = false
	s.hotKeys = removeItem(s.hotKeys, h)
}

// AddSingleUpdateAction registers a callback that fires once after its
// Interval has passed and is then removed.
func (s *State) AddSingleUpdateAction(a *UpdateAction) {
	if a == nil || indexOf(s.singleUpdateActions, a) >= 0 {
		return
	}
	if a.Interval > 0 {
		a.last = s.now()
	}
	s.singleUpdateActions = append(s.singleUpdateActions, a)
}

// SingleUpdateActions returns the pending one-shot callbacks.
func (s *State) SingleUpdateActions() []*UpdateAction { return s.singleUpdateActions }
