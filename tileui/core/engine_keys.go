// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/engine_keys.go
// Summary: Text field editing and edge-triggered hotkeys.

package core

import "github.com/framegrace/tilegui/input"

func (e *Engine) updateKeyboard() {
	s := e.state
	if tf := s.FocusedTextField(); tf != nil {
		e.typeInto(tf)
		e.updateHotKeys(false)
		return
	}
	e.updateHotKeys(true)
}

// updateHotKeys fires OnPress on the frame a combination becomes fully held
// and OnRelease on the frame it stops being held. Presses are suppressed
// while a text field has focus.
func (e *Engine) updateHotKeys(allowPress bool) {
	s := e.state
	n := len(s.hotKeys)
	for i := 0; i < n && i < len(s.hotKeys); i++ {
		h := s.hotKeys[i]
		held := e.events.AllHeld(h.Keys)
		switch {
		case held && !h.pressed && allowPress:
			h.pressed = true
			if h.OnPress != nil {
				h.OnPress()
			}
		case !held && h.pressed:
			h.pressed = false
			if h.OnRelease != nil {
				h.OnRelease()
			}
		}
	}
}

func (e *Engine) typeInto(tf *TextField) {
	s := e.state
	for _, k := range e.events.KeysDown() {
		if s.FocusedTextField() != tf {
			return
		}
		switch k {
		case input.KeyLeft:
			s.SetTextFieldMarker(tf, tf.Marker-1)
		case input.KeyRight:
			s.SetTextFieldMarker(tf, tf.Marker+1)
		case input.KeyHome:
			s.SetTextFieldMarker(tf, 0)
		case input.KeyEnd:
			s.SetTextFieldMarker(tf, len([]rune(tf.Content)))
		}
	}
	for _, r := range e.events.Typed() {
		if s.FocusedTextField() != tf {
			return
		}
		runes := []rune(tf.Content)
		m := tf.Marker
		if m > len(runes) {
			m = len(runes)
		}
		switch r {
		case '\b':
			if m > 0 {
				edited := append(runes[:m-1:m-1], runes[m:]...)
				s.SetTextFieldContent(tf, string(edited))
				s.SetTextFieldMarker(tf, m-1)
			}
		case 0x7f:
			if m < len(runes) {
				edited := append(runes[:m:m], runes[m+1:]...)
				s.SetTextFieldContent(tf, string(edited))
				s.SetTextFieldMarker(tf, m)
			}
		case '\n', '\r':
			s.UnfocusTextField()
			if tf.OnEnter != nil {
				tf.OnEnter(tf.Content, tf.ContentValid)
			}
		default:
			if tf.AllowsRune(r) && (tf.MaxLength <= 0 || len(runes) < tf.MaxLength) {
				edited := make([]rune, 0, len(runes)+1)
				edited = append(edited, runes[:m]...)
				edited = append(edited, r)
				edited = append(edited, runes[m:]...)
				s.SetTextFieldContent(tf, string(edited))
				s.SetTextFieldMarker(tf, m+1)
			}
		}
		if tf.OnTyped != nil {
			tf.OnTyped(r)
		}
	}
}
