// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/buffer.go
// Summary: Frame-scoped buffer of key and mouse transitions fed by an input backend.
// Usage: A backend records events between frames; the engine drains them once per
//   frame and calls Reset. Held key and button state survives Reset.

package input

// Buffer is the per-frame input snapshot. It is not safe for concurrent use;
// backends running on another goroutine must hand events to the frame loop.
type Buffer struct {
	held        map[Key]bool
	buttonsHeld [buttonCount]bool

	keysDown []Key
	keysUp   []Key
	typed    []rune

	mouseDown []MouseButton
	mouseUp   []MouseButton

	pointerX, pointerY int
	pointerMoved       bool

	scroll   float32
	scrolled bool
}

// NewBuffer creates an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{held: make(map[Key]bool)}
}

// KeyDown records a key press. Repeated presses of a held key are ignored.
func (b *Buffer) KeyDown(k Key) {
	if k.IsZero() || b.held[k] {
		return
	}
	b.held[k] = true
	b.keysDown = append(b.keysDown, k)
}

// KeyUp records a key release.
func (b *Buffer) KeyUp(k Key) {
	if !b.held[k] {
		return
	}
	delete(b.held, k)
	b.keysUp = append(b.keysUp, k)
}

// KeyTyped records a typed character. Control characters '\b' (backspace),
// 0x7f (delete) and '\n' (enter) are delivered through here as well.
func (b *Buffer) KeyTyped(r rune) {
	b.typed = append(b.typed, r)
}

// MouseDown records a pointer button press.
func (b *Buffer) MouseDown(btn MouseButton) {
	if btn < 0 || btn >= buttonCount || b.buttonsHeld[btn] {
		return
	}
	b.buttonsHeld[btn] = true
	b.mouseDown = append(b.mouseDown, btn)
}

// MouseUp records a pointer button release.
func (b *Buffer) MouseUp(btn MouseButton) {
	if btn < 0 || btn >= buttonCount || !b.buttonsHeld[btn] {
		return
	}
	b.buttonsHeld[btn] = false
	b.mouseUp = append(b.mouseUp, btn)
}

// PointerMoved records the raw device pointer position.
func (b *Buffer) PointerMoved(x, y int) {
	if x == b.pointerX && y == b.pointerY {
		return
	}
	b.pointerX, b.pointerY = x, y
	b.pointerMoved = true
}

// Scroll accumulates wheel movement; positive values scroll down.
func (b *Buffer) Scroll(amount float32) {
	b.scroll += amount
	b.scrolled = true
}

// KeysDown returns keys pressed this frame.
func (b *Buffer) KeysDown() []Key { return b.keysDown }

// KeysUp returns keys released this frame.
func (b *Buffer) KeysUp() []Key { return b.keysUp }

// Typed returns characters typed this frame.
func (b *Buffer) Typed() []rune { return b.typed }

// IsHeld reports whether k is currently held.
func (b *Buffer) IsHeld(k Key) bool {
	return b.held[k]
}

// AllHeld reports whether every key in keys is held. An empty set is never held.
func (b *Buffer) AllHeld(keys []Key) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !b.held[k] {
			return false
		}
	}
	return true
}

// AnyHeld reports whether at least one key in keys is held.
func (b *Buffer) AnyHeld(keys []Key) bool {
	for _, k := range keys {
		if b.held[k] {
			return true
		}
	}
	return false
}

// WasPressed reports whether k went down this frame.
func (b *Buffer) WasPressed(k Key) bool {
	for _, d := range b.keysDown {
		if d == k {
			return true
		}
	}
	return false
}

// IsButtonHeld reports whether a pointer button is held.
func (b *Buffer) IsButtonHeld(btn MouseButton) bool {
	if btn < 0 || btn >= buttonCount {
		return false
	}
	return b.buttonsHeld[btn]
}

// AnyButtonHeld reports whether any pointer button is held.
func (b *Buffer) AnyButtonHeld() bool {
	for _, h := range b.buttonsHeld {
		if h {
			return true
		}
	}
	return false
}

// MouseDowns returns buttons pressed this frame.
func (b *Buffer) MouseDowns() []MouseButton { return b.mouseDown }

// MouseUps returns buttons released this frame.
func (b *Buffer) MouseUps() []MouseButton { return b.mouseUp }

// Pointer returns the last raw device pointer position.
func (b *Buffer) Pointer() (int, int) { return b.pointerX, b.pointerY }

// Moved reports whether the device pointer moved this frame.
func (b *Buffer) Moved() bool { return b.pointerMoved }

// Scrolled returns the accumulated wheel amount and whether any scroll happened.
func (b *Buffer) Scrolled() (float32, bool) { return b.scroll, b.scrolled }

// Reset clears per-frame transitions. Held state is kept.
func (b *Buffer) Reset() {
	b.keysDown = b.keysDown[:0]
	b.keysUp = b.keysUp[:0]
	b.typed = b.typed[:0]
	b.mouseDown = b.mouseDown[:0]
	b.mouseUp = b.mouseUp[:0]
	b.pointerMoved = false
	b.scroll = 0
	b.scrolled = false
}

// ReleaseAll drops every held key and button, recording the releases.
func (b *Buffer) ReleaseAll() {
	for k := range b.held {
		b.KeyUp(k)
	}
	for i := range b.buttonsHeld {
		b.MouseUp(MouseButton(i))
	}
}

// HeldKeys returns a copy of the currently held keys.
func (b *Buffer) HeldKeys() []Key {
	out := make([]Key, 0, len(b.held))
	for k := range b.held {
		out = append(out, k)
	}
	return out
}
