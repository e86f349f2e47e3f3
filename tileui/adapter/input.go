// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/adapter/input.go
// Summary: Translates tcell key and mouse events into the engine input buffer.
// Usage: Call HandleEvent for every polled event and Flush once per frame
//   before Engine.Update. Terminals report no key releases, so held keys
//   are released after a quiet period.

package adapter

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/tilegui/input"
	"github.com/framegrace/tilegui/tileui/core"
)

// DefaultKeyRelease is how long a key counts as held after its last event.
const DefaultKeyRelease = 120 * time.Millisecond

var mouseButtons = [...]struct {
	mask tcell.ButtonMask
	btn  input.MouseButton
}{
	{tcell.Button1, input.ButtonLeft},
	{tcell.Button2, input.ButtonMiddle},
	{tcell.Button3, input.ButtonRight},
	{tcell.Button4, input.ButtonBack},
	{tcell.Button5, input.ButtonForward},
}

// Input feeds an input.Buffer from tcell events.
type Input struct {
	buf        *input.Buffer
	keyRelease time.Duration
	lastSeen   map[input.Key]time.Time
	buttons    tcell.ButtonMask
}

// NewInput creates a translator writing into buf. A zero keyRelease uses
// DefaultKeyRelease.
func NewInput(buf *input.Buffer, keyRelease time.Duration) *Input {
	if keyRelease <= 0 {
		keyRelease = DefaultKeyRelease
	}
	return &Input{buf: buf, keyRelease: keyRelease, lastSeen: make(map[input.Key]time.Time)}
}

// CellToPixel returns the device pixel at the centre of a terminal cell.
func CellToPixel(x, y int) (int, int) {
	return x*core.TileSize + core.TileSizeHalf, y*core.TileSize + core.TileSizeHalf
}

// HandleEvent records ev and reports whether it was an input event.
func (in *Input) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(tev, now)
		return true
	case *tcell.EventMouse:
		in.handleMouse(tev)
		return true
	}
	return false
}

func (in *Input) press(k input.Key, now time.Time) {
	in.buf.KeyDown(k)
	in.lastSeen[k] = now
}

func (in *Input) handleKey(ev *tcell.EventKey, now time.Time) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		in.press(input.RuneKey(r), now)
		in.buf.KeyTyped(r)
	case tcell.KeyEnter:
		in.press(input.KeyEnter, now)
		in.buf.KeyTyped('\n')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		in.press(input.KeyBackspace, now)
		in.buf.KeyTyped('\b')
	case tcell.KeyDelete:
		in.press(input.KeyDelete, now)
		in.buf.KeyTyped(0x7f)
	default:
		in.press(input.KeyOf(ev.Key()), now)
	}
}

func (in *Input) handleMouse(ev *tcell.EventMouse) {
	in.buf.PointerMoved(CellToPixel(ev.Position()))
	buttons := ev.Buttons()
	for _, b := range mouseButtons {
		was := in.buttons&b.mask != 0
		is := buttons&b.mask != 0
		switch {
		case is && !was:
			in.buf.MouseDown(b.btn)
		case was && !is:
			in.buf.MouseUp(b.btn)
		}
	}
	in.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	if buttons&tcell.WheelUp != 0 {
		in.buf.Scroll(-1)
	}
	if buttons&tcell.WheelDown != 0 {
		in.buf.Scroll(1)
	}
}

// Flush releases keys that have not been reported for the release period.
func (in *Input) Flush(now time.Time) {
	for k, seen := range in.lastSeen {
		if now.Sub(seen) >= in.keyRelease {
			in.buf.KeyUp(k)
			delete(in.lastSeen, k)
		}
	}
}
