// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/key.go
// Summary: Key identity and mouse button definitions used by the event buffer.

package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a physical or logical key. Special keys use their tcell
// code; printable keys use tcell.KeyRune plus the lower-cased rune.
type Key struct {
	Code tcell.Key
	Rune rune
}

// KeyOf returns the Key for a special tcell key code.
func KeyOf(code tcell.Key) Key {
	return Key{Code: code}
}

// RuneKey returns the Key for a printable rune.
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// Common keys referenced by the engine.
var (
	KeyNone      = Key{}
	KeyUp        = KeyOf(tcell.KeyUp)
	KeyDown      = KeyOf(tcell.KeyDown)
	KeyLeft      = KeyOf(tcell.KeyLeft)
	KeyRight     = KeyOf(tcell.KeyRight)
	KeyHome      = KeyOf(tcell.KeyHome)
	KeyEnd       = KeyOf(tcell.KeyEnd)
	KeyEnter     = KeyOf(tcell.KeyEnter)
	KeyEscape    = KeyOf(tcell.KeyEscape)
	KeyTab       = KeyOf(tcell.KeyTab)
	KeyBackspace = KeyOf(tcell.KeyBackspace2)
	KeyDelete    = KeyOf(tcell.KeyDelete)
	KeyPgUp      = KeyOf(tcell.KeyPgUp)
	KeyPgDn      = KeyOf(tcell.KeyPgDn)
)

// IsZero reports whether k is unset.
func (k Key) IsZero() bool {
	return k == KeyNone
}

func (k Key) String() string {
	if k.IsZero() {
		return "None"
	}
	if k.Code == tcell.KeyRune {
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", int(k.Code))
}

// ParseKey resolves a key binding name. A single character is a rune key,
// anything else is matched case-insensitively against tcell key names.
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return KeyNone, fmt.Errorf("empty key name")
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return RuneKey(r), nil
	}
	if strings.EqualFold(name, "space") {
		return RuneKey(' '), nil
	}
	for code, keyName := range tcell.KeyNames {
		if strings.EqualFold(keyName, name) {
			return KeyOf(code), nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward

	buttonCount
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonBack:
		return "Back"
	case ButtonForward:
		return "Forward"
	default:
		panic("invalid MouseButton")
	}
}
