// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/options.go
// Summary: Engine tunables, key bindings and their mapping from the config store.

package core

import (
	"log"
	"time"

	"github.com/framegrace/tilegui/config"
	"github.com/framegrace/tilegui/input"
)

// KeyBindings maps keyboard control actions to keys. Each action accepts
// any of its keys.
type KeyBindings struct {
	Up, Down, Left, Right []input.Key
	Buttons               [5][]input.Key // left, right, middle, back, forward
	ScrollUp, ScrollDown  []input.Key
}

// controlKeys returns every key that switches into keyboard control.
func (k KeyBindings) controlKeys() []input.Key {
	var keys []input.Key
	keys = append(keys, k.Up...)
	keys = append(keys, k.Down...)
	keys = append(keys, k.Left...)
	keys = append(keys, k.Right...)
	for _, b := range k.Buttons {
		keys = append(keys, b...)
	}
	keys = append(keys, k.ScrollUp...)
	keys = append(keys, k.ScrollDown...)
	return keys
}

// DefaultKeyBindings uses the arrow keys to move, space and enter as the
// primary buttons and page up/down to scroll.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:         []input.Key{input.KeyUp},
		Down:       []input.Key{input.KeyDown},
		Left:       []input.Key{input.KeyLeft},
		Right:      []input.Key{input.KeyRight},
		Buttons:    [5][]input.Key{{input.RuneKey(' '), input.KeyEnter}, {input.KeyEscape}},
		ScrollUp:   []input.Key{input.KeyPgUp},
		ScrollDown: []input.Key{input.KeyPgDn},
	}
}

// Options tune the engine.
type Options struct {
	DoubleClickTime          time.Duration
	ButtonHoldFrames         int
	TooltipDelay             time.Duration
	TooltipFade              time.Duration
	KnobSensitivity          float32
	DragAlpha                float32
	KeyboardControl          bool
	PointerControl           bool
	KeyboardCursorSpeed      float32
	Magnet                   bool
	FoldWindowsOnDoubleClick bool
	NotificationsMax         int
	NotificationDisplay      time.Duration
	NotificationFadeout      time.Duration
	NotificationScrollSpeed  int
	ViewportMode             ViewportMode
	DebugInvariants          bool
	Keys                     KeyBindings

	// Clock returns the frame time; nil uses time.Now.
	Clock func() time.Time
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		DoubleClickTime:          180 * time.Millisecond,
		ButtonHoldFrames:         8,
		TooltipDelay:             time.Second,
		TooltipFade:              200 * time.Millisecond,
		KnobSensitivity:          1,
		DragAlpha:                0.8,
		KeyboardControl:          true,
		PointerControl:           true,
		KeyboardCursorSpeed:      2,
		Magnet:                   true,
		FoldWindowsOnDoubleClick: true,
		NotificationsMax:         10,
		NotificationDisplay:      3 * time.Second,
		NotificationFadeout:      200 * time.Millisecond,
		NotificationScrollSpeed:  1,
		ViewportMode:             ViewportFit,
		Keys:                     DefaultKeyBindings(),
	}
}

// UISection is the config section read by OptionsFromConfig.
const UISection = "ui"

// RegisterDefaults adds the ui section defaults to cfg without overwriting.
func RegisterDefaults(cfg config.Config) {
	d := DefaultOptions()
	cfg.RegisterDefaults(UISection, config.Section{
		"double_click_time_ms":         float64(d.DoubleClickTime.Milliseconds()),
		"button_hold_frames":           float64(d.ButtonHoldFrames),
		"tooltip_delay_ms":             float64(d.TooltipDelay.Milliseconds()),
		"tooltip_fade_ms":              float64(d.TooltipFade.Milliseconds()),
		"knob_sensitivity":             float64(d.KnobSensitivity),
		"drag_alpha":                   float64(d.DragAlpha),
		"keyboard_control_enabled":     d.KeyboardControl,
		"pointer_control_enabled":      d.PointerControl,
		"keyboard_cursor_speed":        float64(d.KeyboardCursorSpeed),
		"magnet_enabled":               d.Magnet,
		"fold_windows_on_double_click": d.FoldWindowsOnDoubleClick,
		"notifications_max":            float64(d.NotificationsMax),
		"notifications_display_ms":     float64(d.NotificationDisplay.Milliseconds()),
		"notifications_fadeout_ms":     float64(d.NotificationFadeout.Milliseconds()),
		"notifications_scroll_speed":   float64(d.NotificationScrollSpeed),
		"viewport_mode":                d.ViewportMode.String(),
		"debug_invariants":             d.DebugInvariants,
	})
}

// OptionsFromConfig reads the ui section, falling back to DefaultOptions
// for missing or malformed keys.
func OptionsFromConfig(cfg config.Config) Options {
	o := DefaultOptions()
	ms := func(key string, def time.Duration) time.Duration {
		return time.Duration(cfg.GetInt(UISection, key, int(def.Milliseconds()))) * time.Millisecond
	}
	o.DoubleClickTime = ms("double_click_time_ms", o.DoubleClickTime)
	o.ButtonHoldFrames = cfg.GetInt(UISection, "button_hold_frames", o.ButtonHoldFrames)
	o.TooltipDelay = ms("tooltip_delay_ms", o.TooltipDelay)
	o.TooltipFade = ms("tooltip_fade_ms", o.TooltipFade)
	o.KnobSensitivity = float32(cfg.GetFloat(UISection, "knob_sensitivity", float64(o.KnobSensitivity)))
	o.DragAlpha = float32(cfg.GetFloat(UISection, "drag_alpha", float64(o.DragAlpha)))
	o.KeyboardControl = cfg.GetBool(UISection, "keyboard_control_enabled", o.KeyboardControl)
	o.PointerControl = cfg.GetBool(UISection, "pointer_control_enabled", o.PointerControl)
	o.KeyboardCursorSpeed = float32(cfg.GetFloat(UISection, "keyboard_cursor_speed", float64(o.KeyboardCursorSpeed)))
	o.Magnet = cfg.GetBool(UISection, "magnet_enabled", o.Magnet)
	o.FoldWindowsOnDoubleClick = cfg.GetBool(UISection, "fold_windows_on_double_click", o.FoldWindowsOnDoubleClick)
	o.NotificationsMax = cfg.GetInt(UISection, "notifications_max", o.NotificationsMax)
	o.NotificationDisplay = ms("notifications_display_ms", o.NotificationDisplay)
	o.NotificationFadeout = ms("notifications_fadeout_ms", o.NotificationFadeout)
	o.NotificationScrollSpeed = cfg.GetInt(UISection, "notifications_scroll_speed", o.NotificationScrollSpeed)
	o.DebugInvariants = cfg.GetBool(UISection, "debug_invariants", o.DebugInvariants)

	if mode, err := ParseViewportMode(cfg.GetString(UISection, "viewport_mode", o.ViewportMode.String())); err == nil {
		o.ViewportMode = mode
	} else {
		log.Printf("UIEngine: %v, using %s", err, o.ViewportMode)
	}

	keys := func(key string, def []input.Key) []input.Key {
		names := cfg.GetStringSlice(UISection, key, nil)
		if names == nil {
			return def
		}
		out := make([]input.Key, 0, len(names))
		for _, name := range names {
			k, err := input.ParseKey(name)
			if err != nil {
				log.Printf("UIEngine: Ignoring binding %s: %v", key, err)
				continue
			}
			out = append(out, k)
		}
		return out
	}
	o.Keys.Up = keys("keys_up", o.Keys.Up)
	o.Keys.Down = keys("keys_down", o.Keys.Down)
	o.Keys.Left = keys("keys_left", o.Keys.Left)
	o.Keys.Right = keys("keys_right", o.Keys.Right)
	o.Keys.ScrollUp = keys("keys_scroll_up", o.Keys.ScrollUp)
	o.Keys.ScrollDown = keys("keys_scroll_down", o.Keys.ScrollDown)
	buttonKeys := [5]string{"keys_button_left", "keys_button_right", "keys_button_middle", "keys_button_back", "keys_button_forward"}
	for i, key := range buttonKeys {
		o.Keys.Buttons[i] = keys(key, o.Keys.Buttons[i])
	}
	return o
}
