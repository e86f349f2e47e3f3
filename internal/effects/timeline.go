// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Frame-clocked animation timeline with configurable easing functions.
// Usage: The UI engine keys fades (tooltips, notifications) by the animated object
//   and samples them with the frame time, so no wall clock is read here.
//   A timeline belongs to one engine and is not safe for concurrent use.

package effects

import "time"

// EasingFunc maps progress [0,1] to eased value [0,1]
type EasingFunc func(progress float32) float32

// EaseLinear - No easing, constant speed
var EaseLinear EasingFunc = func(t float32) float32 { return t }

// AnimateOptions configures an animation transition
type AnimateOptions struct {
	Duration time.Duration // 0 = instant
}

type keyState struct {
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
}

// Timeline holds per-key animations sampled at caller-supplied times.
type Timeline struct {
	states         map[any]*keyState
	easing         EasingFunc
	defaultInitial float32
}

// NewTimeline creates a timeline whose unknown keys read as defaultInitial.
// A nil easing is linear.
func NewTimeline(defaultInitial float32, easing EasingFunc) *Timeline {
	if easing == nil {
		easing = EaseLinear
	}
	return &Timeline{
		states:         make(map[any]*keyState),
		easing:         easing,
		defaultInitial: defaultInitial,
	}
}

// Start begins an animation from an explicit value, discarding any running one.
func (tl *Timeline) Start(key any, from, to float32, opts AnimateOptions, now time.Time) {
	tl.states[key] = &keyState{
		start:     from,
		target:    to,
		startTime: now,
		duration:  opts.Duration,
	}
}

// Get samples key at now.
func (tl *Timeline) Get(key any, now time.Time) float32 {
	state := tl.states[key]
	if state == nil {
		return tl.defaultInitial
	}
	if state.duration <= 0 {
		return state.target
	}
	if now.Before(state.startTime) {
		return state.start
	}
	elapsed := now.Sub(state.startTime)
	if elapsed >= state.duration {
		return state.target
	}
	progress := float32(elapsed) / float32(state.duration)
	return state.start + (state.target-state.start)*tl.easing(progress)
}

// Reset removes the timeline state for a key
func (tl *Timeline) Reset(key any) {
	delete(tl.states, key)
}

// Clear removes all timeline states
func (tl *Timeline) Clear() {
	clear(tl.states)
}
