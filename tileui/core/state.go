// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/state.go
// Summary: Session state aggregate, the exclusive interaction slot and invariant checks.

package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/framegrace/tilegui/internal/effects"
)

var (
	// ErrInvariant marks an internal consistency failure. It is raised by
	// panics and indicates a programming defect.
	ErrInvariant = errors.New("ui invariant violated")
	// ErrUnsupported marks a draw request a composer cannot honour.
	ErrUnsupported = errors.New("unsupported geometry")
)

// TextMetrics measures text for caret placement and menu or tooltip sizing.
type TextMetrics interface {
	TextWidth(font any, text string) int
	GlyphHeight(font any) int
}

// ControlMode says where the pointer comes from.
type ControlMode int

const (
	ControlNone ControlMode = iota
	ControlKeyboard
	ControlPointer
)

func (m ControlMode) String() string {
	switch m {
	case ControlNone:
		return "none"
	case ControlKeyboard:
		return "keyboard"
	case ControlPointer:
		return "pointer"
	default:
		return fmt.Sprintf("ControlMode(%d)", int(m))
	}
}

// TooltipPhase is the visible stage of the tooltip.
type TooltipPhase int

const (
	TooltipIdle TooltipPhase = iota
	TooltipFadingIn
	TooltipVisible
)

type hoverKey struct {
	object Target
	sub    any
}

type tooltipState struct {
	current    *Tooltip
	waiting    bool
	delayStart time.Time
	fadeIn     float32
	last       hoverKey
}

// State is the session state of one engine. It is mutated during Update
// and by host code between frames; composers only read it.
type State struct {
	opts    Options
	metrics TextMetrics
	clock   func() time.Time

	windows          []*Window
	screenComponents []Component
	modal            *Window
	modalQueue       []*Window
	active           Interaction
	hover            Target

	tooltip     tooltipState
	gameTooltip *Tooltip
	tooltips    *effects.Timeline

	controlMode   ControlMode
	notifications []*Notification
	notifyFades   *effects.Timeline

	hotKeys             []*HotKey
	singleUpdateActions []*UpdateAction

	pointerX, pointerY int
	deltaX, deltaY     int
	gameX, gameY       float32
	speedUp            float32
	virtualButtons     [5]bool
	lastClick          time.Time

	viewport  Viewport
	camera    Camera
	tints     TintStack
	mouseTool *MouseTool
	cursor    any
	frozen    bool
}

func newState(opts Options, metrics TextMetrics, width, height int) *State {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	s := &State{
		opts:        opts,
		metrics:     metrics,
		clock:       clock,
		tooltips:    effects.NewTimeline(0, effects.EaseLinear),
		notifyFades: effects.NewTimeline(1, effects.EaseLinear),
		viewport: Viewport{
			Mode:         opts.ViewportMode,
			Width:        width,
			Height:       height,
			ScreenWidth:  width,
			ScreenHeight: height,
		},
		camera: Camera{X: float32(width) / 2, Y: float32(height) / 2, Zoom: 1},
	}
	switch {
	case opts.PointerControl:
		s.controlMode = ControlPointer
	case opts.KeyboardControl:
		s.controlMode = ControlKeyboard
	}
	s.pointerX, s.pointerY = width/2, height/2
	return s
}

func (s *State) now() time.Time { return s.clock() }

// Options returns the engine options.
func (s *State) Options() Options { return s.opts }

// Metrics returns the text metrics collaborator.
func (s *State) Metrics() TextMetrics { return s.metrics }

// Resolution returns the internal resolution in pixels.
func (s *State) Resolution() (int, int) { return s.viewport.Width, s.viewport.Height }

// Viewport returns the device-to-internal mapping.
func (s *State) Viewport() Viewport { return s.viewport }

// Windows returns the windows bottom to top. The slice must not be modified.
func (s *State) Windows() []*Window { return s.windows }

// ScreenComponents returns the screen-level components in insertion order.
func (s *State) ScreenComponents() []Component { return s.screenComponents }

// Modal returns the active modal window.
func (s *State) Modal() *Window { return s.modal }

// ModalQueue returns pending modal windows.
func (s *State) ModalQueue() []*Window { return s.modalQueue }

// Active returns the interaction in progress, nil when idle.
func (s *State) Active() Interaction { return s.active }

// Hover returns what the pointer was over at the last hit test.
func (s *State) Hover() Target { return s.hover }

// ControlMode returns the current pointer source.
func (s *State) ControlMode() ControlMode { return s.controlMode }

// Pointer returns the GUI pointer in internal pixels.
func (s *State) Pointer() (int, int) { return s.pointerX, s.pointerY }

// PointerDelta returns the pointer movement of the last frame.
func (s *State) PointerDelta() (int, int) { return s.deltaX, s.deltaY }

// GamePointer returns the pointer in world coordinates.
func (s *State) GamePointer() (float32, float32) { return s.gameX, s.gameY }

// Camera returns the main game camera.
func (s *State) Camera() Camera { return s.camera }

// SetCamera moves the main game camera.
func (s *State) SetCamera(c Camera) { s.camera = c }

// Tints returns the tint stack used while composing.
func (s *State) Tints() *TintStack { return &s.tints }

// Notifications returns the queued notifications, head first.
func (s *State) Notifications() []*Notification { return s.notifications }

// NotificationAlpha returns the fade-out alpha of n.
func (s *State) NotificationAlpha(n *Notification) float32 {
	return s.notifyFades.Get(n, s.now())
}

// HotKeys returns the registered hotkeys.
func (s *State) HotKeys() []*HotKey { return s.hotKeys }

// MouseTool returns the active mouse tool.
func (s *State) MouseTool() *MouseTool { return s.mouseTool }

// SetMouseTool installs or clears the mouse tool.
func (s *State) SetMouseTool(t *MouseTool) { s.mouseTool = t }

// SetCursor overrides the cursor; nil restores the default resolution.
func (s *State) SetCursor(cursor any) { s.cursor = cursor }

// Cursor returns the cursor to draw: the override, the mouse tool cursor
// while off the GUI, or nil for the default.
func (s *State) Cursor(buttonHeld bool) any {
	if s.cursor != nil {
		return s.cursor
	}
	if s.hover == nil && s.mouseTool != nil {
		if buttonHeld && s.mouseTool.CursorDown != nil {
			return s.mouseTool.CursorDown
		}
		return s.mouseTool.Cursor
	}
	return nil
}

// Frozen reports whether GUI interaction is suspended.
func (s *State) Frozen() bool { return s.frozen }

// SetFrozen suspends or resumes GUI interaction. The host update still runs.
func (s *State) SetFrozen(frozen bool) { s.frozen = frozen }

// DraggedWindow returns the window being moved.
func (s *State) DraggedWindow() *Window {
	if v, ok := s.active.(*WindowDrag); ok {
		return v.Window
	}
	return nil
}

// PressedButton returns the held button.
func (s *State) PressedButton() *Button {
	if v, ok := s.active.(*ButtonPress); ok {
		return v.Button
	}
	return nil
}

// TurnedKnob returns the knob being turned.
func (s *State) TurnedKnob() *Knob {
	if v, ok := s.active.(*KnobTurn); ok {
		return v.Knob
	}
	return nil
}

// FocusedTextField returns the field receiving typed input.
func (s *State) FocusedTextField() *TextField {
	if v, ok := s.active.(*TextFieldFocus); ok {
		return v.Field
	}
	return nil
}

// OpenedComboBox returns the open combo box.
func (s *State) OpenedComboBox() *ComboBox {
	if v, ok := s.active.(*ComboBoxOpen); ok {
		return v.ComboBox
	}
	return nil
}

// OpenedContextMenu returns the open context menu.
func (s *State) OpenedContextMenu() *ContextMenu {
	if v, ok := s.active.(*ContextMenuOpen); ok {
		return v.Menu
	}
	return nil
}

// DraggedList returns the list drag in progress.
func (s *State) DraggedList() *ListDrag {
	v, _ := s.active.(*ListDrag)
	return v
}

// DraggedInventory returns the inventory drag in progress.
func (s *State) DraggedInventory() *InventoryDrag {
	v, _ := s.active.(*InventoryDrag)
	return v
}

// PressedMap returns the held map.
func (s *State) PressedMap() *Map {
	if v, ok := s.active.(*MapPress); ok {
		return v.Map
	}
	return nil
}

// PressedViewPort returns the held game viewport.
func (s *State) PressedViewPort() *GameViewPort {
	if v, ok := s.active.(*ViewPortPress); ok {
		return v.ViewPort
	}
	return nil
}

// ScrolledScrollBarVertical returns the vertical bar being dragged.
func (s *State) ScrolledScrollBarVertical() *ScrollBar {
	if v, ok := s.active.(*ScrollBarDrag); ok && v.ScrollBar.Orientation == Vertical {
		return v.ScrollBar
	}
	return nil
}

// ScrolledScrollBarHorizontal returns the horizontal bar being dragged.
func (s *State) ScrolledScrollBarHorizontal() *ScrollBar {
	if v, ok := s.active.(*ScrollBarDrag); ok && v.ScrollBar.Orientation == Horizontal {
		return v.ScrollBar
	}
	return nil
}

// Tooltip returns the current tooltip content, if any.
func (s *State) Tooltip() *Tooltip { return s.tooltip.current }

// TooltipFade returns the fade-in progress of the tooltip in [0,1].
func (s *State) TooltipFade() float32 { return s.tooltip.fadeIn }

// TooltipPhase reports the tooltip stage.
func (s *State) TooltipPhase() TooltipPhase {
	switch {
	case s.tooltip.current == nil || s.tooltip.waiting:
		return TooltipIdle
	case s.tooltip.fadeIn < 1:
		return TooltipFadingIn
	default:
		return TooltipVisible
	}
}

// SetGameTooltip sets the tooltip shown while the pointer is off the GUI.
func (s *State) SetGameTooltip(t *Tooltip) { s.gameTooltip = t }

// setActive replaces the interaction slot. The outgoing interaction is
// cancelled: fields are unfocused and menus closed with their callbacks,
// pressed widgets are released without callbacks.
func (s *State) setActive(next Interaction) {
	prev := s.active
	s.active = next
	s.cancel(prev, true)
}

// clearActive ends the current interaction after its release path ran.
func (s *State) clearActive() {
	s.active = nil
}

func (s *State) cancel(a Interaction, notify bool) {
	switch v := a.(type) {
	case *ButtonPress:
		if v.Button.Mode != ButtonToggle {
			v.Button.Pressed = false
		}
	case *ScrollBarDrag:
		v.ScrollBar.ButtonPressed = false
	case *TextFieldFocus:
		if notify && v.Field.OnUnFocus != nil {
			v.Field.OnUnFocus()
		}
	case *ComboBoxOpen:
		if notify && v.ComboBox.OnClose != nil {
			v.ComboBox.OnClose()
		}
	case *ContextMenuOpen:
		if notify && v.Menu.OnClose != nil {
			v.Menu.OnClose()
		}
	}
}

// resetTransient drops every transient reference. It runs on every
// attach and detach of a window or screen component.
func (s *State) resetTransient() {
	prev := s.active
	s.active = nil
	s.cancel(prev, false)
	s.resetTooltip()
	s.gameTooltip = nil
}

func (s *State) resetTooltip() {
	if s.tooltip.current != nil {
		s.tooltips.Reset(s.tooltip.current)
	}
	s.tooltip = tooltipState{}
}

// forget clears any reference to a component that left the tree.
func (s *State) forget(c Component) {
	if s.hover == Target(c) {
		s.hover = nil
	}
	if references(s.active, c) {
		prev := s.active
		s.active = nil
		s.cancel(prev, false)
	}
	if s.tooltip.last.object == Target(c) {
		s.resetTooltip()
	}
}

// isAttached reports whether c is reachable from the session.
func (s *State) isAttached(c Component) bool {
	b := c.base()
	if b.onScreen {
		return indexOf(s.screenComponents, c) >= 0
	}
	return b.window != nil && b.window.state == s && indexOf(b.window.Components, c) >= 0
}

// Validate checks structural invariants and returns an error wrapping
// ErrInvariant for the first violation found.
func (s *State) Validate() error {
	seen := make(map[*Window]bool, len(s.windows))
	for _, w := range s.windows {
		if seen[w] {
			return fmt.Errorf("%w: window %q listed twice", ErrInvariant, w.Title)
		}
		seen[w] = true
		if w.state != s {
			return fmt.Errorf("%w: window %q listed but not attached", ErrInvariant, w.Title)
		}
		for _, c := range w.Components {
			if c.base().window != w || c.base().onScreen {
				return fmt.Errorf("%w: component of %q has a foreign owner", ErrInvariant, w.Title)
			}
		}
	}
	for _, c := range s.screenComponents {
		if !c.base().onScreen || c.base().window != nil {
			return fmt.Errorf("%w: screen component has a foreign owner", ErrInvariant)
		}
	}
	if s.modal != nil && !seen[s.modal] {
		return fmt.Errorf("%w: modal window %q is not on screen", ErrInvariant, s.modal.Title)
	}
	switch v := s.active.(type) {
	case *WindowDrag:
		if !seen[v.Window] {
			return fmt.Errorf("%w: dragged window %q is not on screen", ErrInvariant, v.Window.Title)
		}
	case *ContextMenuOpen:
		if len(v.Menu.Items) == 0 {
			return fmt.Errorf("%w: open context menu has no items", ErrInvariant)
		}
	default:
		if c := interactionComponent(v); c != nil && !s.isAttached(c) {
			return fmt.Errorf("%w: active %T references a detached component", ErrInvariant, v)
		}
	}
	if c, ok := s.hover.(Component); ok && !s.isAttached(c) {
		return fmt.Errorf("%w: hover references a detached component", ErrInvariant)
	}
	return nil
}
