// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/widget.go
// Summary: Component contract, shared base state, tooltips and timed update actions.
// Usage: Concrete widgets embed ComponentBase; the set of widget kinds is closed.

package core

import (
	"time"

	"github.com/framegrace/tilegui/input"
)

// Target is anything the pointer can hover: a *Window, a Component, a
// *ContextMenuItem or a *Notification.
type Target interface {
	target()
}

// Component is implemented only by the widget types of this package.
type Component interface {
	Target
	base() *ComponentBase
}

// CommonActions are the mouse callbacks shared by windows, components and
// notifications. Component callbacks also bubble to the owning window.
type CommonActions struct {
	OnMouseClick       func(btn input.MouseButton)
	OnMouseDoubleClick func(btn input.MouseButton)
	OnMouseScroll      func(amount float32)
}

func (a *CommonActions) hasAny() bool {
	return a.OnMouseClick != nil || a.OnMouseDoubleClick != nil || a.OnMouseScroll != nil
}

func (a *CommonActions) click(btn input.MouseButton) {
	if a.OnMouseClick != nil {
		a.OnMouseClick(btn)
	}
}

func (a *CommonActions) doubleClick(btn input.MouseButton) {
	if a.OnMouseDoubleClick != nil {
		a.OnMouseDoubleClick(btn)
	}
}

func (a *CommonActions) scroll(amount float32) {
	if a.OnMouseScroll != nil {
		a.OnMouseScroll(amount)
	}
}

// UpdateAction is a callback fired at most once per Interval.
type UpdateAction struct {
	Interval time.Duration
	OnUpdate func()

	last time.Time
}

func (u *UpdateAction) due(now time.Time) bool {
	return u.last.IsZero() || now.Sub(u.last) >= u.Interval
}

func (u *UpdateAction) fire(now time.Time) bool {
	if !u.due(now) {
		return false
	}
	u.last = now
	if u.OnUpdate != nil {
		u.OnUpdate()
	}
	return true
}

// runUpdateActions fires due actions by index. Actions appended during the
// loop start running next frame.
func runUpdateActions(actions *[]*UpdateAction, now time.Time) {
	n := len(*actions)
	for i := 0; i < n && i < len(*actions); i++ {
		(*actions)[i].fire(now)
	}
}

// ComponentBase holds the attributes every widget shares.
type ComponentBase struct {
	X, Y             int // tiles, relative to the owning window or the screen
	OffsetX, OffsetY int // pixels
	Width, Height    int // tiles
	Visible          bool
	Disabled         bool
	Color, Color2    Color
	Tooltip          *Tooltip
	Name             string
	Data             any
	UpdateActions    []*UpdateAction
	CommonActions

	window        *Window
	onScreen      bool
	tab           *Tab
	tooltipRedraw bool
}

func newBase(x, y, w, h int) ComponentBase {
	return ComponentBase{
		X: x, Y: y, Width: w, Height: h,
		Visible: true,
		Color:   White,
		Color2:  White,
	}
}

func (b *ComponentBase) base() *ComponentBase { return b }
func (b *ComponentBase) target()              {}

// Window returns the owning window, if any.
func (b *ComponentBase) Window() *Window { return b.window }

// OnScreen reports whether the component is a screen-level component.
func (b *ComponentBase) OnScreen() bool { return b.onScreen }

// Tab returns the tab the component belongs to, if any.
func (b *ComponentBase) Tab() *Tab { return b.tab }

// Attached reports whether a window or the screen owns the component.
func (b *ComponentBase) Attached() bool {
	return b.window != nil || b.onScreen
}

// RequestTooltipUpdate asks the engine to recompute the tooltip next frame
// while this component is hovered.
func (b *ComponentBase) RequestTooltipUpdate() {
	b.tooltipRedraw = true
}

// AddUpdateAction registers a timed callback on the component.
func (b *ComponentBase) AddUpdateAction(a *UpdateAction) {
	if a == nil {
		return
	}
	for _, existing := range b.UpdateActions {
		if existing == a {
			return
		}
	}
	b.UpdateActions = append(b.UpdateActions, a)
}

// RemoveUpdateAction unregisters a timed callback.
func (b *ComponentBase) RemoveUpdateAction(a *UpdateAction) {
	b.UpdateActions = removeItem(b.UpdateActions, a)
}

// AbsolutePosition returns the component's top-left pixel position.
func AbsolutePosition(c Component) (int, int) {
	b := c.base()
	x := b.X*TileSize + b.OffsetX
	y := b.Y*TileSize + b.OffsetY
	if b.window != nil {
		x += b.window.X
		y += b.window.Y
	}
	return x, y
}

// Bounds returns the component's absolute pixel rectangle.
func Bounds(c Component) (x, y, w, h int) {
	x, y = AbsolutePosition(c)
	b := c.base()
	return x, y, b.Width * TileSize, b.Height * TileSize
}

// Base exposes the shared attributes of any component.
func Base(c Component) *ComponentBase {
	return c.base()
}

// Tooltip is hover content. Width and height are in tiles and derived from
// the lines unless MinWidth or MinHeight ask for more.
type Tooltip struct {
	Lines     []string
	Font      any
	Color     Color
	LineColor Color
	MinWidth  int
	MinHeight int
	Images    []*TooltipImage

	OnDisplay func()
	OnUpdate  func()
}

// NewTooltip creates a tooltip with the given lines.
func NewTooltip(lines ...string) *Tooltip {
	return &Tooltip{Lines: lines, Color: White, LineColor: White}
}

// TooltipImage is an extra sprite drawn inside a tooltip.
type TooltipImage struct {
	Media any
	X, Y  int // pixels, relative to the tooltip
	Color Color

	tooltip *Tooltip
}

// Tooltip returns the tooltip the image belongs to.
func (i *TooltipImage) Tooltip() *Tooltip { return i.tooltip }

// AddImage attaches img unless it already belongs to a tooltip.
func (t *Tooltip) AddImage(img *TooltipImage) {
	if img == nil || img.tooltip != nil {
		return
	}
	img.tooltip = t
	t.Images = append(t.Images, img)
}

// RemoveImage detaches img if it belongs to t.
func (t *Tooltip) RemoveImage(img *TooltipImage) {
	if img == nil || img.tooltip != t {
		return
	}
	img.tooltip = nil
	t.Images = removeItem(t.Images, img)
}

// Size returns the tooltip size in tiles.
func (t *Tooltip) Size(m TextMetrics) (int, int) {
	maxWidth := 0
	for _, line := range t.Lines {
		if w := m.TextWidth(t.Font, line); w > maxWidth {
			maxWidth = w
		}
	}
	w := (maxWidth + TileSize*2) / TileSize
	if w < t.MinWidth {
		w = t.MinWidth
	}
	h := len(t.Lines)
	if h < t.MinHeight {
		h = t.MinHeight
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func removeItem[T comparable](items []T, item T) []T {
	for i, existing := range items {
		if existing == item {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

func indexOf[T comparable](items []T, item T) int {
	for i, existing := range items {
		if existing == item {
			return i
		}
	}
	return -1
}
