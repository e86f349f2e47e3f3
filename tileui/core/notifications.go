// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tileui/core/notifications.go
// Summary: Notification queue lifecycle. Only the head of the queue animates.

package core

import (
	"time"

	"github.com/framegrace/tilegui/internal/effects"
)

// notificationScrollDelay is how long a long notification rests before it
// starts scrolling.
const notificationScrollDelay = 500 * time.Millisecond

func (e *Engine) updateNotifications() {
	s := e.state
	if len(s.notifications) == 0 {
		return
	}
	now := s.now()
	n := s.notifications[0]
	switch n.state {
	case NotificationInitScroll:
		n.state = NotificationScroll
		n.timer = now
	case NotificationInitDisplay:
		n.state = NotificationDisplay
		n.timer = now
	case NotificationScroll:
		if now.Sub(n.timer) < notificationScrollDelay {
			return
		}
		n.scrollOffset += s.opts.NotificationScrollSpeed
		if n.scrollOffset >= n.scrollMax {
			n.scrollOffset = n.scrollMax
			n.state = NotificationDisplay
			n.timer = now
		}
	case NotificationDisplay:
		display := n.DisplayTime
		if display <= 0 {
			display = s.opts.NotificationDisplay
		}
		if now.Sub(n.timer) >= display {
			n.state = NotificationFadeOut
			n.timer = now
			s.notifyFades.Start(n, 1, 0, effects.AnimateOptions{Duration: s.opts.NotificationFadeout}, now)
		}
	case NotificationFadeOut:
		if now.Sub(n.timer) >= s.opts.NotificationFadeout {
			s.RemoveNotification(n)
		}
	}
}
