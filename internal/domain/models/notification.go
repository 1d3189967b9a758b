package models

import "time"

// NotificationKind distinguishes success banners from error banners.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient user-facing banner produced by every mutating
// operation's outcome. At most one is visible at a time; a newer one replaces
// the prior, and each disappears once its visibility window elapses.
type Notification struct {
	Message      string
	Kind         NotificationKind
	VisibleUntil time.Time
}

// Expired reports whether the visibility window has elapsed at the given time.
func (n Notification) Expired(now time.Time) bool {
	return !now.Before(n.VisibleUntil)
}
