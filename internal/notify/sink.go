// Package notify defines the notification sink contract and its
// concrete implementations.
package notify

// Sink displays titled alerts to the user.
//
// Display must tolerate repeated identical dedup keys: the reminder
// layer already guarantees at-most-once delivery per key, so sink-level
// dedup is optional.
type Sink interface {
	// PermissionGranted reports whether the sink may currently display
	// notifications. Reminder delivery is suppressed entirely when
	// false.
	PermissionGranted() bool
	// Display shows an alert. dedupKey is a stable replacement tag of
	// the form "block-<id>".
	Display(title, body, dedupKey string) error
}
