package notify

import "github.com/gen2brain/beeep"

// DesktopSink displays native desktop alerts via beeep.
type DesktopSink struct {
	appName string
}

// NewDesktopSink returns a sink that posts desktop notifications under
// the given application name.
func NewDesktopSink(appName string) *DesktopSink {
	return &DesktopSink{appName: appName}
}

// PermissionGranted always reports true: desktop notification daemons
// handle do-not-disturb themselves.
func (s *DesktopSink) PermissionGranted() bool { return true }

// Display posts the alert. beeep has no replacement-tag concept, so the
// dedup key is unused here; at-most-once delivery is enforced upstream.
func (s *DesktopSink) Display(title, body, dedupKey string) error {
	beeep.AppName = s.appName
	if err := beeep.Alert(title, body, ""); err != nil {
		failedTotal.WithLabelValues("desktop").Inc()
		return err
	}
	displayedTotal.WithLabelValues("desktop").Inc()
	return nil
}
