package cpustats

import "time"

// refreshTimer is an absolute deadline. A zero duration produces an
// already-due timer; a refresh replaces the timer rather than mutating it.
type refreshTimer struct {
	expiry time.Time
}

// newRefreshTimer returns a timer due after d from now.
func newRefreshTimer(d time.Duration) refreshTimer {
	return refreshTimer{expiry: time.Now().Add(d)}
}

// due reports whether the deadline has passed.
func (t refreshTimer) due() bool {
	return !time.Now().Before(t.expiry)
}
