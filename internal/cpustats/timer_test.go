package cpustats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshTimer_ZeroDurationIsImmediatelyDue(t *testing.T) {
	timer := newRefreshTimer(0)
	assert.True(t, timer.due())
}

func TestRefreshTimer_BecomesDueAfterDuration(t *testing.T) {
	timer := newRefreshTimer(30 * time.Millisecond)
	assert.False(t, timer.due())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, timer.due())
}
