package cpustats

import (
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapsForOS(t *testing.T) {
	linux := capsForOS("linux")
	assert.True(t, linux.nice)
	assert.True(t, linux.iowait)
	assert.True(t, linux.irq)
	assert.True(t, linux.softirq)
	assert.True(t, linux.steal)
	assert.True(t, linux.guest)
	assert.True(t, linux.guestNice)

	darwin := capsForOS("darwin")
	assert.True(t, darwin.nice)
	assert.False(t, darwin.iowait)
	assert.False(t, darwin.steal)

	assert.Equal(t, capabilities{}, capsForOS("windows"))
	assert.Equal(t, capabilities{}, capsForOS("plan9"))
}

func TestGopsutilSampler_TimesPercentDelta(t *testing.T) {
	s := &gopsutilSampler{caps: capsForOS("linux")}

	prev := cpu.TimesStat{User: 100, System: 50, Idle: 850}
	cur := cpu.TimesStat{User: 120, System: 60, Idle: 920}

	record := s.timesPercent(prev, cur)
	assert.InDelta(t, 20.0, record.User, 1e-9)
	assert.InDelta(t, 10.0, record.System, 1e-9)
	assert.InDelta(t, 70.0, record.Idle, 1e-9)

	require.NotNil(t, record.Nice)
	assert.Equal(t, 0.0, *record.Nice)
	require.NotNil(t, record.Steal)
	assert.Equal(t, 0.0, *record.Steal)
}

func TestGopsutilSampler_TimesPercentOptionalBusyTime(t *testing.T) {
	s := &gopsutilSampler{caps: capsForOS("linux")}

	prev := cpu.TimesStat{User: 0, System: 0, Idle: 0}
	cur := cpu.TimesStat{User: 40, System: 20, Idle: 20, Iowait: 10, Steal: 10}

	record := s.timesPercent(prev, cur)
	assert.InDelta(t, 40.0, record.User, 1e-9)
	assert.InDelta(t, 20.0, record.System, 1e-9)
	assert.InDelta(t, 20.0, record.Idle, 1e-9)
	require.NotNil(t, record.IOWait)
	assert.InDelta(t, 10.0, *record.IOWait, 1e-9)
	require.NotNil(t, record.Steal)
	assert.InDelta(t, 10.0, *record.Steal, 1e-9)
}

func TestGopsutilSampler_TimesPercentNoCapabilities(t *testing.T) {
	s := &gopsutilSampler{caps: capsForOS("windows")}

	record := s.timesPercent(cpu.TimesStat{}, cpu.TimesStat{User: 30, System: 20, Idle: 50})
	assert.InDelta(t, 30.0, record.User, 1e-9)
	assert.Nil(t, record.Nice)
	assert.Nil(t, record.IOWait)
	assert.Nil(t, record.IRQ)
	assert.Nil(t, record.SoftIRQ)
	assert.Nil(t, record.Steal)
	assert.Nil(t, record.Guest)
	assert.Nil(t, record.GuestNice)
}

func TestGopsutilSampler_TimesPercentZeroWindowReportsIdle(t *testing.T) {
	s := &gopsutilSampler{caps: capsForOS("linux")}

	snap := cpu.TimesStat{User: 100, System: 50, Idle: 850}
	record := s.timesPercent(snap, snap)
	assert.Equal(t, 100.0, record.Idle)
	assert.Equal(t, 0.0, record.User)
	assert.Equal(t, 0.0, record.System)
	require.NotNil(t, record.Nice)
	assert.Equal(t, 0.0, *record.Nice)
}

func TestGopsutilSampler_TimesPercentClampsCounterRollback(t *testing.T) {
	s := &gopsutilSampler{caps: capsForOS("linux")}

	prev := cpu.TimesStat{User: 100, System: 50, Idle: 850}
	cur := cpu.TimesStat{User: 90, System: 70, Idle: 950}

	record := s.timesPercent(prev, cur)
	assert.Equal(t, 0.0, record.User)
	assert.True(t, record.System > 0)
	assert.True(t, record.Idle > 0)
}
