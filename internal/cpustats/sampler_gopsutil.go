package cpustats

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
)

// capabilities is the set of optional per-core fields the platform
// reports. It is probed once at sampler construction and applied to every
// record of every batch.
type capabilities struct {
	nice      bool
	iowait    bool
	irq       bool
	softirq   bool
	steal     bool
	guest     bool
	guestNice bool
}

// capsForOS maps GOOS to the optional fields its kernel accounting
// exposes.
func capsForOS(goos string) capabilities {
	switch goos {
	case "linux":
		return capabilities{
			nice:      true,
			iowait:    true,
			irq:       true,
			softirq:   true,
			steal:     true,
			guest:     true,
			guestNice: true,
		}
	case "darwin":
		return capabilities{nice: true}
	default:
		return capabilities{}
	}
}

// gopsutilSampler implements Sampler on top of gopsutil. Per-core
// percentages are computed against the sampler's previous times snapshot,
// so calls never sleep; the first call measures the whole uptime window.
type gopsutilSampler struct {
	caps capabilities

	mu        sync.Mutex
	lastTimes []cpu.TimesStat
}

func newGopsutilSampler() *gopsutilSampler {
	return &gopsutilSampler{caps: capsForOS(runtime.GOOS)}
}

// AggregatePercent returns overall busy percent since the previous call.
func (s *gopsutilSampler) AggregatePercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("no aggregate cpu percent reported")
	}
	return percents[0], nil
}

// PerCPUPercent returns one breakdown record per core, computed from the
// delta between the current and previous cumulative times snapshots.
func (s *gopsutilSampler) PerCPUPercent(ctx context.Context) ([]TimesPercent, error) {
	times, err := cpu.TimesWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	prev := s.lastTimes
	s.lastTimes = times
	s.mu.Unlock()

	records := make([]TimesPercent, len(times))
	for i, cur := range times {
		var base cpu.TimesStat
		if i < len(prev) {
			base = prev[i]
		}
		records[i] = s.timesPercent(base, cur)
	}
	return records, nil
}

// timesPercent converts the delta between two cumulative snapshots into
// percentages. Optional fields follow the probed capability set.
func (s *gopsutilSampler) timesPercent(prev, cur cpu.TimesStat) TimesPercent {
	user := cur.User - prev.User
	system := cur.System - prev.System
	idle := cur.Idle - prev.Idle
	nice := cur.Nice - prev.Nice
	iowait := cur.Iowait - prev.Iowait
	irq := cur.Irq - prev.Irq
	softirq := cur.Softirq - prev.Softirq
	steal := cur.Steal - prev.Steal
	guest := cur.Guest - prev.Guest
	guestNice := cur.GuestNice - prev.GuestNice

	total := user + system + idle + nice + iowait + irq + softirq + steal
	if total <= 0 {
		// No time elapsed between snapshots: report fully idle.
		record := TimesPercent{Idle: 100}
		s.applyCaps(&record, 0, 0, 0, 0, 0, 0, 0)
		return record
	}

	pct := func(v float64) float64 {
		if v < 0 {
			v = 0
		}
		return v / total * 100
	}

	record := TimesPercent{
		User:   pct(user),
		System: pct(system),
		Idle:   pct(idle),
	}
	s.applyCaps(&record,
		pct(nice), pct(iowait), pct(irq), pct(softirq),
		pct(steal), pct(guest), pct(guestNice))
	return record
}

func (s *gopsutilSampler) applyCaps(record *TimesPercent, nice, iowait, irq, softirq, steal, guest, guestNice float64) {
	if s.caps.nice {
		record.Nice = &nice
	}
	if s.caps.iowait {
		record.IOWait = &iowait
	}
	if s.caps.irq {
		record.IRQ = &irq
	}
	if s.caps.softirq {
		record.SoftIRQ = &softirq
	}
	if s.caps.steal {
		record.Steal = &steal
	}
	if s.caps.guest {
		record.Guest = &guest
	}
	if s.caps.guestNice {
		record.GuestNice = &guestNice
	}
}

// Frequency returns current and max CPU frequency in MHz from the
// platform-specific source.
func (s *gopsutilSampler) Frequency(ctx context.Context) (float64, float64, error) {
	return readFrequency(ctx)
}

// ModelName returns the CPU model name from the platform-specific source.
func (s *gopsutilSampler) ModelName(ctx context.Context) (string, error) {
	return readModelName(ctx)
}
