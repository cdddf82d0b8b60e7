package cpustats

import (
	"context"
	"math"
	"sync"
	"time"
)

// StatsCache coalesces CPU statistics requests: each metric is sampled at
// most once per cache interval and all callers within the interval receive
// the same stored value. The three metrics are gated by independent timers
// and locks so contention on one never blocks the others.
type StatsCache struct {
	sampler  Sampler
	interval time.Duration

	aggMu    sync.Mutex
	aggTimer refreshTimer
	agg      float64

	percpuMu    sync.Mutex
	percpuTimer refreshTimer
	percpu      []CoreSample

	infoMu    sync.Mutex
	infoTimer refreshTimer
	info      Info
}

// NewStatsCache creates a cache over the given sampler. All timers start
// expired, so the first call to each accessor always samples.
func NewStatsCache(sampler Sampler, interval time.Duration) *StatsCache {
	return &StatsCache{
		sampler:     sampler,
		interval:    interval,
		aggTimer:    newRefreshTimer(0),
		percpuTimer: newRefreshTimer(0),
		infoTimer:   newRefreshTimer(0),
	}
}

// KeyName returns the field name of the per-core ordinal in CoreSample.
func (c *StatsCache) KeyName() string {
	return CPUNumberKey
}

// Aggregate returns the overall CPU busy percentage, sampling at most once
// per interval. A sampler failure is returned as a *SamplingError without
// resetting the timer, so the next call retries.
func (c *StatsCache) Aggregate(ctx context.Context) (float64, error) {
	c.aggMu.Lock()
	defer c.aggMu.Unlock()

	if c.aggTimer.due() {
		percent, err := c.sampler.AggregatePercent(ctx)
		if err != nil {
			return 0, &SamplingError{Metric: "aggregate", Err: err}
		}
		c.agg = percent
		c.aggTimer = newRefreshTimer(c.interval)
	}
	return c.agg, nil
}

// PerCPU returns the per-core breakdown list, sampling at most once per
// interval. The new list is built completely before replacing the stored
// one; a failure leaves the previous list and timer untouched. Callers get
// a copy and cannot mutate the cached batch.
func (c *StatsCache) PerCPU(ctx context.Context) ([]CoreSample, error) {
	c.percpuMu.Lock()
	defer c.percpuMu.Unlock()

	if c.percpuTimer.due() {
		records, err := c.sampler.PerCPUPercent(ctx)
		if err != nil {
			return nil, &SamplingError{Metric: "percpu", Err: err}
		}
		samples := make([]CoreSample, len(records))
		for i, record := range records {
			samples[i] = newCoreSample(i, record)
		}
		c.percpu = samples
		c.percpuTimer = newRefreshTimer(c.interval)
	}
	return cloneSamples(c.percpu), nil
}

// Info returns CPU name and frequency, sampling at most once per interval.
// Name resolution is best-effort and falls back to "CPU"; a frequency
// failure is strict and returned as a *SamplingError, again without
// resetting the timer.
func (c *StatsCache) Info(ctx context.Context) (Info, error) {
	c.infoMu.Lock()
	defer c.infoMu.Unlock()

	if c.infoTimer.due() {
		fresh := Info{Name: "CPU"}
		if name, err := c.sampler.ModelName(ctx); err == nil && name != "" {
			fresh.Name = name
		}
		current, max, err := c.sampler.Frequency(ctx)
		if err != nil {
			return Info{}, &SamplingError{Metric: "frequency", Err: err}
		}
		fresh.HzCurrent = current
		fresh.HzMax = max
		c.info = fresh
		c.infoTimer = newRefreshTimer(c.interval)
	}
	return c.info, nil
}

// newCoreSample transforms one sampler record into a CoreSample. Total is
// derived from idle and rounded to one decimal place.
func newCoreSample(cpuNumber int, t TimesPercent) CoreSample {
	return CoreSample{
		Key:       CPUNumberKey,
		CPUNumber: cpuNumber,
		Total:     round1(100 - t.Idle),
		User:      t.User,
		System:    t.System,
		Idle:      t.Idle,
		Nice:      clonePercent(t.Nice),
		IOWait:    clonePercent(t.IOWait),
		IRQ:       clonePercent(t.IRQ),
		SoftIRQ:   clonePercent(t.SoftIRQ),
		Steal:     clonePercent(t.Steal),
		Guest:     clonePercent(t.Guest),
		GuestNice: clonePercent(t.GuestNice),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clonePercent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	p := *v
	return &p
}

func cloneSamples(samples []CoreSample) []CoreSample {
	if samples == nil {
		return nil
	}
	out := make([]CoreSample, len(samples))
	for i, s := range samples {
		out[i] = CoreSample{
			Key:       s.Key,
			CPUNumber: s.CPUNumber,
			Total:     s.Total,
			User:      s.User,
			System:    s.System,
			Idle:      s.Idle,
			Nice:      clonePercent(s.Nice),
			IOWait:    clonePercent(s.IOWait),
			IRQ:       clonePercent(s.IRQ),
			SoftIRQ:   clonePercent(s.SoftIRQ),
			Steal:     clonePercent(s.Steal),
			Guest:     clonePercent(s.Guest),
			GuestNice: clonePercent(s.GuestNice),
		}
	}
	return out
}
