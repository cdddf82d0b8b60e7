// Package cpustats serves rate-limited CPU statistics shared between
// consumers, so that concurrent views never trigger more than one kernel
// sampling call per cache interval.
package cpustats

import "context"

// CPUNumberKey is the field name labelling the per-core ordinal in a
// CoreSample.
const CPUNumberKey = "cpu_number"

// CoreSample holds the percent breakdown for one logical CPU core.
// Optional fields are platform-dependent: they are set for every core of a
// sample batch or for none.
type CoreSample struct {
	Key       string   `json:"key"`
	CPUNumber int      `json:"cpu_number"`
	Total     float64  `json:"total"`
	User      float64  `json:"user"`
	System    float64  `json:"system"`
	Idle      float64  `json:"idle"`
	Nice      *float64 `json:"nice,omitempty"`
	IOWait    *float64 `json:"iowait,omitempty"`
	IRQ       *float64 `json:"irq,omitempty"`
	SoftIRQ   *float64 `json:"softirq,omitempty"`
	Steal     *float64 `json:"steal,omitempty"`
	Guest     *float64 `json:"guest,omitempty"`
	GuestNice *float64 `json:"guest_nice,omitempty"`
}

// Info holds semi-static CPU information. Frequencies are in MHz.
type Info struct {
	Name      string  `json:"cpu_name"`
	HzCurrent float64 `json:"cpu_hz_current"`
	HzMax     float64 `json:"cpu_hz_max"`
}

// TimesPercent is one per-core record from the sampler: point-in-time
// percentages computed over the sampler's own window. Required fields are
// always set; optional fields are nil when the platform does not report
// them.
type TimesPercent struct {
	User      float64
	System    float64
	Idle      float64
	Nice      *float64
	IOWait    *float64
	IRQ       *float64
	SoftIRQ   *float64
	Steal     *float64
	Guest     *float64
	GuestNice *float64
}

// Sampler is the OS provider behind the cache. Sampling calls are
// non-blocking: implementations compute percentages against their own
// previous snapshot instead of sleeping to build a delta.
type Sampler interface {
	// AggregatePercent returns overall CPU busy percentage, 0-100.
	AggregatePercent(ctx context.Context) (float64, error)
	// PerCPUPercent returns one breakdown record per logical core, in
	// OS-reported order.
	PerCPUPercent(ctx context.Context) ([]TimesPercent, error)
	// Frequency returns current and maximum CPU frequency in MHz.
	Frequency(ctx context.Context) (current, max float64, err error)
	// ModelName returns a human-readable CPU model name. Allowed to fail;
	// callers substitute a placeholder.
	ModelName(ctx context.Context) (string, error)
}

// NewSampler creates the gopsutil-backed sampler for the current platform.
func NewSampler() Sampler {
	return newGopsutilSampler()
}
