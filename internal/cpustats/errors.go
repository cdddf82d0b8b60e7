package cpustats

import "fmt"

// SamplingError reports a failed OS sampling call for one metric. The
// cache's last known value for that metric is kept and its timer is not
// reset, so the next call retries the sample.
type SamplingError struct {
	Metric string
	Err    error
}

func (e *SamplingError) Error() string {
	return fmt.Sprintf("cpu sampling failed for %s: %v", e.Metric, e.Err)
}

func (e *SamplingError) Unwrap() error {
	return e.Err
}
