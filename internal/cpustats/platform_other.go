//go:build !linux && !windows

package cpustats

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// readModelName reads the CPU model name via gopsutil.
func readModelName(ctx context.Context) (string, error) {
	info, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	if len(info) == 0 || info[0].ModelName == "" {
		return "", fmt.Errorf("no cpu model name reported")
	}
	return info[0].ModelName, nil
}

// readFrequency returns the reported clock speed in MHz. Platforms without
// a max frequency source report the same value for both.
func readFrequency(ctx context.Context) (float64, float64, error) {
	info, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(info) == 0 {
		return 0, 0, fmt.Errorf("no cpu info reported")
	}
	return info[0].Mhz, info[0].Mhz, nil
}
