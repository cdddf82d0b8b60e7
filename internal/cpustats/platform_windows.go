//go:build windows

package cpustats

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
)

// Win32_Processor represents WMI processor data
type Win32_Processor struct {
	Name              string
	CurrentClockSpeed uint32
	MaxClockSpeed     uint32
}

func queryProcessor() (*Win32_Processor, error) {
	var dst []Win32_Processor
	query := wmi.CreateQuery(&dst, "")
	if err := wmi.Query(query, &dst); err != nil {
		return nil, err
	}
	if len(dst) == 0 {
		return nil, fmt.Errorf("no processor reported by WMI")
	}
	return &dst[0], nil
}

// readModelName reads the CPU model name from WMI.
func readModelName(ctx context.Context) (string, error) {
	proc, err := queryProcessor()
	if err != nil {
		return "", err
	}
	return proc.Name, nil
}

// readFrequency returns current and max clock speed in MHz from WMI.
func readFrequency(ctx context.Context) (float64, float64, error) {
	proc, err := queryProcessor()
	if err != nil {
		return 0, 0, err
	}
	return float64(proc.CurrentClockSpeed), float64(proc.MaxClockSpeed), nil
}
