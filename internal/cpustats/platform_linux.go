//go:build linux

package cpustats

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

// readModelName reads the CPU model name from /proc/cpuinfo.
func readModelName(ctx context.Context) (string, error) {
	file, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "model name") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[1])
		if name != "" {
			return name, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("model name not found in /proc/cpuinfo")
}

// readFrequency returns current and max CPU frequency in MHz. It prefers
// cpufreq sysfs values (kHz) and falls back to gopsutil's /proc/cpuinfo
// reading when sysfs is unavailable.
func readFrequency(ctx context.Context) (float64, float64, error) {
	current := readSysfsMHz("/sys/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq")
	max := readSysfsMHz("/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq")

	if current == 0 || max == 0 {
		info, err := cpu.InfoWithContext(ctx)
		if err != nil {
			return 0, 0, err
		}
		if len(info) == 0 {
			return 0, 0, fmt.Errorf("no cpu info reported")
		}
		if current == 0 {
			current = info[0].Mhz
		}
		if max == 0 {
			max = info[0].Mhz
		}
	}
	if current == 0 && max == 0 {
		return 0, 0, fmt.Errorf("cpu frequency unavailable")
	}
	return current, max, nil
}

func readSysfsMHz(path string) float64 {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0
	}
	return khz / 1000
}
