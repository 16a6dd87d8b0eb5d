package admin

import (
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// SystemInfo is the host summary shown on the admin system page
type SystemInfo struct {
	Hostname        string  `json:"hostname"`
	OS              string  `json:"os"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	KernelVersion   string  `json:"kernel_version"`
	Uptime          string  `json:"uptime"`
	MemoryTotal     uint64  `json:"memory_total"`
	MemoryUsed      uint64  `json:"memory_used"`
	MemoryUsedPct   float64 `json:"memory_used_percent"`
	GoVersion       string  `json:"go_version"`
	Goroutines      int     `json:"goroutines"`
}

// SystemInfoFunc collects host information; replaced in tests
type SystemInfoFunc func() (*SystemInfo, error)

// GetSystemInfo reads host and memory statistics from the operating system
func GetSystemInfo() (*SystemInfo, error) {
	hostStat, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	uptime := time.Duration(hostStat.Uptime) * time.Second

	return &SystemInfo{
		Hostname:        hostStat.Hostname,
		OS:              hostStat.OS,
		Platform:        hostStat.Platform,
		PlatformVersion: hostStat.PlatformVersion,
		KernelVersion:   hostStat.KernelVersion,
		Uptime: fmt.Sprintf("%d days, %d hours, %d minutes",
			int(uptime.Hours())/24, int(uptime.Hours())%24, int(uptime.Minutes())%60),
		MemoryTotal:   vm.Total,
		MemoryUsed:    vm.Used,
		MemoryUsedPct: vm.UsedPercent,
		GoVersion:     runtime.Version(),
		Goroutines:    runtime.NumGoroutine(),
	}, nil
}
