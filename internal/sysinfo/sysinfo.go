// Package sysinfo collects hardware and OS information for winspect.
// On Windows the details come from WMI and the registry; memory and host
// figures come from gopsutil so the aggregate also works elsewhere.
package sysinfo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"winspect/internal/logging"
)

// SystemInfo is a point-in-time snapshot of the machine.
type SystemInfo struct {
	CollectedAt time.Time `json:"collected_at"`
	Version     string    `json:"winspect_version"`

	OS        OSInfo        `json:"os"`
	System    ComputerInfo  `json:"system"`
	Processor ProcessorInfo `json:"processor"`
	Memory    MemoryInfo    `json:"memory"`
	Host      HostInfo      `json:"host"`
}

// OSInfo describes the operating system.
type OSInfo struct {
	Caption      string `json:"caption"`
	Version      string `json:"version"`
	Build        string `json:"build"`
	Architecture string `json:"architecture"`
}

// ComputerInfo describes the computer system.
type ComputerInfo struct {
	Manufacturer      string `json:"manufacturer"`
	Model             string `json:"model"`
	Hostname          string `json:"hostname"`
	LogicalProcessors int    `json:"logical_processors"`
}

// ProcessorInfo describes the CPU.
type ProcessorInfo struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Cores        int    `json:"cores"`
	Threads      int    `json:"threads"`
	MaxClockMHz  int    `json:"max_clock_mhz"`
}

// MemoryInfo describes physical memory.
type MemoryInfo struct {
	TotalMiB     int     `json:"total_mib"`
	AvailableMiB int     `json:"available_mib"`
	UsedPercent  float64 `json:"used_percent"`
}

// HostInfo describes the running host.
type HostInfo struct {
	Hostname      string `json:"hostname"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
	Platform      string `json:"platform"`
	KernelVersion string `json:"kernel_version"`
}

// Collect gathers a full snapshot. Failures of individual sources are
// logged and leave their fields zero; Collect itself never fails.
func Collect(version string) *SystemInfo {
	log := logging.WithComponent("sysinfo")

	info := &SystemInfo{
		CollectedAt: time.Now().UTC(),
		Version:     version,
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.Warnf("memory stats unavailable: %v", err)
	} else {
		info.Memory = MemoryInfo{
			TotalMiB:     int(vm.Total / (1024 * 1024)),
			AvailableMiB: int(vm.Available / (1024 * 1024)),
			UsedPercent:  vm.UsedPercent,
		}
	}

	if h, err := host.Info(); err != nil {
		log.Warnf("host stats unavailable: %v", err)
	} else {
		info.Host = HostInfo{
			Hostname:      h.Hostname,
			UptimeSeconds: h.Uptime,
			Platform:      h.Platform,
			KernelVersion: h.KernelVersion,
		}
	}

	collectPlatform(info, log)

	return info
}

// ToJSON serializes the snapshot.
func (s *SystemInfo) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Summary returns a plain-text rendering of the snapshot.
func (s *SystemInfo) Summary() string {
	var b strings.Builder

	section := func(name string) {
		b.WriteString(name)
		b.WriteString("\n")
	}
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(&b, "  %-14s %s\n", label, value)
	}

	section("Operating system")
	row("Name:", s.OS.Caption)
	row("Version:", s.OS.Version)
	row("Build:", s.OS.Build)
	row("Architecture:", s.OS.Architecture)
	b.WriteString("\n")

	section("Computer system")
	row("Manufacturer:", s.System.Manufacturer)
	row("Model:", s.System.Model)
	row("Hostname:", s.System.Hostname)
	b.WriteString("\n")

	section("Processor")
	row("Name:", s.Processor.Name)
	row("Cores:", fmt.Sprintf("%d (%d threads)", s.Processor.Cores, s.Processor.Threads))
	if s.Processor.MaxClockMHz > 0 {
		row("Max clock:", fmt.Sprintf("%d MHz", s.Processor.MaxClockMHz))
	}
	b.WriteString("\n")

	section("Memory")
	row("Total:", FormatMiB(s.Memory.TotalMiB))
	row("Available:", FormatMiB(s.Memory.AvailableMiB))
	b.WriteString("\n")

	section("Host")
	row("Uptime:", FormatUptime(s.Host.UptimeSeconds))
	row("Kernel:", s.Host.KernelVersion)

	return b.String()
}

// FormatMiB renders a MiB count as "16.0 GiB" or "512 MiB".
func FormatMiB(mib int) string {
	if mib <= 0 {
		return "-"
	}
	if mib >= 1024 {
		return fmt.Sprintf("%.1f GiB", float64(mib)/1024)
	}
	return fmt.Sprintf("%d MiB", mib)
}

// FormatUptime renders seconds as "3d 4h 12m".
func FormatUptime(seconds uint64) string {
	if seconds == 0 {
		return "-"
	}
	d := seconds / 86400
	h := seconds % 86400 / 3600
	m := seconds % 3600 / 60
	if d > 0 {
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
