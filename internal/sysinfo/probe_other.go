//go:build !windows

package sysinfo

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"

	"winspect/internal/logging"
)

// ErrWindowsOnly marks probes that need the Windows registry or WMI.
var ErrWindowsOnly = errors.New("sysinfo: only available on Windows")

func OSValue(field string) (string, error)             { return "", ErrWindowsOnly }
func ComputerSystemValue(field string) (string, error) { return "", ErrWindowsOnly }
func ProcessorValue(field string) (string, error)      { return "", ErrWindowsOnly }
func RegistryValue(name string) (string, error)        { return "", ErrWindowsOnly }

// SpecialFolder maps the folder identifiers onto their closest portable
// equivalents so the command still answers on non-Windows hosts.
func SpecialFolder(f Folder) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch f {
	case FolderDesktop:
		return filepath.Join(home, "Desktop"), nil
	case FolderDocuments:
		return filepath.Join(home, "Documents"), nil
	case FolderAppData, FolderLocalAppData:
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return dir, nil
	case FolderTemp:
		return os.TempDir(), nil
	case FolderUserProfile:
		return home, nil
	default:
		return "", ErrWindowsOnly
	}
}

// collectPlatform fills OS and processor details from gopsutil.
func collectPlatform(info *SystemInfo, log *logging.Logger) {
	info.OS = OSInfo{
		Architecture: runtime.GOARCH,
	}
	if h, err := host.Info(); err == nil {
		info.OS.Caption = h.Platform
		info.OS.Version = h.PlatformVersion
		info.System.Hostname = h.Hostname
	}

	info.System.LogicalProcessors = runtime.NumCPU()
	info.Processor.Threads = runtime.NumCPU()

	rows, err := cpu.Info()
	if err != nil || len(rows) == 0 {
		log.Warnf("cpu stats unavailable: %v", err)
		return
	}
	first := rows[0]
	info.Processor.Name = first.ModelName
	info.Processor.Manufacturer = first.VendorID
	info.Processor.Cores = int(first.Cores)
	info.Processor.MaxClockMHz = int(first.Mhz)
}
