//go:build windows

package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/yusufpapurcu/wmi"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"winspect/internal/logging"
)

// currentVersionKey is the registry path the probe reads version values from.
const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// Struct names must match the WMI class names; wmi derives the WQL query
// from the type.

type Win32_OperatingSystem struct {
	Caption        string
	Version        string
	BuildNumber    string
	OSArchitecture string
}

type Win32_ComputerSystem struct {
	Manufacturer              string
	Model                     string
	Name                      string
	NumberOfLogicalProcessors uint32
	TotalPhysicalMemory       uint64
}

type Win32_Processor struct {
	Name                      string
	Manufacturer              string
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
	MaxClockSpeed             uint32
}

func queryAll[T any]() ([]T, error) {
	var dst []T
	q := wmi.CreateQuery(&dst, "")
	if err := wmi.Query(q, &dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func queryOne[T any]() (T, error) {
	var zero T
	rows, err := queryAll[T]()
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, errors.New("sysinfo: empty WMI result")
	}
	return rows[0], nil
}

// fieldValue returns the named struct field rendered as a string. The
// match is case-insensitive so probe names follow the CIM property names.
func fieldValue(v any, field string) (string, error) {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if strings.EqualFold(rt.Field(i).Name, field) {
			return fmt.Sprintf("%v", rv.Field(i).Interface()), nil
		}
	}
	return "", fmt.Errorf("sysinfo: %s has no property %q", rt.Name(), field)
}

// OSValue queries a single Win32_OperatingSystem property.
func OSValue(field string) (string, error) {
	row, err := queryOne[Win32_OperatingSystem]()
	if err != nil {
		return "", err
	}
	return fieldValue(row, field)
}

// ComputerSystemValue queries a single Win32_ComputerSystem property.
func ComputerSystemValue(field string) (string, error) {
	row, err := queryOne[Win32_ComputerSystem]()
	if err != nil {
		return "", err
	}
	return fieldValue(row, field)
}

// ProcessorValue queries a single Win32_Processor property.
func ProcessorValue(field string) (string, error) {
	row, err := queryOne[Win32_Processor]()
	if err != nil {
		return "", err
	}
	return fieldValue(row, field)
}

// RegistryValue reads a value from HKLM\SOFTWARE\Microsoft\Windows
// NT\CurrentVersion. DWORD/QWORD values are rendered in decimal.
func RegistryValue(name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("sysinfo: open CurrentVersion: %w", err)
	}
	defer k.Close()

	s, _, err := k.GetStringValue(name)
	if err == nil {
		return s, nil
	}
	if errors.Is(err, registry.ErrUnexpectedType) {
		n, _, ierr := k.GetIntegerValue(name)
		if ierr != nil {
			return "", fmt.Errorf("sysinfo: read %q: %w", name, ierr)
		}
		return fmt.Sprintf("%d", n), nil
	}
	return "", fmt.Errorf("sysinfo: read %q: %w", name, err)
}

// SpecialFolder resolves a well-known folder to its path.
func SpecialFolder(f Folder) (string, error) {
	switch f {
	case FolderTemp:
		return os.TempDir(), nil
	}

	ids := map[Folder]*windows.KNOWNFOLDERID{
		FolderDesktop:      windows.FOLDERID_Desktop,
		FolderDocuments:    windows.FOLDERID_Documents,
		FolderAppData:      windows.FOLDERID_RoamingAppData,
		FolderLocalAppData: windows.FOLDERID_LocalAppData,
		FolderProgramFiles: windows.FOLDERID_ProgramFiles,
		FolderUserProfile:  windows.FOLDERID_Profile,
		FolderWindows:      windows.FOLDERID_Windows,
		FolderSystem:       windows.FOLDERID_System,
	}
	id, ok := ids[f]
	if !ok {
		return "", fmt.Errorf("sysinfo: no known folder for %s", f)
	}
	path, err := windows.KnownFolderPath(id, 0)
	if err != nil {
		return "", fmt.Errorf("sysinfo: resolve %s: %w", f, err)
	}
	return path, nil
}

// collectPlatform fills the WMI- and registry-backed parts of the snapshot.
func collectPlatform(info *SystemInfo, log *logging.Logger) {
	if osRow, err := queryOne[Win32_OperatingSystem](); err != nil {
		log.Warnf("Win32_OperatingSystem query failed: %v", err)
	} else {
		info.OS = OSInfo{
			Caption:      strings.TrimSpace(osRow.Caption),
			Version:      osRow.Version,
			Build:        osRow.BuildNumber,
			Architecture: osRow.OSArchitecture,
		}
	}

	if cs, err := queryOne[Win32_ComputerSystem](); err != nil {
		log.Warnf("Win32_ComputerSystem query failed: %v", err)
	} else {
		info.System = ComputerInfo{
			Manufacturer:      cs.Manufacturer,
			Model:             cs.Model,
			Hostname:          cs.Name,
			LogicalProcessors: int(cs.NumberOfLogicalProcessors),
		}
	}

	if cpu, err := queryOne[Win32_Processor](); err != nil {
		log.Warnf("Win32_Processor query failed: %v", err)
	} else {
		info.Processor = ProcessorInfo{
			Name:         strings.TrimSpace(cpu.Name),
			Manufacturer: cpu.Manufacturer,
			Cores:        int(cpu.NumberOfCores),
			Threads:      int(cpu.NumberOfLogicalProcessors),
			MaxClockMHz:  int(cpu.MaxClockSpeed),
		}
	}

	// The display build (e.g. "23H2") only exists in the registry.
	if build, err := RegistryValue("DisplayVersion"); err == nil && info.OS.Build != "" {
		info.OS.Build = fmt.Sprintf("%s (%s)", info.OS.Build, build)
	}
}
