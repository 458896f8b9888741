package sysinfo

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"winspect/internal/logging"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{FilePath: "", Level: logging.LevelError})
	os.Exit(m.Run())
}

func TestFormatMiB(t *testing.T) {
	tests := []struct {
		mib  int
		want string
	}{
		{0, "-"},
		{-5, "-"},
		{512, "512 MiB"},
		{1023, "1023 MiB"},
		{1024, "1.0 GiB"},
		{16384, "16.0 GiB"},
		{1536, "1.5 GiB"},
	}
	for _, tt := range tests {
		if got := FormatMiB(tt.mib); got != tt.want {
			t.Errorf("FormatMiB(%d) = %q, want %q", tt.mib, got, tt.want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{0, "-"},
		{59, "0m"},
		{60, "1m"},
		{3600, "1h 0m"},
		{3720, "1h 2m"},
		{90000, "1d 1h 0m"},
		{276720, "3d 4h 52m"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.seconds); got != tt.want {
			t.Errorf("FormatUptime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseFolderRoundtrip(t *testing.T) {
	for _, name := range FolderNames() {
		f, err := ParseFolder(name)
		if err != nil {
			t.Errorf("ParseFolder(%q): %v", name, err)
			continue
		}
		if f.String() != name {
			t.Errorf("ParseFolder(%q).String() = %q", name, f.String())
		}
	}
}

func TestParseFolderUnknown(t *testing.T) {
	if _, err := ParseFolder("attic"); err == nil {
		t.Error("ParseFolder should reject unknown names")
	}
}

func TestFolderStringUnknown(t *testing.T) {
	if got := Folder(99).String(); got != "folder(99)" {
		t.Errorf("Folder(99).String() = %q", got)
	}
}

func TestEnvVar(t *testing.T) {
	t.Setenv("WINSPECT_TEST_VAR", "hello")

	v, err := EnvVar("WINSPECT_TEST_VAR")
	if err != nil {
		t.Fatalf("EnvVar: %v", err)
	}
	if v != "hello" {
		t.Errorf("EnvVar = %q, want hello", v)
	}

	if _, err := EnvVar("WINSPECT_DEFINITELY_UNSET_VAR"); err == nil {
		t.Error("EnvVar should fail for unset variables")
	}
}

func TestEnvVarEmptyValue(t *testing.T) {
	t.Setenv("WINSPECT_EMPTY_VAR", "")

	v, err := EnvVar("WINSPECT_EMPTY_VAR")
	if err != nil {
		t.Fatalf("EnvVar: %v", err)
	}
	if v != "" {
		t.Errorf("EnvVar = %q, want empty string", v)
	}
}

func TestSummaryRendersAllSections(t *testing.T) {
	info := &SystemInfo{
		OS:        OSInfo{Caption: "Example OS", Version: "10.0", Build: "22631", Architecture: "64-bit"},
		System:    ComputerInfo{Manufacturer: "Acme", Model: "Box 9000", Hostname: "lab-1"},
		Processor: ProcessorInfo{Name: "Acme CPU", Cores: 8, Threads: 16, MaxClockMHz: 3600},
		Memory:    MemoryInfo{TotalMiB: 16384, AvailableMiB: 8192},
		Host:      HostInfo{UptimeSeconds: 3720, KernelVersion: "10.0.22631"},
	}

	out := info.Summary()
	for _, want := range []string{
		"Operating system", "Example OS",
		"Computer system", "Box 9000",
		"Processor", "8 (16 threads)", "3600 MHz",
		"Memory", "16.0 GiB", "8.0 GiB",
		"Host", "1h 2m",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryBlanksAsDash(t *testing.T) {
	out := (&SystemInfo{}).Summary()
	if !strings.Contains(out, "Name:          -") {
		t.Errorf("empty fields should render as dashes:\n%s", out)
	}
	if strings.Contains(out, "MHz") {
		t.Errorf("zero clock speed should be omitted:\n%s", out)
	}
}

func TestCollectAndJSON(t *testing.T) {
	info := Collect("test")
	if info.Version != "test" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.CollectedAt.IsZero() {
		t.Error("CollectedAt not set")
	}

	data, err := info.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	for _, key := range []string{"collected_at", "winspect_version", "os", "system", "processor", "memory", "host"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("snapshot JSON missing %q", key)
		}
	}
}
