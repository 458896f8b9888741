// Package config handles winspect configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds winspect settings.
type Config struct {
	Language        string // culture tag, e.g. "en", "de"; "" = detect
	LogLevel        string // "debug", "info", "warn", "error"
	JSONLogs        bool   // write log entries as JSON
	StrictResources bool   // panic on missing string resources
	ReportsEnabled  bool   // keep local system report snapshots
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Language:       "",
		LogLevel:       "info",
		ReportsEnabled: true,
	}
}

// Paths returns the config directory and file paths.
func Paths() (dir string, file string) {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	dir = filepath.Join(base, "winspect")
	file = filepath.Join(dir, "config")
	return
}

// Load reads the configuration from disk. A missing file yields defaults.
// A .env file in the working directory and WINSPECT_* environment
// variables override what the file says.
func Load() (*Config, error) {
	cfg := Default()
	_, configFile := Paths()

	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			cfg.apply(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// .env is optional; environment wins over the config file.
	godotenv.Load()
	for _, key := range []string{
		"WINSPECT_LANGUAGE", "WINSPECT_LOGLEVEL", "WINSPECT_JSONLOGS",
		"WINSPECT_STRICT", "WINSPECT_REPORTS",
	} {
		if v, ok := os.LookupEnv(key); ok {
			cfg.apply(key, v)
		}
	}

	return cfg, nil
}

func (c *Config) apply(key, value string) {
	switch key {
	case "WINSPECT_LANGUAGE":
		c.Language = strings.ToLower(value)
	case "WINSPECT_LOGLEVEL":
		c.LogLevel = strings.ToLower(value)
	case "WINSPECT_JSONLOGS":
		c.JSONLogs = value == "on" || value == "true"
	case "WINSPECT_STRICT":
		c.StrictResources = value == "on" || value == "true"
	case "WINSPECT_REPORTS":
		c.ReportsEnabled = value == "on" || value == "true"
	}
}

// Save writes the configuration to disk.
func Save(cfg *Config) error {
	dir, configFile := Paths()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := fmt.Sprintf(`WINSPECT_LANGUAGE=%s
WINSPECT_LOGLEVEL=%s
WINSPECT_JSONLOGS=%s
WINSPECT_STRICT=%s
WINSPECT_REPORTS=%s
`,
		cfg.Language,
		cfg.LogLevel,
		onOff(cfg.JSONLogs),
		onOff(cfg.StrictResources),
		onOff(cfg.ReportsEnabled),
	)

	return os.WriteFile(configFile, []byte(content), 0644)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// LogLevelOptions returns the selectable log levels.
func LogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
