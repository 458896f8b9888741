// winspect: Windows system information viewer with localized UI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"winspect/internal/config"
	"winspect/internal/locales"
	"winspect/internal/logging"
	"winspect/internal/report"
	"winspect/internal/sysinfo"
	"winspect/internal/tui"
)

// Version is set at build time
var Version = "dev"

var (
	cfg        *config.Config
	translator *locales.Translator
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.Default()
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.LogLevel)
	logCfg.JSONMode = cfg.JSONLogs
	logging.Init(logCfg)

	translator = locales.NewTranslator(resolveCulture(cfg), cfg.StrictResources)

	reportCfg := report.DefaultConfig()
	reportCfg.Enabled = cfg.ReportsEnabled
	report.Init(reportCfg)

	rootCmd := &cobra.Command{
		Use:   "winspect",
		Short: "Windows system information viewer",
		Long: `Winspect displays hardware and operating system information collected
from the registry, WMI and the environment, with a localized interface.`,
		Version: Version,
		Run:     runTUI,
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print collected system information",
		Run:   runInfo,
	}
	infoCmd.Flags().Bool("json", false, "Output as JSON")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Query a single system value",
	}
	probeCmd.AddCommand(
		&cobra.Command{
			Use:   "registry NAME",
			Short: `Read a value from HKLM\...\Windows NT\CurrentVersion`,
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printProbe(sysinfo.RegistryValue(args[0]))
			},
		},
		&cobra.Command{
			Use:   "os PROPERTY",
			Short: "Query a Win32_OperatingSystem property",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printProbe(sysinfo.OSValue(args[0]))
			},
		},
		&cobra.Command{
			Use:   "cs PROPERTY",
			Short: "Query a Win32_ComputerSystem property",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printProbe(sysinfo.ComputerSystemValue(args[0]))
			},
		},
		&cobra.Command{
			Use:   "cpu PROPERTY",
			Short: "Query a Win32_Processor property",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printProbe(sysinfo.ProcessorValue(args[0]))
			},
		},
		&cobra.Command{
			Use:   "env NAME",
			Short: "Look up an environment variable",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				printProbe(sysinfo.EnvVar(args[0]))
			},
		},
		&cobra.Command{
			Use:       "folder NAME",
			Short:     "Resolve a special folder (" + strings.Join(sysinfo.FolderNames(), ", ") + ")",
			Args:      cobra.ExactArgs(1),
			ValidArgs: sysinfo.FolderNames(),
			Run: func(cmd *cobra.Command, args []string) {
				f, err := sysinfo.ParseFolder(args[0])
				if err != nil {
					printProbe("", err)
					return
				}
				printProbe(sysinfo.SpecialFolder(f))
			},
		},
	)

	localeCmd := &cobra.Command{
		Use:   "locale",
		Short: "Inspect translation tables",
	}
	checkCmd := &cobra.Command{
		Use:   "check CULTURE",
		Short: "Report translation coverage against the default culture",
		Args:  cobra.ExactArgs(1),
		Run:   runLocaleCheck,
	}
	checkCmd.Flags().String("dir", "", "Directory of string tables (default: embedded)")
	checkCmd.Flags().String("default", locales.DefaultCulture, "Default culture to compare against")
	localeCmd.AddCommand(checkCmd, &cobra.Command{
		Use:   "list",
		Short: "List available cultures",
		Run: func(cmd *cobra.Command, args []string) {
			for _, culture := range locales.AvailableCultures() {
				fmt.Println(culture)
			}
		},
	})

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Manage local system report snapshots",
	}
	reportCmd.AddCommand(
		&cobra.Command{
			Use:   "save",
			Short: "Collect and store a snapshot",
			Run:   runReportSave,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored snapshots",
			Run:   runReportList,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete all stored snapshots",
			Run: func(cmd *cobra.Command, args []string) {
				if err := report.Default().Clear(); err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					os.Exit(1)
				}
				fmt.Println("Reports cleared")
			},
		},
	)

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "View or manage logs",
		Run:   runLogs,
	}
	logsCmd.Flags().Bool("clear", false, "Clear all logs")

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove winspect configuration, cache and reports",
		Run:   runClean,
	}
	cleanCmd.Flags().BoolP("yes", "y", false, "Skip confirmation")

	rootCmd.AddCommand(infoCmd, probeCmd, localeCmd, reportCmd, logsCmd, cleanCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveCulture picks the UI culture: configured value first, then the
// system locale, then the default.
func resolveCulture(cfg *config.Config) string {
	available := locales.AvailableCultures()
	has := func(c string) bool {
		for _, a := range available {
			if strings.EqualFold(a, c) {
				return true
			}
		}
		return false
	}

	if cfg.Language != "" && has(cfg.Language) {
		return cfg.Language
	}
	if system := locales.DetectCulture(); system != "" && has(system) {
		logging.Infof("using system language: %s", system)
		return system
	}
	return locales.DefaultCulture
}

// printProbe applies the uniform probe error policy: a failed or empty
// lookup is logged and rendered as a localized message, never a crash.
func printProbe(value string, err error) {
	if err != nil {
		logging.WithComponent("probe").Errorf("%v", err)
		fmt.Println(translator.TData("probe.error", map[string]any{"Error": err.Error()}))
		return
	}
	if strings.TrimSpace(value) == "" {
		fmt.Println(translator.T("probe.nodata"))
		return
	}
	fmt.Println(value)
}

func runTUI(cmd *cobra.Command, args []string) {
	log := logging.WithComponent("main")
	log.Infof("winspect %s starting", Version)

	if err := tui.Run(translator, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Errorf("TUI error: %v", err)
		os.Exit(1)
	}
}

func runInfo(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	info := sysinfo.Collect(Version)

	if jsonOutput {
		data, err := info.ToJSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Print(info.Summary())
	fmt.Printf("\nWinspect\n")
	fmt.Printf("  Version:  %s\n", Version)
	fmt.Printf("  Log file: %s\n", logging.Default().LogPath())
	stats := report.Default().Stats()
	fmt.Printf("  Reports:  %v stored\n", stats["count"])
}

func runLocaleCheck(cmd *cobra.Command, args []string) {
	culture := strings.ToLower(args[0])
	dir, _ := cmd.Flags().GetString("dir")
	defCulture, _ := cmd.Flags().GetString("default")

	load := locales.LoadEmbedded
	if dir != "" {
		fsys := os.DirFS(dir)
		load = func(c string) (*locales.Table, error) {
			return locales.LoadTable(fsys, ".", c)
		}
	}

	def, err := load(defCulture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	alt, err := load(culture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cov := locales.Report(def, alt, logging.WithComponent("locale-check"))

	fmt.Printf("%s vs %s: %d/%d keys (%d%%)\n",
		cov.Culture, cov.DefaultCulture, cov.Translated, cov.DefaultCount, cov.Percent)
	for _, key := range cov.Missing {
		fmt.Printf("  missing  %s\n", key)
	}
	for _, key := range cov.Extra {
		fmt.Printf("  unknown  %s\n", key)
	}
	if !cov.Complete() {
		os.Exit(1)
	}
}

func runReportSave(cmd *cobra.Command, args []string) {
	info := sysinfo.Collect(Version)
	path, err := report.Default().Save(info)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved: %s\n", path)
}

func runReportList(cmd *cobra.Command, args []string) {
	snapshots, err := report.Default().List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(snapshots) == 0 {
		fmt.Println("No reports stored")
		return
	}
	for _, s := range snapshots {
		fmt.Printf("%s  %s  %d bytes\n", s.Collected.Format("2006-01-02 15:04:05"), s.Name, s.SizeBytes)
	}
}

func runLogs(cmd *cobra.Command, args []string) {
	clear, _ := cmd.Flags().GetBool("clear")
	logFile := logging.Default().LogPath()

	if clear {
		os.Remove(logFile)
		os.Remove(logFile + ".1")
		os.Remove(logFile + ".2")
		os.Remove(logFile + ".3")
		fmt.Println("Logs cleared")
		return
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("Log file not found: %s\n", logFile)
			return
		}
		fmt.Fprintf(os.Stderr, "Error reading log: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}

func runClean(cmd *cobra.Command, args []string) {
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	if !skipConfirm {
		fmt.Print("Remove winspect configuration, cache and reports? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			fmt.Println("Cancelled")
			return
		}
	}

	configDir, _ := config.Paths()
	for _, dir := range []string{configDir, logging.CacheDir(), report.Default().Dir()} {
		if err := os.RemoveAll(dir); err != nil {
			fmt.Printf("Warning: could not remove %s: %v\n", filepath.Base(dir), err)
		} else {
			fmt.Printf("Removed: %s\n", dir)
		}
	}

	fmt.Println("Winspect removed successfully")
}
