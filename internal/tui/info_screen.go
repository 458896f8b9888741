package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"winspect/internal/sysinfo"
)

// InfoModel holds the collected snapshot for display.
type InfoModel struct {
	info    *sysinfo.SystemInfo
	loading bool
}

// NewInfoModel creates an empty info model.
func NewInfoModel() *InfoModel {
	return &InfoModel{loading: true}
}

// sysInfoLoadedMsg is sent when collection finishes.
type sysInfoLoadedMsg struct {
	info *sysinfo.SystemInfo
}

// collectCmd collects the snapshot off the UI loop.
func collectCmd(version string) tea.Cmd {
	return func() tea.Msg {
		return sysInfoLoadedMsg{info: sysinfo.Collect(version)}
	}
}

func (m Model) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.info.loading = true
			return m, collectCmd(m.version)
		}
	case sysInfoLoadedMsg:
		m.info.info = msg.info
		m.info.loading = false
	}
	return m, nil
}

// value renders a probe result, substituting the localized "no data"
// placeholder for anything the probes could not answer.
func (m Model) value(s string) string {
	if strings.TrimSpace(s) == "" {
		return labelStyle.Render(m.tr.T("probe.nodata"))
	}
	return normalStyle.Render(s)
}

func (m Model) viewInfo() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.tr.T("info.title")))
	b.WriteString("\n")

	if m.info == nil || m.info.loading || m.info.info == nil {
		b.WriteString(m.tr.T("info.loading"))
		return boxStyle.Render(b.String())
	}

	info := m.info.info
	row := func(labelKey, value string) {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(m.tr.T(labelKey)), m.value(value))
	}

	b.WriteString(sectionStyle.Render(m.tr.T("section.os")))
	b.WriteString("\n")
	row("label.caption", info.OS.Caption)
	row("label.version", info.OS.Version)
	row("label.build", info.OS.Build)
	row("label.architecture", info.OS.Architecture)
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(m.tr.T("section.system")))
	b.WriteString("\n")
	row("label.manufacturer", info.System.Manufacturer)
	row("label.model", info.System.Model)
	row("label.hostname", info.System.Hostname)
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(m.tr.T("section.processor")))
	b.WriteString("\n")
	row("label.caption", info.Processor.Name)
	if info.Processor.Cores > 0 {
		row("label.cores", fmt.Sprintf("%d (%d)", info.Processor.Cores, info.Processor.Threads))
	} else {
		row("label.cores", "")
	}
	if info.Processor.MaxClockMHz > 0 {
		row("label.clock", fmt.Sprintf("%d MHz", info.Processor.MaxClockMHz))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(m.tr.T("section.memory")))
	b.WriteString("\n")
	row("label.total", sysinfo.FormatMiB(info.Memory.TotalMiB))
	row("label.available", sysinfo.FormatMiB(info.Memory.AvailableMiB))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render(m.tr.T("section.host")))
	b.WriteString("\n")
	row("label.uptime", sysinfo.FormatUptime(info.Host.UptimeSeconds))
	row("label.version", info.Host.KernelVersion)

	b.WriteString(helpStyle.Render("\n" + m.tr.T("help.back")))

	return boxStyle.Render(b.String())
}
