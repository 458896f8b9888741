package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.menuItems())-1 {
				m.cursor++
			}
		case "enter", " ":
			return m.selectMenuItem()
		}
	}
	return m, nil
}

func (m Model) selectMenuItem() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case 0: // System information
		m.screen = ScreenInfo
		if m.info == nil {
			m.info = NewInfoModel()
		}
		m.info.loading = true
		return m, collectCmd(m.version)

	case 1: // Translation coverage
		m.screen = ScreenLocale
		if m.localeModel == nil {
			m.localeModel = NewLocaleModel()
			m.localeModel.Load()
		}
		return m, nil

	case 2: // Settings
		m.screen = ScreenSettings
		if m.settings == nil {
			m.settings = NewSettingsModel(m.cfg)
		}
		return m, nil

	case 3: // Logs
		m.screen = ScreenLogs
		if m.logsModel == nil {
			m.logsModel = NewLogsModel(m.width, m.height)
		}
		m.logsModel.Load()
		return m, nil

	case 4: // Exit
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewMain() string {
	var b strings.Builder

	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor).
		Render(m.tr.T("app.title"))

	b.WriteString(banner)
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.tr.T("app.subtitle")))
	b.WriteString("\n\n")

	for i, item := range m.menuItems() {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + style.Render(item) + "\n")
	}

	b.WriteString(helpStyle.Render("\n" + m.tr.T("help.nav")))

	return boxStyle.Render(b.String())
}
