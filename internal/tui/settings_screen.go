package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"winspect/internal/config"
	"winspect/internal/locales"
	"winspect/internal/logging"
)

// SettingsModel handles settings editing.
type SettingsModel struct {
	cfg         *config.Config
	cursor      int
	editing     bool
	editCursor  int
	editOptions []string
}

// NewSettingsModel creates a settings model over a copy of cfg.
func NewSettingsModel(cfg *config.Config) *SettingsModel {
	working := *cfg
	return &SettingsModel{cfg: &working}
}

// Field indexes into the settings list; the separator sits before save/cancel.
const (
	settingLanguage = iota
	settingLogLevel
	settingJSONLogs
	settingStrict
	settingReports
	settingSeparator
	settingSave
	settingCancel
	settingCount
)

func (m Model) settingsFields() []string {
	return []string{
		m.tr.T("settings.language"),
		m.tr.T("settings.loglevel"),
		m.tr.T("settings.jsonlogs"),
		m.tr.T("settings.strict"),
		m.tr.T("settings.reports"),
		"-------------",
		m.tr.T("settings.save"),
		m.tr.T("settings.cancel"),
	}
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.settings.editing {
			return m.updateSettingsEdit(msg)
		}

		switch msg.String() {
		case "up", "k":
			if m.settings.cursor > 0 {
				m.settings.cursor--
				if m.settings.cursor == settingSeparator {
					m.settings.cursor--
				}
			}
		case "down", "j":
			if m.settings.cursor < settingCount-1 {
				m.settings.cursor++
				if m.settings.cursor == settingSeparator {
					m.settings.cursor++
				}
			}
		case "enter", " ":
			return m.selectSettingsItem()
		}
	}
	return m, nil
}

func (m Model) updateSettingsEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.settings.editCursor > 0 {
			m.settings.editCursor--
		}
	case "down", "j":
		if m.settings.editCursor < len(m.settings.editOptions)-1 {
			m.settings.editCursor++
		}
	case "enter", " ":
		m.applySettingsEdit()
		m.settings.editing = false
	case "esc":
		m.settings.editing = false
	}
	return m, nil
}

func (m Model) selectSettingsItem() (tea.Model, tea.Cmd) {
	s := m.settings
	switch s.cursor {
	case settingLanguage:
		s.editing = true
		s.editOptions = locales.AvailableCultures()
		s.editCursor = 0
	case settingLogLevel:
		s.editing = true
		s.editOptions = config.LogLevelOptions()
		s.editCursor = 0
	case settingJSONLogs, settingStrict, settingReports:
		s.editing = true
		s.editOptions = []string{"off", "on"}
		s.editCursor = 0
	case settingSave:
		if err := config.Save(s.cfg); err != nil {
			logging.WithComponent("tui").Errorf("save config: %v", err)
		}
		*m.cfg = *s.cfg
		if s.cfg.Language != "" {
			m.tr.SetCulture(s.cfg.Language)
		}
		logging.Default().SetLevel(logging.ParseLevel(s.cfg.LogLevel))
		m.screen = ScreenMain
	case settingCancel:
		working := *m.cfg
		s.cfg = &working
		m.screen = ScreenMain
	}
	return m, nil
}

func (m *Model) applySettingsEdit() {
	s := m.settings
	selected := s.editOptions[s.editCursor]

	switch s.cursor {
	case settingLanguage:
		s.cfg.Language = selected
	case settingLogLevel:
		s.cfg.LogLevel = selected
	case settingJSONLogs:
		s.cfg.JSONLogs = selected == "on"
	case settingStrict:
		s.cfg.StrictResources = selected == "on"
	case settingReports:
		s.cfg.ReportsEnabled = selected == "on"
	}
}

func (m Model) viewSettings() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.tr.T("settings.title")))
	b.WriteString("\n")

	cfg := m.settings.cfg
	language := cfg.Language
	if language == "" {
		language = locales.DefaultCulture
	}
	// Language shown by its localized display name when we have one.
	displayName := m.tr.T("settings.lang." + language)
	if strings.HasPrefix(displayName, "settings.lang.") {
		displayName = language
	}

	values := []string{
		displayName,
		cfg.LogLevel,
		onOff(cfg.JSONLogs),
		onOff(cfg.StrictResources),
		onOff(cfg.ReportsEnabled),
		"",
		"",
		"",
	}

	for i, field := range m.settingsFields() {
		cursor := "  "
		style := normalStyle

		if i == m.settings.cursor {
			cursor = "> "
			style = selectedStyle
		}

		if i == settingSeparator {
			b.WriteString(labelStyle.Render("  "+field) + "\n")
			continue
		}

		if i < settingSeparator {
			line := fmt.Sprintf("%s%-20s %s", cursor, field+":", values[i])
			b.WriteString(style.Render(line) + "\n")
		} else {
			b.WriteString(cursor + style.Render(field) + "\n")
		}
	}

	if m.settings.editing {
		b.WriteString("\n")
		b.WriteString(boxStyle.Render(m.viewEditPopup()))
	}

	b.WriteString(helpStyle.Render("\n" + m.tr.T("help.back")))

	return boxStyle.Render(b.String())
}

func (m Model) viewEditPopup() string {
	var b strings.Builder

	for i, opt := range m.settings.editOptions {
		cursor := "  "
		style := normalStyle
		if i == m.settings.editCursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor + style.Render(opt) + "\n")
	}

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
