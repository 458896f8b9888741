// Package tui provides the terminal user interface for winspect.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"winspect/internal/config"
	"winspect/internal/locales"
)

// Screen represents the different TUI screens.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenInfo
	ScreenLocale
	ScreenSettings
	ScreenLogs
)

// Colors
var (
	primaryColor   = lipgloss.Color("39")  // Cyan
	secondaryColor = lipgloss.Color("212") // Pink
	successColor   = lipgloss.Color("82")  // Green
	errorColor     = lipgloss.Color("196") // Red
	warningColor   = lipgloss.Color("214") // Orange
	mutedColor     = lipgloss.Color("245") // Gray
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

// Model represents the TUI state.
type Model struct {
	screen  Screen
	cursor  int
	width   int
	height  int
	version string

	tr  *locales.Translator
	cfg *config.Config

	info        *InfoModel
	localeModel *LocaleModel
	settings    *SettingsModel
	logsModel   *LogsModel

	quitting bool
}

// NewModel creates the TUI model.
func NewModel(tr *locales.Translator, cfg *config.Config, version string) Model {
	return Model{
		screen:  ScreenMain,
		tr:      tr,
		cfg:     cfg,
		version: version,
	}
}

// menuItems is rebuilt per render so language switches apply immediately.
func (m Model) menuItems() []string {
	return []string{
		m.tr.T("menu.info"),
		m.tr.T("menu.locale"),
		m.tr.T("menu.settings"),
		m.tr.T("menu.logs"),
		m.tr.T("menu.exit"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.screen == ScreenMain {
				m.quitting = true
				return m, tea.Quit
			}

		case "esc":
			if m.screen != ScreenMain {
				m.screen = ScreenMain
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.logsModel != nil {
			m.logsModel.Resize(msg.Width, msg.Height)
		}
		return m, nil
	}

	switch m.screen {
	case ScreenMain:
		return m.updateMain(msg)
	case ScreenInfo:
		return m.updateInfo(msg)
	case ScreenLocale:
		return m.updateLocale(msg)
	case ScreenSettings:
		return m.updateSettings(msg)
	case ScreenLogs:
		return m.updateLogs(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenMain:
		return m.viewMain()
	case ScreenInfo:
		return m.viewInfo()
	case ScreenLocale:
		return m.viewLocale()
	case ScreenSettings:
		return m.viewSettings()
	case ScreenLogs:
		return m.viewLogs()
	}

	return ""
}

// Run starts the TUI.
func Run(tr *locales.Translator, cfg *config.Config, version string) error {
	m := NewModel(tr, cfg, version)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
