package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"winspect/internal/logging"
)

// LogsModel shows the tail of the winspect log file.
type LogsModel struct {
	vp    viewport.Model
	empty bool
}

// NewLogsModel creates a logs model sized to the current window.
func NewLogsModel(width, height int) *LogsModel {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	vp := viewport.New(width-6, height-8)
	return &LogsModel{vp: vp}
}

// Resize adjusts the viewport to a new window size.
func (lm *LogsModel) Resize(width, height int) {
	lm.vp.Width = width - 6
	lm.vp.Height = height - 8
}

// Load reads the log file into the viewport, scrolled to the end.
func (lm *LogsModel) Load() {
	data, err := os.ReadFile(logging.Default().LogPath())
	content := strings.TrimRight(string(data), "\n")
	lm.empty = err != nil || content == ""
	if lm.empty {
		lm.vp.SetContent("")
		return
	}
	lm.vp.SetContent(content)
	lm.vp.GotoBottom()
}

func (m Model) updateLogs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			m.logsModel.Load()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.logsModel.vp, cmd = m.logsModel.vp.Update(msg)
	return m, cmd
}

func (m Model) viewLogs() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.tr.T("logs.title")))
	b.WriteString("\n")

	if m.logsModel.empty {
		b.WriteString(labelStyle.Render(m.tr.T("logs.empty")))
	} else {
		b.WriteString(m.logsModel.vp.View())
	}

	b.WriteString(helpStyle.Render("\n" + m.tr.T("help.back")))

	return boxStyle.Render(b.String())
}
