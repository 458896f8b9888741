package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"winspect/internal/config"
	"winspect/internal/locales"
	"winspect/internal/logging"
)

func TestMain(m *testing.M) {
	logging.Init(logging.Config{FilePath: "", Level: logging.LevelError})
	os.Exit(m.Run())
}

func testModel(t *testing.T) Model {
	t.Helper()
	tr := locales.NewTranslator("en", false)
	return NewModel(tr, config.Default(), "test")
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, s string) (Model, tea.Cmd) {
	var msg tea.Msg
	switch s {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = key(s)
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestMenuNavigation(t *testing.T) {
	m := testModel(t)

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d", m.cursor)
	}

	m, _ = press(m, "up")
	if m.cursor != 0 {
		t.Errorf("cursor should not move above the first item, got %d", m.cursor)
	}

	m, _ = press(m, "down")
	m, _ = press(m, "j")
	if m.cursor != 2 {
		t.Errorf("cursor = %d after two moves down, want 2", m.cursor)
	}

	m, _ = press(m, "k")
	if m.cursor != 1 {
		t.Errorf("cursor = %d after moving back up, want 1", m.cursor)
	}

	last := len(m.menuItems()) - 1
	for i := 0; i < 10; i++ {
		m, _ = press(m, "down")
	}
	if m.cursor != last {
		t.Errorf("cursor = %d, should stop at last item %d", m.cursor, last)
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(t)

	quit, cmd := press(m, "q")
	if cmd == nil || !quit.quitting {
		t.Error("q on the main screen should quit")
	}
	if quit.View() != "" {
		t.Error("view should be empty while quitting")
	}

	m.screen = ScreenInfo
	stay, _ := press(m, "q")
	if stay.quitting {
		t.Error("q should not quit away from the main screen")
	}

	quit, cmd = press(stay, "ctrl+c")
	if cmd == nil || !quit.quitting {
		t.Error("ctrl+c should quit from any screen")
	}
}

func TestEscReturnsToMain(t *testing.T) {
	m := testModel(t)
	m.screen = ScreenSettings

	m, _ = press(m, "esc")
	if m.screen != ScreenMain {
		t.Errorf("screen = %v after esc, want main", m.screen)
	}
}

func TestSelectOpensInfoScreen(t *testing.T) {
	m := testModel(t)

	m, cmd := press(m, "enter")
	if m.screen != ScreenInfo {
		t.Errorf("screen = %v, want info", m.screen)
	}
	if cmd == nil {
		t.Error("opening the info screen should start collection")
	}
	if m.info == nil || !m.info.loading {
		t.Error("info model should be loading")
	}
}

func TestSelectLastItemQuits(t *testing.T) {
	m := testModel(t)
	m.cursor = len(m.menuItems()) - 1

	m, cmd := press(m, "enter")
	if cmd == nil || !m.quitting {
		t.Error("selecting the exit item should quit")
	}
}

func TestViewMainLocalized(t *testing.T) {
	tr := locales.NewTranslator("de", false)
	m := NewModel(tr, config.Default(), "test")

	out := m.View()
	for _, want := range []string{"Beenden", "Einstellungen"} {
		if !strings.Contains(out, want) {
			t.Errorf("main view missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "> ") {
		t.Error("main view should mark the selected item")
	}
}

func TestWindowSizePropagates(t *testing.T) {
	m := testModel(t)
	m.logsModel = NewLogsModel(0, 0)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}
