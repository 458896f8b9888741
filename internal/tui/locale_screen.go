package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"winspect/internal/locales"
	"winspect/internal/logging"
)

// LocaleModel holds coverage results for the shipped translations.
type LocaleModel struct {
	coverages []locales.Coverage
	cursor    int
	loadErr   error
}

// NewLocaleModel creates an empty locale model.
func NewLocaleModel() *LocaleModel {
	return &LocaleModel{}
}

// Load compares every shipped culture against the default one.
func (lm *LocaleModel) Load() {
	lm.coverages = nil
	lm.cursor = 0

	def, err := locales.LoadEmbedded(locales.DefaultCulture)
	if err != nil {
		lm.loadErr = err
		return
	}

	log := logging.WithComponent("locales")
	for _, culture := range locales.AvailableCultures() {
		if culture == locales.DefaultCulture {
			continue
		}
		alt, err := locales.LoadEmbedded(culture)
		if err != nil {
			log.Errorf("load table for %s: %v", culture, err)
			continue
		}
		lm.coverages = append(lm.coverages, locales.Report(def, alt, log))
	}
}

func (m Model) updateLocale(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.localeModel.cursor > 0 {
				m.localeModel.cursor--
			}
		case "down", "j":
			if m.localeModel.cursor < len(m.localeModel.coverages)-1 {
				m.localeModel.cursor++
			}
		case "r":
			m.localeModel.Load()
		}
	}
	return m, nil
}

func (m Model) viewLocale() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.tr.T("locale.title")))
	b.WriteString("\n")

	lm := m.localeModel
	if lm.loadErr != nil {
		b.WriteString(errorStyle.Render(lm.loadErr.Error()))
		return boxStyle.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		labelStyle.Render(m.tr.T("locale.default")+":"),
		normalStyle.Render(locales.DefaultCulture)))

	for i, cov := range lm.coverages {
		cursor := "  "
		style := normalStyle
		if i == lm.cursor {
			cursor = "> "
			style = selectedStyle
		}
		line := m.tr.TData("locale.coverage", map[string]any{
			"Translated": cov.Translated,
			"Total":      cov.DefaultCount,
			"Percent":    cov.Percent,
		})
		marker := successStyle.Render(m.tr.T("locale.complete"))
		if !cov.Complete() {
			marker = warningStyle.Render(fmt.Sprintf("%d%%", cov.Percent))
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", cursor, style.Render(cov.Culture), line, marker))
	}

	// Key diff for the selected culture.
	if len(lm.coverages) > 0 {
		cov := lm.coverages[lm.cursor]
		if len(cov.Missing) > 0 {
			b.WriteString("\n" + sectionStyle.Render(m.tr.T("locale.missing")) + "\n")
			for _, key := range cov.Missing {
				b.WriteString("  " + errorStyle.Render("-") + " " + key + "\n")
			}
		}
		if len(cov.Extra) > 0 {
			b.WriteString("\n" + sectionStyle.Render(m.tr.T("locale.extra")) + "\n")
			for _, key := range cov.Extra {
				b.WriteString("  " + warningStyle.Render("+") + " " + key + "\n")
			}
		}
	}

	b.WriteString(helpStyle.Render("\n" + m.tr.T("help.back")))

	return boxStyle.Render(b.String())
}
