// Package locales manages winspect's localized string resources.
//
// String tables live under Languages/strings.<culture>.toml and are served
// through a go-i18n bundle. The same files back the coverage tooling in
// table.go, which also understands JSON tables and WPF .xaml resource
// dictionaries.
package locales

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"winspect/internal/logging"
)

//go:embed Languages/*.toml
var languageFS embed.FS

// languagesDir is where the embedded string tables live.
const languagesDir = "Languages"

// DefaultCulture is the culture every other table is measured against.
const DefaultCulture = "en"

// Translator resolves string resources for one active culture, falling
// back to the default culture and finally to the key itself.
type Translator struct {
	bundle  *i18n.Bundle
	culture string
	strict  bool
	log     *logging.Logger
}

// NewTranslator builds a Translator for the given culture. When strict is
// set, a missing resource panics instead of degrading to the key; this is
// the development-time safety net.
func NewTranslator(culture string, strict bool) *Translator {
	tag, err := language.Parse(DefaultCulture)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	log := logging.WithComponent("locales")
	for _, c := range AvailableCultures() {
		name := languagesDir + "/strings." + c + ".toml"
		if _, err := bundle.LoadMessageFileFS(languageFS, name); err != nil {
			log.Errorf("failed to load %s: %v", name, err)
		}
	}

	if culture == "" {
		culture = DefaultCulture
	}
	return &Translator{
		bundle:  bundle,
		culture: strings.ToLower(culture),
		strict:  strict,
		log:     log,
	}
}

// Culture returns the active culture tag.
func (t *Translator) Culture() string {
	return t.culture
}

// SetCulture switches the active culture.
func (t *Translator) SetCulture(culture string) {
	t.culture = strings.ToLower(culture)
}

// T resolves the resource identified by key for the active culture.
func (t *Translator) T(key string) string {
	return t.TData(key, nil)
}

// TData resolves key with template data applied to the message.
func (t *Translator) TData(key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	localizer := i18n.NewLocalizer(t.bundle, t.culture, DefaultCulture)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		if t.strict {
			panic(fmt.Sprintf("locales: missing resource %q (culture=%s): %v", key, t.culture, err))
		}
		t.log.Warnf("missing resource %q (culture=%s): %v", key, t.culture, err)
		return key
	}
	return msg
}

// AvailableCultures lists the culture tags with an embedded string table.
func AvailableCultures() []string {
	return CulturesIn(languageFS, languagesDir)
}

// CulturesIn lists the culture tags present as strings.<culture>.<ext>
// files in dir inside fsys.
func CulturesIn(fsys fs.FS, dir string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return []string{DefaultCulture}
	}

	seen := make(map[string]bool)
	var cultures []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		culture, ok := cultureFromFileName(entry.Name())
		if !ok || seen[culture] {
			continue
		}
		seen[culture] = true
		cultures = append(cultures, culture)
	}
	sort.Strings(cultures)
	if len(cultures) == 0 {
		return []string{DefaultCulture}
	}
	return cultures
}

// cultureFromFileName extracts "de" from "strings.de.toml".
func cultureFromFileName(name string) (string, bool) {
	parts := strings.Split(name, ".")
	if len(parts) != 3 || !strings.EqualFold(parts[0], "strings") {
		return "", false
	}
	ext := "." + parts[2]
	for _, known := range tableExtensions {
		if strings.EqualFold(ext, known) {
			return strings.ToLower(parts[1]), true
		}
	}
	return "", false
}

// LoadEmbedded loads one of winspect's own string tables, for coverage
// checks against the shipped translations.
func LoadEmbedded(culture string) (*Table, error) {
	return LoadTable(languageFS, languagesDir, culture)
}

// Report compares the table for culture against the default culture's
// table and logs the key-set differences.
func Report(def, alt *Table, log *logging.Logger) Coverage {
	cov := Compare(def, alt)
	if log == nil {
		log = logging.WithComponent("locales")
	}
	log.Infof("culture %s: %d/%d keys translated (%d%%)",
		cov.Culture, cov.Translated, cov.DefaultCount, cov.Percent)
	for _, key := range cov.Missing {
		log.Warnf("culture %s: missing key %q", cov.Culture, key)
	}
	for _, key := range cov.Extra {
		log.Warnf("culture %s: unknown key %q (not in %s)", cov.Culture, key, cov.DefaultCulture)
	}
	return cov
}
