package locales

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Table is a per-culture table of string resources.
type Table struct {
	Culture string
	Entries map[string]string
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.Entries)
}

// tableExtensions lists the formats a string table may be stored in, in
// lookup order. The .xaml form is a WPF resource dictionary.
var tableExtensions = []string{".toml", ".json", ".xaml"}

// LoadTable loads the string table for the given culture tag from dir
// inside fsys. It looks for strings.<culture>.toml, .json and .xaml in
// that order, accepting the capitalized Strings. prefix WPF projects use.
func LoadTable(fsys fs.FS, dir, culture string) (*Table, error) {
	var lastErr error
	for _, ext := range tableExtensions {
		for _, prefix := range []string{"strings.", "Strings."} {
			name := path.Join(dir, prefix+culture+ext)
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				lastErr = err
				continue
			}
			entries, err := ParseTable(name, data)
			if err != nil {
				return nil, fmt.Errorf("locales: parse %s: %w", name, err)
			}
			return &Table{Culture: culture, Entries: entries}, nil
		}
	}
	return nil, fmt.Errorf("locales: no string table for culture %q: %w", culture, lastErr)
}

// ParseTable parses raw string-table data, dispatching on the file
// extension of name.
func ParseTable(name string, data []byte) (map[string]string, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return parseTOMLTable(data)
	case ".json":
		return parseJSONTable(data)
	case ".xaml":
		return parseXAMLTable(data)
	default:
		return nil, fmt.Errorf("unsupported table format %q", path.Ext(name))
	}
}

func parseTOMLTable(data []byte) (map[string]string, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	entries := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			entries[k] = s
		}
	}
	return entries, nil
}

func parseJSONTable(data []byte) (map[string]string, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseXAMLTable reads a WPF ResourceDictionary: every element carrying an
// x:Key attribute contributes one entry, keyed by that attribute, with the
// element text as value.
func parseXAMLTable(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		key := ""
		for _, attr := range se.Attr {
			if attr.Name.Local == "Key" {
				key = attr.Value
				break
			}
		}
		if key == "" {
			continue
		}
		var value string
		if err := dec.DecodeElement(&value, &se); err != nil {
			return nil, err
		}
		entries[key] = value
	}
	return entries, nil
}

// Coverage describes how complete an alternate culture's table is
// relative to the default culture's table.
type Coverage struct {
	DefaultCulture string
	Culture        string
	DefaultCount   int
	Count          int
	Translated     int
	Percent        int      // whole percent, truncated
	Missing        []string // keys only in the default table
	Extra          []string // keys only in the alternate table
}

// Compare computes the completeness of alt relative to def. The percent is
// truncated, never rounded: 199 of 200 keys is 99%, not 100%. An empty
// default table counts as fully covered.
func Compare(def, alt *Table) Coverage {
	cov := Coverage{
		DefaultCulture: def.Culture,
		Culture:        alt.Culture,
		DefaultCount:   len(def.Entries),
		Count:          len(alt.Entries),
	}

	for k := range def.Entries {
		if _, ok := alt.Entries[k]; ok {
			cov.Translated++
		} else {
			cov.Missing = append(cov.Missing, k)
		}
	}
	for k := range alt.Entries {
		if _, ok := def.Entries[k]; !ok {
			cov.Extra = append(cov.Extra, k)
		}
	}
	sort.Strings(cov.Missing)
	sort.Strings(cov.Extra)

	if cov.DefaultCount == 0 {
		cov.Percent = 100
	} else {
		cov.Percent = cov.Translated * 100 / cov.DefaultCount
	}
	return cov
}

// Complete reports whether the alternate table covers every default key.
func (c Coverage) Complete() bool {
	return len(c.Missing) == 0
}
