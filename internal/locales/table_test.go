package locales

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(culture string, keys ...string) *Table {
	entries := make(map[string]string, len(keys))
	for _, k := range keys {
		entries[k] = "value of " + k
	}
	return &Table{Culture: culture, Entries: entries}
}

func TestCompareCountsAndDiff(t *testing.T) {
	def := tableOf("en", "a", "b", "c", "d")
	alt := tableOf("de", "a", "b", "x")

	cov := Compare(def, alt)

	assert.Equal(t, 4, cov.DefaultCount)
	assert.Equal(t, 3, cov.Count)
	assert.Equal(t, 2, cov.Translated)
	assert.Equal(t, 50, cov.Percent)
	assert.Equal(t, []string{"c", "d"}, cov.Missing)
	assert.Equal(t, []string{"x"}, cov.Extra)
	assert.False(t, cov.Complete())
}

func TestComparePercentTruncates(t *testing.T) {
	// 199 of 200 keys must report 99%, not 100%.
	def := &Table{Culture: "en", Entries: map[string]string{}}
	alt := &Table{Culture: "cs", Entries: map[string]string{}}
	for i := 0; i < 200; i++ {
		key := fmt.Sprintf("key%03d", i)
		def.Entries[key] = "v"
		if i != 0 {
			alt.Entries[key] = "v"
		}
	}

	cov := Compare(def, alt)
	assert.Equal(t, 199, cov.Translated)
	assert.Equal(t, 99, cov.Percent)
}

func TestCompareEmptyDefault(t *testing.T) {
	cov := Compare(tableOf("en"), tableOf("de", "extra"))
	assert.Equal(t, 100, cov.Percent)
	assert.True(t, cov.Complete())
	assert.Equal(t, []string{"extra"}, cov.Extra)
}

func TestCompareIdenticalTables(t *testing.T) {
	def := tableOf("en", "a", "b")
	alt := tableOf("fr", "a", "b")

	cov := Compare(def, alt)
	assert.Equal(t, 100, cov.Percent)
	assert.Empty(t, cov.Missing)
	assert.Empty(t, cov.Extra)
	assert.True(t, cov.Complete())
}

func TestParseTableTOML(t *testing.T) {
	entries, err := ParseTable("strings.en.toml", []byte(`
"app.title" = "WINSPECT"
"menu.exit" = "Exit"
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"app.title": "WINSPECT",
		"menu.exit": "Exit",
	}, entries)
}

func TestParseTableJSON(t *testing.T) {
	entries, err := ParseTable("strings.de.json", []byte(`{"menu.exit": "Beenden"}`))
	require.NoError(t, err)
	assert.Equal(t, "Beenden", entries["menu.exit"])
}

func TestParseTableXAML(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<ResourceDictionary
    xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation"
    xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml"
    xmlns:system="clr-namespace:System;assembly=mscorlib">
    <system:String x:Key="MainWindowTitle">System Overview</system:String>
    <system:String x:Key="ButtonClose">Close</system:String>
</ResourceDictionary>`)

	entries, err := ParseTable("strings.en.xaml", data)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"MainWindowTitle": "System Overview",
		"ButtonClose":     "Close",
	}, entries)
}

func TestParseTableUnknownFormat(t *testing.T) {
	_, err := ParseTable("strings.en.yaml", []byte("a: b"))
	assert.Error(t, err)
}

func TestLoadTable(t *testing.T) {
	fsys := fstest.MapFS{
		"Languages/strings.en.toml": {Data: []byte(`"a" = "A"`)},
		"Languages/strings.fr.xaml": {Data: []byte(
			`<ResourceDictionary xmlns:x="x"><s x:Key="a">Ah</s></ResourceDictionary>`)},
		"Languages/Strings.cs.xaml": {Data: []byte(
			`<ResourceDictionary xmlns:x="x"><s x:Key="a">Aha</s></ResourceDictionary>`)},
	}

	en, err := LoadTable(fsys, "Languages", "en")
	require.NoError(t, err)
	assert.Equal(t, 1, en.Len())
	assert.Equal(t, "en", en.Culture)

	fr, err := LoadTable(fsys, "Languages", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Ah", fr.Entries["a"])

	// WPF projects capitalize the file name.
	cs, err := LoadTable(fsys, "Languages", "cs")
	require.NoError(t, err)
	assert.Equal(t, "Aha", cs.Entries["a"])

	_, err = LoadTable(fsys, "Languages", "zz")
	assert.Error(t, err)
}

func TestCulturesIn(t *testing.T) {
	fsys := fstest.MapFS{
		"tables/strings.en.toml": {Data: []byte(``)},
		"tables/strings.de.toml": {Data: []byte(``)},
		"tables/strings.de.xaml": {Data: []byte(``)},
		"tables/readme.md":       {Data: []byte(``)},
		"tables/other.en.toml":   {Data: []byte(``)},
	}

	assert.Equal(t, []string{"de", "en"}, CulturesIn(fsys, "tables"))
}
