//go:build !windows

package locales

import (
	"os"
	"strings"
)

// DetectCulture returns the culture tag from the LANG/LC_ALL environment,
// e.g. "de" from "de_DE.UTF-8". Empty string when undetermined.
func DetectCulture() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexAny(v, "_.@"); i > 0 {
			v = v[:i]
		}
		return strings.ToLower(v)
	}
	return ""
}
