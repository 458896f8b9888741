//go:build windows

package locales

import (
	"strings"
	"syscall"
	"unsafe"
)

var (
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGetUserDefaultLocaleName = kernel32.NewProc("GetUserDefaultLocaleName")
)

// DetectCulture returns the user's default culture tag ("en", "de", ...)
// using the Windows API directly, avoiding a console-flashing child
// process. Empty string when the call fails.
func DetectCulture() string {
	buf := make([]uint16, 85) // LOCALE_NAME_MAX_LENGTH = 85
	r, _, _ := procGetUserDefaultLocaleName.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if r == 0 {
		return ""
	}
	locale := strings.ToLower(syscall.UTF16ToString(buf))
	if len(locale) >= 2 {
		return locale[:2]
	}
	return locale
}
