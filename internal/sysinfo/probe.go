package sysinfo

import (
	"fmt"
	"os"
)

// Folder identifies a well-known user or system folder.
type Folder int

const (
	FolderDesktop Folder = iota
	FolderDocuments
	FolderAppData
	FolderLocalAppData
	FolderProgramFiles
	FolderTemp
	FolderUserProfile
	FolderWindows
	FolderSystem
)

var folderNames = map[Folder]string{
	FolderDesktop:      "desktop",
	FolderDocuments:    "documents",
	FolderAppData:      "appdata",
	FolderLocalAppData: "localappdata",
	FolderProgramFiles: "programfiles",
	FolderTemp:         "temp",
	FolderUserProfile:  "userprofile",
	FolderWindows:      "windows",
	FolderSystem:       "system",
}

func (f Folder) String() string {
	if name, ok := folderNames[f]; ok {
		return name
	}
	return fmt.Sprintf("folder(%d)", int(f))
}

// ParseFolder maps a folder name as accepted on the command line to a
// Folder identifier.
func ParseFolder(name string) (Folder, error) {
	for f, n := range folderNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("sysinfo: unknown folder %q", name)
}

// FolderNames lists the accepted folder names, for usage text.
func FolderNames() []string {
	return []string{
		"desktop", "documents", "appdata", "localappdata",
		"programfiles", "temp", "userprofile", "windows", "system",
	}
}

// EnvVar looks up an environment variable by name.
func EnvVar(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("sysinfo: environment variable %q is not set", name)
	}
	return v, nil
}
