// Package appdir resolves the per-user application data directory.
package appdir

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Operating system identifiers as reported by runtime.GOOS.
const (
	OSWindows = "windows"
	OSMac     = "darwin"
	OSLinux   = "linux"
)

var ErrEmptyAppName = errors.New("appdir: empty application name")

// Resolver builds data directory paths for one platform. The zero value is
// not usable, start from Default or fill every field.
type Resolver struct {
	GOOS   string
	Home   func() (string, error)
	Getenv func(string) string
}

// Default resolves paths for the running platform.
var Default = Resolver{
	GOOS:   runtime.GOOS,
	Home:   homedir.Dir,
	Getenv: os.Getenv,
}

// Path returns the data directory of appName for the running platform.
func Path(appName string) (string, error) {
	return Default.Path(appName)
}

// PathFor returns the data directory of appName as it would be on goos, using
// the current user's home directory and environment.
func PathFor(goos, appName string) (string, error) {
	r := Default
	r.GOOS = goos
	return r.Path(appName)
}

// Path returns the data directory of appName:
//
//	windows: ~/AppData/Local/<app>
//	darwin:  ~/Library/Application Support/<app>
//	other:   $XDG_DATA_HOME/<app>, or ~/.local/share/<app> when unset
//
// The directory is not created.
func (r Resolver) Path(appName string) (string, error) {
	if strings.TrimSpace(appName) == "" {
		return "", ErrEmptyAppName
	}
	home, err := r.Home()
	if err != nil {
		return "", err
	}
	switch r.GOOS {
	case OSWindows:
		return filepath.Join(home, "AppData", "Local", appName), nil
	case OSMac:
		return filepath.Join(home, "Library", "Application Support", appName), nil
	}
	if xdg := r.Getenv("XDG_DATA_HOME"); xdg != "" {
		if strings.HasPrefix(xdg, "~") {
			xdg = filepath.Join(home, strings.TrimPrefix(xdg, "~"))
		}
		return filepath.Join(xdg, appName), nil
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// File returns the path of name inside the data directory of appName.
func File(appName, name string) (string, error) {
	dir, err := Path(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Expand replaces a leading ~ in path with the home directory.
func Expand(path string) (string, error) {
	return homedir.Expand(path)
}
