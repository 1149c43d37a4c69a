package assets

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// RootEnv overrides the application root directory.
	RootEnv = "GUIDEGEN_ROOT"
	// PathEnv holds the asset search path, separated by the platform list
	// separator. Child processes inherit it.
	PathEnv = "GUIDEGEN_PATH"
)

// Root returns the application root directory.
func Root() string {
	if root := os.Getenv(RootEnv); root != "" {
		return root
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// EnsureSearchPath makes sure root is on the asset search path and writes the
// result back to the environment. Existing entries are preserved; root is
// appended, never a replacement.
func EnsureSearchPath(root string) []string {
	entries := splitList(os.Getenv(PathEnv))
	for _, e := range entries {
		if e == root {
			return entries
		}
	}
	entries = append(entries, root)
	os.Setenv(PathEnv, strings.Join(entries, string(os.PathListSeparator)))
	return entries
}

// SearchPath returns the current search path entries, falling back to the
// application root when the environment has none.
func SearchPath() []string {
	if entries := splitList(os.Getenv(PathEnv)); len(entries) > 0 {
		return entries
	}
	return []string{Root()}
}

// Resolve returns the first existing file named rel under the search path.
func Resolve(rel string) (string, bool) {
	for _, dir := range SearchPath() {
		p := filepath.Join(dir, rel)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// ResolveDir returns the first existing directory named rel under the search path.
func ResolveDir(rel string) (string, bool) {
	for _, dir := range SearchPath() {
		p := filepath.Join(dir, rel)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var entries []string
	for _, e := range strings.Split(raw, string(os.PathListSeparator)) {
		if e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}
