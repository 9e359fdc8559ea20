// Package library ships the default decks and spreads and installs them into
// the user's library directories.
package library

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/arcanaland/termtarot/internal/config"
)

//go:embed defaults/decks/*.json defaults/spreads/*.json
var defaultsFS embed.FS

// Defaults lists the embedded file names for kind
func Defaults(kind config.Kind) ([]string, error) {
	entries, err := fs.ReadDir(defaultsFS, path.Join("defaults", string(kind)))
	if err != nil {
		return nil, fmt.Errorf("unknown library kind %s: %w", kind, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// WriteDefaults copies the embedded files for kind into dir, creating it if
// needed. Existing files are left alone unless overwrite is set. It returns
// the paths that were written.
func WriteDefaults(kind config.Kind, dir string, overwrite bool) ([]string, error) {
	names, err := Defaults(kind)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating library directory: %w", err)
	}

	var written []string
	for _, name := range names {
		target := filepath.Join(dir, name)
		if _, err := os.Stat(target); err == nil && !overwrite {
			continue
		}

		data, err := defaultsFS.ReadFile(path.Join("defaults", string(kind), name))
		if err != nil {
			return written, fmt.Errorf("error reading embedded %s: %w", name, err)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return written, fmt.Errorf("error writing %s: %w", target, err)
		}
		written = append(written, target)
	}

	return written, nil
}
