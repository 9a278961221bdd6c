package archetypes

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed data/*.yaml
var dataFS embed.FS

// dataDir, when set, is checked before the embedded defaults so designers
// can iterate on archetype files without rebuilding.
var dataDir string

// SetDataDir points Load at an on-disk override directory. Empty restores
// embedded-only loading.
func SetDataDir(dir string) {
	dataDir = dir
}

// Load reads a named archetype file, preferring the disk override.
func Load(name string) ([]byte, error) {
	clean := cleanName(name)
	if clean == "" {
		return nil, fmt.Errorf("archetypes: invalid file name %q", name)
	}
	if dataDir != "" {
		if data, err := os.ReadFile(filepath.Join(dataDir, clean)); err == nil {
			return data, nil
		}
	}
	return dataFS.ReadFile(path.Join("data", clean))
}

func cleanName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	return base
}
