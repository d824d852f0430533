// Package fonts enumerates the font files available to symbol rendering.
// Families are derived from file names; the GUI shell owns the real
// rasterization.
package fonts

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
)

var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
}

// Families lists the distinct font family names found in the given
// directories, sorted. Directories that do not exist are skipped.
func Families(dirs []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if name, ok := familyName(entry.Name()); ok {
				seen[name] = true
			}
		}
	}

	families := make([]string, 0, len(seen))
	for name := range seen {
		families = append(families, name)
	}
	sort.Strings(families)
	return families, nil
}

// Load reads the font file of a family by name.
func Load(dirs []string, family string) ([]byte, error) {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if name, ok := familyName(entry.Name()); ok && strings.EqualFold(name, family) {
				data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
				if err != nil {
					return nil, errors.Wrap(err, errors.ErrIo.Code, "cannot read the font file").WithPath(entry.Name())
				}
				return data, nil
			}
		}
	}
	return nil, errors.ErrFontNotFound.WithField("family", family)
}

// familyName derives a family name from a font file name.
func familyName(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !fontExtensions[ext] {
		return "", false
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)), true
}
