// Package parser implements the persistence codecs of the document core:
// the OXS XML interchange format (read and write), the EMBPROJ project
// bundle (read and write) and the legacy XSD format (read only).
package parser

import (
	"path/filepath"
	"strings"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// PatternFormat identifies a pattern file format.
type PatternFormat uint8

const (
	FormatEmbProj PatternFormat = iota
	FormatOxs
	FormatXsd
)

func (f PatternFormat) String() string {
	switch f {
	case FormatOxs:
		return "oxs"
	case FormatXsd:
		return "xsd"
	default:
		return "embproj"
	}
}

// DefaultFormat is the format new projects are saved in.
const DefaultFormat = FormatEmbProj

// FormatFromPath determines the pattern format from a file extension.
func FormatFromPath(path string) (PatternFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".oxs", ".xml":
		return FormatOxs, nil
	case ".embproj":
		return FormatEmbProj, nil
	case ".xsd":
		return FormatXsd, nil
	default:
		return 0, errors.ErrUnsupportedFormat.WithPath(path)
	}
}

// AppInfo identifies the writing software in saved files.
type AppInfo struct {
	Name    string
	Version string
}

// ParsePattern parses a pattern file, dispatching on its extension.
func ParsePattern(path string) (*models.PatternProject, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatOxs:
		return ParseOXS(path)
	case FormatXsd:
		return ParseXSD(path)
	default:
		return ParseEmbProj(path)
	}
}

// SavePattern serializes a project to its file path, dispatching on the
// extension. The XSD format is read-only.
func SavePattern(patproj *models.PatternProject, app AppInfo) error {
	format, err := FormatFromPath(patproj.FilePath)
	if err != nil {
		return err
	}
	switch format {
	case FormatOxs:
		return SaveOXS(patproj, app)
	case FormatXsd:
		return errors.ErrXsdWrite.WithPath(patproj.FilePath)
	default:
		return SaveEmbProj(patproj, app)
	}
}
