package parser

import (
	"encoding/binary"
	"os"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// xsdSignature is the magic the legacy Pattern Maker format opens with.
const xsdSignature uint16 = 0x0510

// ParseXSD imports a legacy Pattern Maker file. The format is proprietary
// and undocumented; the importer validates the signature and decodes no
// revision of the layout that follows it, so every file fails with a
// structured parse error. XSD files are read-only: they can never be written
// back.
func ParseXSD(path string) (*models.PatternProject, error) {
	logger.Info("Parsing the XSD pattern")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIo.Code, "cannot open pattern file").WithPath(path)
	}
	if len(data) < 2 {
		return nil, errors.New(errors.ErrParse.Code, "file is too short to be a Pattern Maker file").WithPath(path)
	}
	if binary.LittleEndian.Uint16(data) != xsdSignature {
		return nil, errors.New(errors.ErrParse.Code, "not a Pattern Maker file").WithPath(path).WithOffset(0)
	}

	// TODO: decode the post-signature layout once enough sample files of the
	// remaining revisions are collected to pin it down.
	return nil, errors.New(errors.ErrParse.Code, "unsupported Pattern Maker revision").WithPath(path).WithOffset(2)
}
