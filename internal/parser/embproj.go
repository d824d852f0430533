package parser

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// Names of the files inside an EMBPROJ bundle.
const (
	embprojPatternEntry  = "pattern.oxs"
	embprojSettingsEntry = "display_settings.xml"
)

// zstdMethod is the zip compression method id for Zstandard.
const zstdMethod uint16 = 93

type failingReadCloser struct{ err error }

func (r failingReadCloser) Read([]byte) (int, error) { return 0, r.err }
func (r failingReadCloser) Close() error             { return nil }

func registerZstd(zr *zip.Reader) {
	zr.RegisterDecompressor(zstdMethod, func(r io.Reader) io.ReadCloser {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return failingReadCloser{err: err}
		}
		return dec.IOReadCloser()
	})
}

// ParseEmbProj parses an EMBPROJ project bundle: a zip archive holding the
// OXS pattern and the display settings document. Extra entries are ignored.
func ParseEmbProj(path string) (*models.PatternProject, error) {
	logger.Info("Parsing the EMBPROJ pattern file")

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrArchive.Code, "cannot open project bundle").WithPath(path)
	}
	defer zr.Close()
	registerZstd(&zr.Reader)

	var pattern *models.Pattern
	settings := models.DefaultDisplaySettings()
	settingsSeen := false

	for _, entry := range zr.File {
		switch entry.Name {
		case embprojPatternEntry:
			data, err := readZipEntry(entry)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrArchive.Code, "cannot read the bundled pattern").WithPath(path)
			}
			pattern, err = parseOXSPattern(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
		case embprojSettingsEntry:
			data, err := readZipEntry(entry)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrArchive.Code, "cannot read the bundled display settings").WithPath(path)
			}
			settings, err = parseDisplaySettings(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
			settingsSeen = true
		}
	}

	if pattern == nil {
		return nil, errors.Newf(errors.ErrParse.Code, "the bundle has no %s entry", embprojPatternEntry).WithPath(path)
	}
	if !settingsSeen {
		logger.Warn("The bundle has no display settings; using defaults")
	}

	return &models.PatternProject{
		FilePath:        path,
		Pattern:         *pattern,
		DisplaySettings: settings,
	}, nil
}

func readZipEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// SaveEmbProj serializes a project to its file path as an EMBPROJ bundle.
// The bundle holds exactly the pattern and display settings entries, both
// zstd-compressed.
func SaveEmbProj(patproj *models.PatternProject, app AppInfo) error {
	logger.Info("Saving the EMBPROJ pattern file")

	patternData, err := marshalOXSPattern(&patproj.Pattern, app, WriteOptions{IncludeParts: true})
	if err != nil {
		return err
	}
	settingsData, err := marshalDisplaySettings(&patproj.DisplaySettings, false)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(patproj.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, errors.ErrIo.Code, "cannot create project bundle").WithPath(patproj.FilePath)
	}

	err = writeEmbProjEntries(file, patternData, settingsData)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrArchive.Code, "cannot write project bundle").WithPath(patproj.FilePath)
	}
	return nil
}

func writeEmbProjEntries(w io.Writer, patternData, settingsData []byte) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zstdMethod, func(out io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(out)
	})

	for _, entry := range []struct {
		name string
		data []byte
	}{
		{embprojPatternEntry, patternData},
		{embprojSettingsEntry, settingsData},
	} {
		ew, err := zw.CreateHeader(&zip.FileHeader{Name: entry.name, Method: zstdMethod})
		if err != nil {
			return err
		}
		if _, err := ew.Write(entry.data); err != nil {
			return err
		}
	}
	return zw.Close()
}
