package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// parseDisplaySettings decodes a display_settings document. Attributes that
// are missing or malformed keep their defaults.
func parseDisplaySettings(r io.Reader) (models.DisplaySettings, error) {
	decoder := xml.NewDecoder(r)
	settings := models.DefaultDisplaySettings()

	closed := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return settings, errors.Wrap(err, errors.ErrParse.Code, "malformed display settings").WithOffset(decoder.InputOffset())
		}

		switch t := token.(type) {
		case xml.StartElement:
			attrs := attrMap(t)
			switch t.Name.Local {
			case "display_settings":
				if mode, ok := attrs["display_mode"]; ok {
					settings.DisplayMode = models.ParseDisplayMode(mode)
				}
				if font, ok := attrs["default_symbol_font"]; ok && font != "" {
					settings.DefaultSymbolFont = font
				}
				if show, ok := attrs["show_symbols"]; ok {
					settings.ShowSymbols = show == "true"
				}
			case "palette_settings":
				settings.PaletteSettings = readPaletteSettings(attrs, settings.PaletteSettings)
			case "grid":
				settings.Grid.MajorLinesInterval = attrUint16(attrs, "major_lines_interval", settings.Grid.MajorLinesInterval)
			case "minor_lines":
				settings.Grid.MinorLines = readGridLine(attrs, settings.Grid.MinorLines)
			case "major_lines":
				settings.Grid.MajorLines = readGridLine(attrs, settings.Grid.MajorLines)
			}
		case xml.EndElement:
			if t.Name.Local == "display_settings" {
				closed = true
			}
		}
	}
	if !closed {
		return settings, errors.ErrUnexpectedEOF.WithField("element", "display_settings")
	}
	return settings, nil
}

func readPaletteSettings(attrs map[string]string, fallback models.PaletteSettings) models.PaletteSettings {
	settings := fallback
	if columns, err := strconv.ParseUint(attrs["columns_number"], 10, 8); err == nil {
		settings.ColumnsNumber = uint8(columns)
	}
	if v, ok := attrs["color_only"]; ok {
		settings.ColorOnly = v == "true"
	}
	if v, ok := attrs["show_color_brands"]; ok {
		settings.ShowColorBrands = v == "true"
	}
	if v, ok := attrs["show_color_names"]; ok {
		settings.ShowColorNames = v == "true"
	}
	if v, ok := attrs["show_color_numbers"]; ok {
		settings.ShowColorNumbers = v == "true"
	}
	return settings
}

func readGridLine(attrs map[string]string, fallback models.GridLine) models.GridLine {
	line := fallback
	if color, ok := attrs["color"]; ok && color != "" {
		line.Color = color
	}
	if thickness, err := parseDecimal(attrs["thickness"]); err == nil {
		line.Thickness = thickness
	} else {
		logger.Warn("Keeping the default grid line thickness")
	}
	return line
}

// marshalDisplaySettings serializes display settings into the
// display_settings document.
func marshalDisplaySettings(settings *models.DisplaySettings, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if pretty {
		enc.Indent("", "  ")
	}
	w := &oxsWriter{enc: enc}

	w.open("display_settings",
		attr("display_mode", string(settings.DisplayMode)),
		attr("default_symbol_font", settings.DefaultSymbolFont),
		attr("show_symbols", boolText(settings.ShowSymbols)),
	)
	w.empty("palette_settings",
		attr("columns_number", uintText(settings.PaletteSettings.ColumnsNumber)),
		attr("color_only", boolText(settings.PaletteSettings.ColorOnly)),
		attr("show_color_brands", boolText(settings.PaletteSettings.ShowColorBrands)),
		attr("show_color_names", boolText(settings.PaletteSettings.ShowColorNames)),
		attr("show_color_numbers", boolText(settings.PaletteSettings.ShowColorNumbers)),
	)
	w.open("grid", attr("major_lines_interval", uintText(settings.Grid.MajorLinesInterval)))
	w.empty("minor_lines",
		attr("color", settings.Grid.MinorLines.Color),
		attr("thickness", floatText(settings.Grid.MinorLines.Thickness)),
	)
	w.empty("major_lines",
		attr("color", settings.Grid.MajorLines.Color),
		attr("thickness", floatText(settings.Grid.MajorLines.Thickness)),
	)
	w.close("grid")
	w.close("display_settings")

	if w.err != nil {
		return nil, errors.Wrap(w.err, errors.ErrIo.Code, "cannot serialize display settings")
	}
	if err := enc.Flush(); err != nil {
		return nil, errors.Wrap(err, errors.ErrIo.Code, "cannot serialize display settings")
	}
	return buf.Bytes(), nil
}
