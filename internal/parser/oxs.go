package parser

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// OxsVersion is the declared version of an OXS document.
type OxsVersion string

// KnownOxsVersion reports whether the parser was written against the
// declared version.
func KnownOxsVersion(v OxsVersion) bool {
	return v == "1.0" || v == "1.1"
}

// Software identifies the program that wrote an OXS document.
type Software uint8

const (
	SoftwareEmbroideryStudio Software = iota
	SoftwareUrsa
	SoftwareUnknown
)

// SoftwareFromString maps the software attribute to a Software.
func SoftwareFromString(s string) Software {
	switch s {
	case "Embroidery Studio", "Open Stitch Studio":
		return SoftwareEmbroideryStudio
	case "Ursa Software", "MiniStitch by Ursa Software":
		return SoftwareUrsa
	default:
		return SoftwareUnknown
	}
}

// ParseOXS parses an OXS pattern file into a project with default display
// settings.
func ParseOXS(path string) (*models.PatternProject, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIo.Code, "cannot open pattern file").WithPath(path)
	}
	defer file.Close()

	pattern, err := parseOXSPattern(file)
	if err != nil {
		return nil, err
	}
	return &models.PatternProject{
		FilePath:        path,
		Pattern:         *pattern,
		DisplaySettings: models.DefaultDisplaySettings(),
	}, nil
}

// parseOXSPattern decodes the <chart> document. Malformed rows are skipped
// with a warning; rows referencing palette entries that do not exist are
// dropped silently.
func parseOXSPattern(r io.Reader) (*models.Pattern, error) {
	logger.Info("Parsing the OXS pattern")

	decoder := xml.NewDecoder(r)
	pattern := models.NewPattern(models.DefaultFabric())

	chartSeen := false
	chartClosed := false
	var model *models.SpecialStitchModel

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrParse.Code, "malformed OXS document").WithOffset(decoder.InputOffset())
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "chart":
				chartSeen = true
			case "properties":
				readOXSProperties(pattern, attrMap(t))
			case "palette_item":
				readOXSPaletteItem(pattern, attrMap(t))
			case "stitch":
				readOXSFullStitch(pattern, attrMap(t))
			case "partstitch":
				readOXSPartStitch(pattern, attrMap(t))
			case "backstitch":
				readOXSBackStitch(pattern, model, attrMap(t))
			case "object":
				readOXSOrnament(pattern, model, attrMap(t))
			case "model":
				model = readOXSModelHeader(attrMap(t))
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "chart":
				chartClosed = true
			case "model":
				if model != nil {
					pattern.SpecialStitchModels = append(pattern.SpecialStitchModels, *model)
					model = nil
				}
			}
		}
	}

	if !chartSeen {
		return nil, errors.New(errors.ErrParse.Code, "the chart tag is not found")
	}
	if !chartClosed {
		return nil, errors.ErrUnexpectedEOF.WithField("element", "chart")
	}
	return pattern, nil
}

func readOXSProperties(pattern *models.Pattern, attrs map[string]string) {
	if version, ok := attrs["oxsversion"]; ok && !KnownOxsVersion(OxsVersion(version)) {
		logger.Warn("Unknown OXS version: ", version)
	}
	if software, ok := attrs["software"]; ok && SoftwareFromString(software) == SoftwareUnknown {
		logger.Warn("Unknown OXS software: ", software)
	}

	pattern.Fabric.Width = attrUint16(attrs, "chartwidth", models.DefaultFabricWidth)
	pattern.Fabric.Height = attrUint16(attrs, "chartheight", models.DefaultFabricHeight)
	spi := attrUint16(attrs, "stitchesperinch", models.DefaultFabricSPI)
	pattern.Fabric.SPI = [2]uint16{spi, attrUint16(attrs, "stitchesperinch_y", spi)}

	pattern.Info = models.PatternInfo{
		Title:       attrs["charttitle"],
		Author:      attrs["author"],
		Copyright:   attrs["copyright"],
		Description: attrs["instructions"],
	}
}

// readOXSPaletteItem handles one palette_item row. The item at index 0
// describes the fabric; the rest are color entries whose number attribute
// carries "<brand> <number>".
func readOXSPaletteItem(pattern *models.Pattern, attrs map[string]string) {
	if attrs["index"] == "0" {
		if name, ok := attrs["name"]; ok {
			pattern.Fabric.Name = name
		}
		if color, ok := attrs["color"]; ok {
			pattern.Fabric.Color = color
		}
		if kind, ok := attrs["kind"]; ok {
			pattern.Fabric.Kind = kind
		}
		return
	}

	brand, number := splitBrandNumber(attrs["number"])
	item := models.PaletteItem{
		Brand:  brand,
		Number: number,
		Name:   attrs["name"],
		Color:  attrs["color"],
	}
	if symbol, ok := attrs["symbol"]; ok && symbol != "" {
		if code, err := strconv.ParseUint(symbol, 10, 16); err == nil {
			item.Symbol = &models.Symbol{Code: uint16(code)}
		} else {
			item.Symbol = &models.Symbol{Char: symbol}
		}
	}
	if font, ok := attrs["fontname"]; ok && font != "" {
		item.SymbolFont = font
	}
	pattern.Palette = append(pattern.Palette, item)
}

// splitBrandNumber splits a combined "<brand> <number>" attribute on the
// last space. Values without a space have no brand.
func splitBrandNumber(combined string) (string, string) {
	idx := strings.LastIndex(combined, " ")
	if idx < 0 {
		return "", combined
	}
	return strings.TrimRight(combined[:idx], " "), combined[idx+1:]
}

func readOXSFullStitch(pattern *models.Pattern, attrs map[string]string) {
	x, okX := attrCoord(attrs, "x")
	y, okY := attrCoord(attrs, "y")
	if !okX || !okY {
		logger.Warn("Skipping a full stitch with malformed coordinates")
		return
	}
	palindex, ok := attrPalindex(attrs, "palindex", len(pattern.Palette))
	if !ok {
		return
	}
	pattern.FullStitches.Insert(models.FullStitch{X: x, Y: y, Palindex: palindex, Kind: models.FullStitchKindFull})
}

// readOXSPartStitch decodes one partstitch row. The direction attribute
// encodes the shape: 1 and 2 are three-quarter combinations (a half plus
// quarters, colored by palindex1/palindex2), 3 is a lone forward half and 4
// a lone backward half.
func readOXSPartStitch(pattern *models.Pattern, attrs map[string]string) {
	x, okX := attrCoord(attrs, "x")
	y, okY := attrCoord(attrs, "y")
	direction, err := strconv.Atoi(attrs["direction"])
	if !okX || !okY || err != nil {
		logger.Warn("Skipping a part stitch with malformed attributes")
		return
	}

	palindex1, ok1 := attrPalindex(attrs, "palindex1", len(pattern.Palette))
	palindex2, ok2 := attrPalindex(attrs, "palindex2", len(pattern.Palette))

	insertHalf := func(palindex uint32, dir models.PartStitchDirection) {
		pattern.PartStitches.Insert(models.PartStitch{
			X: x, Y: y, Palindex: palindex, Direction: dir, Kind: models.PartStitchKindHalf,
		})
	}
	insertQuarter := func(qx, qy models.Coord, palindex uint32, dir models.PartStitchDirection) {
		pattern.PartStitches.Insert(models.PartStitch{
			X: qx, Y: qy, Palindex: palindex, Direction: dir, Kind: models.PartStitchKindQuarter,
		})
	}

	switch direction {
	case 1:
		// A backward half with forward quarters: palindex1 colors the
		// bottom-left quadrant, palindex2 the top-right one. The half takes
		// its color from palindex1 when present.
		if ok1 {
			insertHalf(palindex1, models.PartStitchDirectionBackward)
			insertQuarter(x, y.Half(), palindex1, models.PartStitchDirectionForward)
		} else if ok2 {
			insertHalf(palindex2, models.PartStitchDirectionBackward)
		}
		if ok2 {
			insertQuarter(x.Half(), y, palindex2, models.PartStitchDirectionForward)
		}
	case 2:
		// A forward half with backward quarters: palindex1 colors the
		// top-left quadrant, palindex2 the bottom-right one.
		if ok1 {
			insertHalf(palindex1, models.PartStitchDirectionForward)
			insertQuarter(x, y, palindex1, models.PartStitchDirectionBackward)
		} else if ok2 {
			insertHalf(palindex2, models.PartStitchDirectionForward)
		}
		if ok2 {
			insertQuarter(x.Half(), y.Half(), palindex2, models.PartStitchDirectionBackward)
		}
	case 3:
		if ok1 {
			insertHalf(palindex1, models.PartStitchDirectionForward)
		}
	case 4:
		if ok1 {
			insertHalf(palindex1, models.PartStitchDirectionBackward)
		}
	default:
		logger.Warn("Skipping a part stitch with an unknown direction: ", direction)
	}
}

func readOXSBackStitch(pattern *models.Pattern, model *models.SpecialStitchModel, attrs map[string]string) {
	objecttype := attrs["objecttype"]
	if objecttype == "curvedstitch" {
		if model == nil {
			logger.Warn("Skipping a curved stitch outside a special stitch model")
			return
		}
		if curved, ok := readCurvedPoints(attrs); ok {
			model.CurvedStitches = append(model.CurvedStitches, curved)
		}
		return
	}

	x1, okX1 := attrCoord(attrs, "x1")
	x2, okX2 := attrCoord(attrs, "x2")
	y1, okY1 := attrCoord(attrs, "y1")
	y2, okY2 := attrCoord(attrs, "y2")
	if !okX1 || !okX2 || !okY1 || !okY2 {
		logger.Warn("Skipping a line stitch with malformed coordinates")
		return
	}

	palsize := len(pattern.Palette)
	palindex, ok := attrPalindex(attrs, "palindex", palsize)
	if !ok {
		return
	}
	line := models.LineStitch{
		X:        [2]models.Coord{x1, x2},
		Y:        [2]models.Coord{y1, y2},
		Palindex: palindex,
		Kind:     models.ParseLineStitchKind(objecttype),
	}
	if model != nil {
		model.LineStitches = append(model.LineStitches, line)
		return
	}
	pattern.LineStitches.Insert(line)
}

func readCurvedPoints(attrs map[string]string) (models.CurvedStitch, bool) {
	var curved models.CurvedStitch
	for n := 1; ; n++ {
		suffix := strconv.Itoa(n)
		if _, ok := attrs["x"+suffix]; !ok {
			break
		}
		x, okX := attrCoord(attrs, "x"+suffix)
		y, okY := attrCoord(attrs, "y"+suffix)
		if !okX || !okY {
			logger.Warn("Skipping a curved stitch with malformed points")
			return curved, false
		}
		curved.Points = append(curved.Points, [2]models.Coord{x, y})
	}
	return curved, len(curved.Points) > 0
}

// readOXSOrnament decodes one ornament object: a petite full stitch, a
// french knot, a bead or a placed special stitch.
func readOXSOrnament(pattern *models.Pattern, model *models.SpecialStitchModel, attrs map[string]string) {
	x, okX := attrCoord(attrs, "x1")
	y, okY := attrCoord(attrs, "y1")
	if !okX || !okY {
		logger.Warn("Skipping an ornament with malformed coordinates")
		return
	}
	palindex, ok := attrPalindex(attrs, "palindex", len(pattern.Palette))
	if !ok {
		return
	}

	objecttype := attrs["objecttype"]
	switch {
	case objecttype == "quarter":
		pattern.FullStitches.Insert(models.FullStitch{X: x, Y: y, Palindex: palindex, Kind: models.FullStitchKindPetite})
	case objecttype == "specialstitch":
		rotation, _ := strconv.ParseUint(attrs["rotation"], 10, 16)
		modindex, _ := strconv.ParseUint(attrs["modindex"], 10, 32)
		pattern.SpecialStitches.Insert(models.SpecialStitch{
			X:        x,
			Y:        y,
			Rotation: uint16(rotation % 361),
			Flip:     [2]bool{attrs["flip_x"] == "true", attrs["flip_y"] == "true"},
			Palindex: palindex,
			Modindex: uint32(modindex),
		})
	default:
		// Everything else is a node stitch. Unknown object types parse to a
		// french knot.
		kind := models.NodeStitchKindFrenchKnot
		if strings.HasPrefix(objecttype, "bead") {
			kind = models.NodeStitchKindBead
		}
		node := models.NodeStitch{
			X:        x,
			Y:        y,
			Rotated:  attrs["rotated"] == "true",
			Palindex: palindex,
			Kind:     kind,
		}
		if model != nil {
			model.NodeStitches = append(model.NodeStitches, node)
			return
		}
		pattern.NodeStitches.Insert(node)
	}
}

func readOXSModelHeader(attrs map[string]string) *models.SpecialStitchModel {
	width, _ := parseDecimal(attrs["width"])
	height, _ := parseDecimal(attrs["height"])
	return &models.SpecialStitchModel{
		UniqueName: attrs["unique_name"],
		Name:       attrs["name"],
		Width:      width,
		Height:     height,
	}
}

// attrMap collects the attributes of an element.
func attrMap(e xml.StartElement) map[string]string {
	attrs := make(map[string]string, len(e.Attr))
	for _, attr := range e.Attr {
		attrs[attr.Name.Local] = attr.Value
	}
	return attrs
}

func attrUint16(attrs map[string]string, key string, fallback uint16) uint16 {
	raw, ok := attrs[key]
	if !ok || raw == "" {
		return fallback
	}
	value, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return fallback
	}
	return uint16(value)
}

// parseDecimal parses a decimal number, accepting a comma as the separator.
func parseDecimal(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}

// attrCoord parses a half-grid coordinate attribute.
func attrCoord(attrs map[string]string, key string) (models.Coord, bool) {
	value, err := parseDecimal(attrs[key])
	if err != nil {
		return 0, false
	}
	coord, err := models.NewCoord(value)
	if err != nil {
		return 0, false
	}
	return coord, true
}

// attrPalindex converts a 1-based on-disk palette index to the 0-based
// in-memory one. Index 0 refers to the fabric and indices past the palette
// are dropped, both reported as not-ok.
func attrPalindex(attrs map[string]string, key string, palsize int) (uint32, bool) {
	raw, ok := attrs[key]
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		logger.Warn("Skipping a stitch with a malformed palette index: ", raw)
		return 0, false
	}
	if value == 0 || int(value-1) >= palsize {
		return 0, false
	}
	return uint32(value - 1), true
}
