package parser

import (
	"bytes"
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// formatComments is the interchange note carried in the <format> block of
// every written OXS file.
var formatComments = []string{
	"Designed to allow interchange of basic pattern data between any cross stitch style software",
	"the 'properties' section establishes size, copyright, authorship and software used",
	"The 'palette' section establishes the thread colors used",
}

// SaveOXS serializes a project to its file path in the OXS format. The
// interchange flavor carries no part-stitch rows; they survive only inside
// project bundles.
func SaveOXS(patproj *models.PatternProject, app AppInfo) error {
	logger.Info("Saving the OXS pattern")
	data, err := marshalOXSPattern(&patproj.Pattern, app, WriteOptions{})
	if err != nil {
		return err
	}
	return writeFile(patproj.FilePath, data)
}

// WriteOptions tunes the OXS serializer.
type WriteOptions struct {
	// Pretty indents nested elements with two spaces, for debugging only.
	Pretty bool
	// IncludeParts emits the part-stitch section. Only the bundle writer
	// sets this; the interchange flavor leaves the section empty.
	IncludeParts bool
}

// writeFile writes data with create+write+truncate semantics, releasing the
// handle on every exit path.
func writeFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, errors.ErrIo.Code, "cannot create pattern file").WithPath(path)
	}
	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrIo.Code, "cannot write pattern file").WithPath(path)
	}
	return nil
}

// oxsWriter emits tokens with a deterministic attribute order.
type oxsWriter struct {
	enc *xml.Encoder
	err error
}

func (w *oxsWriter) open(name string, attrs ...xml.Attr) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (w *oxsWriter) close(name string) {
	if w.err != nil {
		return
	}
	w.err = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func (w *oxsWriter) empty(name string, attrs ...xml.Attr) {
	w.open(name, attrs...)
	w.close(name)
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// coordText formats a coordinate with a period decimal separator and no
// trailing zeroes.
func coordText(c models.Coord) string {
	return strconv.FormatFloat(float64(c), 'f', -1, 64)
}

func uintText[T uint8 | uint16 | uint32](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func boolText(v bool) string {
	return strconv.FormatBool(v)
}

// marshalOXSPattern serializes a pattern into an OXS document.
func marshalOXSPattern(pattern *models.Pattern, app AppInfo, opts WriteOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if opts.Pretty {
		enc.Indent("", "  ")
	}
	w := &oxsWriter{enc: enc}

	w.open("chart")
	writeOXSFormat(w)
	writeOXSProperties(w, pattern, app)
	writeOXSPalette(w, pattern)
	writeOXSFullStitches(w, pattern)
	if opts.IncludeParts {
		writeOXSPartStitches(w, pattern)
	} else {
		w.empty("partstitches")
	}
	writeOXSBackStitches(w, pattern)
	writeOXSOrnaments(w, pattern)
	writeOXSSpecialStitchModels(w, pattern)
	w.close("chart")

	if w.err != nil {
		return nil, errors.Wrap(w.err, errors.ErrIo.Code, "cannot serialize the pattern")
	}
	if err := enc.Flush(); err != nil {
		return nil, errors.Wrap(err, errors.ErrIo.Code, "cannot serialize the pattern")
	}
	return buf.Bytes(), nil
}

func writeOXSFormat(w *oxsWriter) {
	attrs := make([]xml.Attr, 0, len(formatComments))
	for i, comment := range formatComments {
		attrs = append(attrs, attr("comments"+padComment(i+1), comment))
	}
	w.empty("format", attrs...)
}

func padComment(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func writeOXSProperties(w *oxsWriter, pattern *models.Pattern, app AppInfo) {
	w.empty("properties",
		attr("oxsversion", "1.0"),
		attr("software", app.Name),
		attr("software_version", app.Version),
		attr("chartwidth", uintText(pattern.Fabric.Width)),
		attr("chartheight", uintText(pattern.Fabric.Height)),
		attr("charttitle", pattern.Info.Title),
		attr("author", pattern.Info.Author),
		attr("copyright", pattern.Info.Copyright),
		attr("instructions", pattern.Info.Description),
		attr("stitchesperinch", uintText(pattern.Fabric.SPI[0])),
		attr("stitchesperinch_y", uintText(pattern.Fabric.SPI[1])),
		attr("palettecount", strconv.Itoa(len(pattern.Palette))),
	)
}

func writeOXSPalette(w *oxsWriter, pattern *models.Pattern) {
	w.open("palette")
	w.empty("palette_item",
		attr("index", "0"),
		attr("number", pattern.Fabric.Name),
		attr("name", pattern.Fabric.Name),
		attr("color", pattern.Fabric.Color),
		attr("kind", pattern.Fabric.Kind),
	)
	for i, item := range pattern.Palette {
		attrs := []xml.Attr{
			attr("index", strconv.Itoa(i+1)),
			attr("number", strings.TrimSpace(item.Brand+" "+item.Number)),
			attr("name", item.Name),
			attr("color", item.Color),
		}
		if item.Symbol != nil {
			if item.Symbol.Char != "" {
				attrs = append(attrs, attr("symbol", item.Symbol.Char))
			} else {
				attrs = append(attrs, attr("symbol", uintText(item.Symbol.Code)))
			}
		}
		if item.SymbolFont != "" {
			attrs = append(attrs, attr("fontname", item.SymbolFont))
		}
		w.empty("palette_item", attrs...)
	}
	w.close("palette")
}

func writeOXSFullStitches(w *oxsWriter, pattern *models.Pattern) {
	w.open("fullstitches")
	for _, stitch := range pattern.FullStitches.All() {
		if stitch.Kind != models.FullStitchKindFull {
			continue
		}
		w.empty("stitch",
			attr("x", coordText(stitch.X)),
			attr("y", coordText(stitch.Y)),
			attr("palindex", uintText(stitch.Palindex+1)),
		)
	}
	w.close("fullstitches")
}

// writeOXSPartStitches encodes half and three-quarter stitches with the
// direction codes the reader understands. Quarters that pair with the
// matching half of their cell ride along as palindex1/palindex2; shapes the
// codes cannot express are dropped with a warning.
func writeOXSPartStitches(w *oxsWriter, pattern *models.Pattern) {
	w.open("partstitches")

	// Quarters indexed by position and direction; the value is the palette
	// index, shifted by one so the zero value means absent.
	quarters := make(map[models.PartStitch]uint32)
	for _, stitch := range pattern.PartStitches.All() {
		if stitch.Kind == models.PartStitchKindQuarter {
			key := stitch
			key.Palindex = 0
			quarters[key] = stitch.Palindex + 1
		}
	}

	// takeQuarter consumes the quarter at the given spot when its color
	// passes the filter. The p1 slot shares its color with the half, so that
	// slot only takes a same-colored quarter; the p2 slot takes any.
	takeQuarter := func(x, y models.Coord, direction models.PartStitchDirection, want uint32) uint32 {
		key := models.PartStitch{X: x, Y: y, Direction: direction, Kind: models.PartStitchKindQuarter}
		palindex := quarters[key]
		if palindex == 0 || (want != 0 && palindex != want) {
			return 0
		}
		delete(quarters, key)
		return palindex
	}

	row := func(x, y models.Coord, palindex1, palindex2 uint32, direction int) {
		w.empty("partstitch",
			attr("x", coordText(x)),
			attr("y", coordText(y)),
			attr("palindex1", uintText(palindex1)),
			attr("palindex2", uintText(palindex2)),
			attr("direction", strconv.Itoa(direction)),
		)
	}

	for _, half := range pattern.PartStitches.All() {
		if half.Kind != models.PartStitchKindHalf {
			continue
		}
		x, y := half.X, half.Y
		switch half.Direction {
		case models.PartStitchDirectionBackward:
			// Code 1: palindex1 owns the bottom-left quadrant (and the
			// half), palindex2 the top-right one.
			p1 := takeQuarter(x, y.Half(), models.PartStitchDirectionForward, half.Palindex+1)
			var p2 uint32
			if p1 != 0 {
				p2 = takeQuarter(x.Half(), y, models.PartStitchDirectionForward, 0)
			} else {
				// Without a p1 quarter the reader colors the half from
				// palindex2, so the top-right slot must match the half.
				p2 = takeQuarter(x.Half(), y, models.PartStitchDirectionForward, half.Palindex+1)
			}
			if p1 == 0 && p2 == 0 {
				row(x, y, half.Palindex+1, 0, 4)
			} else {
				row(x, y, p1, p2, 1)
			}
		case models.PartStitchDirectionForward:
			// Code 2: palindex1 owns the top-left quadrant (and the half),
			// palindex2 the bottom-right one.
			p1 := takeQuarter(x, y, models.PartStitchDirectionBackward, half.Palindex+1)
			var p2 uint32
			if p1 != 0 {
				p2 = takeQuarter(x.Half(), y.Half(), models.PartStitchDirectionBackward, 0)
			} else {
				p2 = takeQuarter(x.Half(), y.Half(), models.PartStitchDirectionBackward, half.Palindex+1)
			}
			if p1 == 0 && p2 == 0 {
				row(x, y, half.Palindex+1, 0, 3)
			} else {
				row(x, y, p1, p2, 2)
			}
		}
	}

	if len(quarters) > 0 {
		logger.Warn("Dropping ", len(quarters), " quarter stitches the direction codes cannot express")
	}
	w.close("partstitches")
}

func lineObjectType(kind models.LineStitchKind) string {
	if kind == models.LineStitchKindStraight {
		return "straightstitch"
	}
	return "backstitch"
}

func writeOXSBackStitches(w *oxsWriter, pattern *models.Pattern) {
	w.open("backstitches")
	for _, line := range pattern.LineStitches.All() {
		w.empty("backstitch",
			attr("x1", coordText(line.X[0])),
			attr("x2", coordText(line.X[1])),
			attr("y1", coordText(line.Y[0])),
			attr("y2", coordText(line.Y[1])),
			attr("palindex", uintText(line.Palindex+1)),
			attr("objecttype", lineObjectType(line.Kind)),
		)
	}
	w.close("backstitches")
}

func nodeObjectType(kind models.NodeStitchKind) string {
	if kind == models.NodeStitchKindBead {
		return "bead"
	}
	return "knot"
}

func writeOXSOrnaments(w *oxsWriter, pattern *models.Pattern) {
	w.open("ornaments_inc_knots_and_beads")
	for _, stitch := range pattern.FullStitches.All() {
		if stitch.Kind != models.FullStitchKindPetite {
			continue
		}
		w.empty("object",
			attr("x1", coordText(stitch.X)),
			attr("y1", coordText(stitch.Y)),
			attr("palindex", uintText(stitch.Palindex+1)),
			attr("objecttype", "quarter"),
		)
	}
	for _, node := range pattern.NodeStitches.All() {
		w.empty("object",
			attr("x1", coordText(node.X)),
			attr("y1", coordText(node.Y)),
			attr("rotated", boolText(node.Rotated)),
			attr("palindex", uintText(node.Palindex+1)),
			attr("objecttype", nodeObjectType(node.Kind)),
		)
	}
	for _, special := range pattern.SpecialStitches.All() {
		w.empty("object",
			attr("x1", coordText(special.X)),
			attr("y1", coordText(special.Y)),
			attr("palindex", uintText(special.Palindex+1)),
			attr("modindex", uintText(special.Modindex)),
			attr("rotation", uintText(special.Rotation)),
			attr("flip_x", boolText(special.Flip[0])),
			attr("flip_y", boolText(special.Flip[1])),
			attr("objecttype", "specialstitch"),
		)
	}
	w.close("ornaments_inc_knots_and_beads")
}

func floatText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeOXSSpecialStitchModels(w *oxsWriter, pattern *models.Pattern) {
	w.open("special_stitch_models")
	for _, model := range pattern.SpecialStitchModels {
		w.open("model",
			attr("unique_name", model.UniqueName),
			attr("name", model.Name),
			attr("width", floatText(model.Width)),
			attr("height", floatText(model.Height)),
		)
		for _, line := range model.LineStitches {
			w.empty("backstitch",
				attr("x1", coordText(line.X[0])),
				attr("x2", coordText(line.X[1])),
				attr("y1", coordText(line.Y[0])),
				attr("y2", coordText(line.Y[1])),
				attr("palindex", uintText(line.Palindex+1)),
				attr("objecttype", lineObjectType(line.Kind)),
			)
		}
		for _, node := range model.NodeStitches {
			w.empty("object",
				attr("x1", coordText(node.X)),
				attr("y1", coordText(node.Y)),
				attr("rotated", boolText(node.Rotated)),
				attr("palindex", uintText(node.Palindex+1)),
				attr("objecttype", nodeObjectType(node.Kind)),
			)
		}
		for _, curved := range model.CurvedStitches {
			attrs := make([]xml.Attr, 0, len(curved.Points)*2+2)
			for i, point := range curved.Points {
				suffix := strconv.Itoa(i + 1)
				attrs = append(attrs, attr("x"+suffix, coordText(point[0])), attr("y"+suffix, coordText(point[1])))
			}
			attrs = append(attrs, attr("palindex", "1"), attr("objecttype", "curvedstitch"))
			w.empty("backstitch", attrs...)
		}
		w.close("model")
	}
	w.close("special_stitch_models")
}
