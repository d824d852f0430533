package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

func TestParseOXS_MinimalChart(t *testing.T) {
	xml := `<chart><properties chartwidth="3" chartheight="3" palettecount="1"/>
		<palette><palette_item index="0" name="c" color="FFFFFF" kind="Aida"/>
			<palette_item index="1" number="DMC 310" name="Black" color="000000"/></palette>
		<fullstitches><stitch x="1" y="1" palindex="1"/></fullstitches>
		<partstitches/><backstitches/><ornaments_inc_knots_and_beads/><special_stitch_models/>
	</chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, uint16(3), pattern.Fabric.Width)
	assert.Equal(t, uint16(3), pattern.Fabric.Height)
	assert.Equal(t, "c", pattern.Fabric.Name)
	assert.Equal(t, "FFFFFF", pattern.Fabric.Color)
	assert.Equal(t, "Aida", pattern.Fabric.Kind)

	require.Len(t, pattern.Palette, 1)
	assert.Equal(t, "DMC", pattern.Palette[0].Brand)
	assert.Equal(t, "310", pattern.Palette[0].Number)

	require.Equal(t, 1, pattern.FullStitches.Len())
	stitch := pattern.FullStitches.All()[0]
	assert.Equal(t, models.FullStitch{X: 1, Y: 1, Palindex: 0, Kind: models.FullStitchKindFull}, stitch)
}

func TestParseOXS_Properties(t *testing.T) {
	xml := `<chart><properties oxsversion="1.0" software="MySoftware" software_version="0.0.0"
		chartwidth="20" chartheight="10" charttitle="My Pattern" author="Me" copyright=""
		instructions="Enjoy the embroidery process!" stitchesperinch="14" stitchesperinch_y="16"
		palettecount="5"/></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)

	assert.Equal(t, uint16(20), pattern.Fabric.Width)
	assert.Equal(t, uint16(10), pattern.Fabric.Height)
	assert.Equal(t, [2]uint16{14, 16}, pattern.Fabric.SPI)
	assert.Equal(t, "My Pattern", pattern.Info.Title)
	assert.Equal(t, "Me", pattern.Info.Author)
	assert.Equal(t, "Enjoy the embroidery process!", pattern.Info.Description)
}

func TestParseOXS_DefaultProperties(t *testing.T) {
	pattern, err := parseOXSPattern(strings.NewReader(`<chart><properties/></chart>`))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultFabricWidth, pattern.Fabric.Width)
	assert.Equal(t, models.DefaultFabricHeight, pattern.Fabric.Height)
	assert.Equal(t, [2]uint16{models.DefaultFabricSPI, models.DefaultFabricSPI}, pattern.Fabric.SPI)
}

func TestParseOXS_PaletteSymbols(t *testing.T) {
	xml := `<chart><properties palettecount="3"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF" kind="Aida"/>
		<palette_item index="1" number="DMC 310" name="Black" color="2C3225"/>
		<palette_item index="2" number="Anchor Marlitt 815" name="Fuschia" color="9B2759" symbol="131"/>
		<palette_item index="3" number="Madeira1206" name="Jade-MD" color="007F49" symbol="k"/>
	</palette></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, pattern.Palette, 3)

	assert.Nil(t, pattern.Palette[0].Symbol)

	assert.Equal(t, "Anchor Marlitt", pattern.Palette[1].Brand)
	assert.Equal(t, "815", pattern.Palette[1].Number)
	require.NotNil(t, pattern.Palette[1].Symbol)
	assert.Equal(t, uint16(131), pattern.Palette[1].Symbol.Code)

	assert.Equal(t, "", pattern.Palette[2].Brand)
	assert.Equal(t, "Madeira1206", pattern.Palette[2].Number)
	require.NotNil(t, pattern.Palette[2].Symbol)
	assert.Equal(t, "k", pattern.Palette[2].Symbol.Char)
}

// TestParseOXS_PartStitchDirections pins the direction-code decoding: 1 and
// 2 are three-quarter combinations, 3 and 4 lone halves. Palette indices are
// 1-based on disk with 0 meaning none.
func TestParseOXS_PartStitchDirections(t *testing.T) {
	xml := `<chart><properties palettecount="2"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 310" name="Black" color="000000"/>
		<palette_item index="2" number="DMC 321" name="Red" color="C63F47"/>
	</palette><partstitches>
		<partstitch x="1" y="1" palindex1="1" palindex2="0" direction="3"/>
		<partstitch x="1" y="3" palindex1="1" palindex2="0" direction="4"/>
		<partstitch x="3" y="1" palindex1="2" palindex2="0" direction="2"/>
		<partstitch x="5" y="1" palindex1="0" palindex2="2" direction="1"/>
		<partstitch x="5" y="3" palindex1="0" palindex2="2" direction="2"/>
		<partstitch x="3" y="3" palindex1="2" palindex2="0" direction="1"/>
		<partstitch x="7" y="1" palindex1="1" palindex2="2" direction="1"/>
		<partstitch x="7" y="3" palindex1="2" palindex2="1" direction="2"/>
	</partstitches></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)

	forward, backward := models.PartStitchDirectionForward, models.PartStitchDirectionBackward
	halfKind, quarterKind := models.PartStitchKindHalf, models.PartStitchKindQuarter

	expected := []models.PartStitch{
		// Lone halves.
		{X: 1, Y: 1, Palindex: 0, Direction: forward, Kind: halfKind},
		{X: 1, Y: 3, Palindex: 0, Direction: backward, Kind: halfKind},
		// Top-left three-quarter.
		{X: 3, Y: 1, Palindex: 1, Direction: forward, Kind: halfKind},
		{X: 3, Y: 1, Palindex: 1, Direction: backward, Kind: quarterKind},
		// Top-right three-quarter.
		{X: 5, Y: 1, Palindex: 1, Direction: backward, Kind: halfKind},
		{X: 5.5, Y: 1, Palindex: 1, Direction: forward, Kind: quarterKind},
		// Bottom-right three-quarter.
		{X: 5, Y: 3, Palindex: 1, Direction: forward, Kind: halfKind},
		{X: 5.5, Y: 3.5, Palindex: 1, Direction: backward, Kind: quarterKind},
		// Bottom-left three-quarter.
		{X: 3, Y: 3, Palindex: 1, Direction: backward, Kind: halfKind},
		{X: 3, Y: 3.5, Palindex: 1, Direction: forward, Kind: quarterKind},
		// Two three-quarters sharing a cell.
		{X: 7, Y: 1, Palindex: 0, Direction: backward, Kind: halfKind},
		{X: 7, Y: 1.5, Palindex: 0, Direction: forward, Kind: quarterKind},
		{X: 7.5, Y: 1, Palindex: 1, Direction: forward, Kind: quarterKind},
		{X: 7, Y: 3, Palindex: 1, Direction: forward, Kind: halfKind},
		{X: 7, Y: 3, Palindex: 1, Direction: backward, Kind: quarterKind},
		{X: 7.5, Y: 3.5, Palindex: 0, Direction: backward, Kind: quarterKind},
	}

	require.Equal(t, len(expected), pattern.PartStitches.Len())
	for _, stitch := range expected {
		assert.True(t, pattern.PartStitches.Contains(stitch), "missing %+v", stitch)
	}
}

func TestParseOXS_LineStitches(t *testing.T) {
	xml := `<chart><properties palettecount="4"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 1" name="a" color="111111"/>
		<palette_item index="2" number="DMC 2" name="b" color="222222"/>
		<palette_item index="3" number="DMC 3" name="c" color="333333"/>
		<palette_item index="4" number="DMC 4" name="d" color="444444"/>
	</palette><backstitches>
		<backstitch x1="7" x2="8" y1="15" y2="14" palindex="3" objecttype="straightstitch"/>
		<backstitch x1="6" x2="7" y1="18" y2="18" palindex="2" objecttype="backstitch"/>
	</backstitches></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)
	require.Equal(t, 2, pattern.LineStitches.Len())

	assert.True(t, pattern.LineStitches.Contains(models.LineStitch{
		X: [2]models.Coord{7, 8}, Y: [2]models.Coord{15, 14}, Palindex: 2, Kind: models.LineStitchKindStraight,
	}))
	assert.True(t, pattern.LineStitches.Contains(models.LineStitch{
		X: [2]models.Coord{6, 7}, Y: [2]models.Coord{18, 18}, Palindex: 1, Kind: models.LineStitchKindBack,
	}))
}

func TestParseOXS_Ornaments(t *testing.T) {
	xml := `<chart><properties palettecount="6"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 1" name="a" color="111111"/>
		<palette_item index="2" number="DMC 2" name="b" color="222222"/>
		<palette_item index="3" number="DMC 3" name="c" color="333333"/>
		<palette_item index="4" number="DMC 4" name="d" color="444444"/>
		<palette_item index="5" number="DMC 5" name="e" color="555555"/>
		<palette_item index="6" number="DMC 6" name="f" color="666666"/>
	</palette><ornaments_inc_knots_and_beads>
		<object x1="11.5" y1="10.5" rotated="false" palindex="6" objecttype="bead"/>
		<object x1="8" y1="45" rotated="true" palindex="3" objecttype="knot"/>
		<object x1="2.5" y1="3" palindex="1" objecttype="quarter"/>
		<object x1="10" y1="5.5" palindex="1" modindex="0" rotation="90" flip_x="true" flip_y="false" objecttype="specialstitch"/>
	</ornaments_inc_knots_and_beads></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)

	assert.True(t, pattern.NodeStitches.Contains(models.NodeStitch{
		X: 11.5, Y: 10.5, Rotated: false, Palindex: 5, Kind: models.NodeStitchKindBead,
	}))
	assert.True(t, pattern.NodeStitches.Contains(models.NodeStitch{
		X: 8, Y: 45, Rotated: true, Palindex: 2, Kind: models.NodeStitchKindFrenchKnot,
	}))
	assert.True(t, pattern.FullStitches.Contains(models.FullStitch{
		X: 2.5, Y: 3, Palindex: 0, Kind: models.FullStitchKindPetite,
	}))
	assert.True(t, pattern.SpecialStitches.Contains(models.SpecialStitch{
		X: 10, Y: 5.5, Rotation: 90, Flip: [2]bool{true, false}, Palindex: 0, Modindex: 0,
	}))
}

func TestParseOXS_SpecialStitchModels(t *testing.T) {
	xml := `<chart><properties palettecount="1"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 310" name="Black" color="000000"/>
	</palette><special_stitch_models>
		<model unique_name="Rhodes Heart - over 6" name="Rhodes Heart" width="3" height="2.5">
			<backstitch x1="1" x2="2" y1="2" y2="0" palindex="1" objecttype="straightstitch"/>
			<backstitch x1="1.5" x2="1.5" y1="0.5" y2="2.5" palindex="1" objecttype="straightstitch"/>
		</model>
		<model unique_name="Lazy Daisy" name="Lazy Daisy" width="1" height="1.5">
			<backstitch x1="1" y1="0" x2="0.5" y2="0.5" x3="0" y3="0.5" x4="0" y4="1" palindex="1" objecttype="curvedstitch"/>
		</model>
	</special_stitch_models></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, pattern.SpecialStitchModels, 2)

	heart := pattern.SpecialStitchModels[0]
	assert.Equal(t, "Rhodes Heart - over 6", heart.UniqueName)
	assert.Equal(t, 3.0, heart.Width)
	assert.Equal(t, 2.5, heart.Height)
	require.Len(t, heart.LineStitches, 2)
	assert.Equal(t, models.LineStitchKindStraight, heart.LineStitches[0].Kind)

	daisy := pattern.SpecialStitchModels[1]
	require.Len(t, daisy.CurvedStitches, 1)
	assert.Equal(t, [][2]models.Coord{{1, 0}, {0.5, 0.5}, {0, 0.5}, {0, 1}}, daisy.CurvedStitches[0].Points)
}

func TestParseOXS_CommaDecimalSeparator(t *testing.T) {
	xml := `<chart><properties palettecount="1"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 310" name="Black" color="000000"/>
	</palette><ornaments_inc_knots_and_beads>
		<object x1="2,5" y1="3,5" rotated="false" palindex="1" objecttype="knot"/>
	</ornaments_inc_knots_and_beads></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)
	assert.True(t, pattern.NodeStitches.Contains(models.NodeStitch{
		X: 2.5, Y: 3.5, Palindex: 0, Kind: models.NodeStitchKindFrenchKnot,
	}))
}

func TestParseOXS_DropsOutOfPaletteStitches(t *testing.T) {
	xml := `<chart><properties palettecount="1"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 310" name="Black" color="000000"/>
	</palette><fullstitches>
		<stitch x="1" y="1" palindex="1"/>
		<stitch x="2" y="1" palindex="9"/>
	</fullstitches></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, 1, pattern.FullStitches.Len())
}

func TestParseOXS_SkipsMalformedElements(t *testing.T) {
	xml := `<chart><properties palettecount="1"/><palette>
		<palette_item index="0" number="cloth" name="cloth" color="FFFFFF"/>
		<palette_item index="1" number="DMC 310" name="Black" color="000000"/>
	</palette><fullstitches>
		<stitch x="bogus" y="1" palindex="1"/>
		<stitch x="1.25" y="1" palindex="1"/>
		<stitch x="2" y="2" palindex="1"/>
	</fullstitches></chart>`

	pattern, err := parseOXSPattern(strings.NewReader(xml))
	require.NoError(t, err)
	assert.Equal(t, 1, pattern.FullStitches.Len())
}

func TestParseOXS_FailsWithoutChart(t *testing.T) {
	_, err := parseOXSPattern(strings.NewReader(`<not_a_chart></not_a_chart>`))
	assert.Error(t, err)
}

func TestParseOXS_FailsOnMissingChartEnd(t *testing.T) {
	_, err := parseOXSPattern(strings.NewReader(`<chart>`))
	assert.Error(t, err)

	_, err = parseOXSPattern(strings.NewReader(`<chart></chart>`))
	assert.NoError(t, err)
}

func TestMarshalOXS_RoundTrip(t *testing.T) {
	pattern := buildRichPattern(false)

	data, err := marshalOXSPattern(pattern, AppInfo{Name: "Open Stitch Studio", Version: "0.0.0"}, WriteOptions{})
	require.NoError(t, err)

	parsed, err := parseOXSPattern(strings.NewReader(string(data)))
	require.NoError(t, err)

	assert.Equal(t, pattern.Fabric, parsed.Fabric)
	assert.Equal(t, pattern.Info.Title, parsed.Info.Title)
	assert.Equal(t, pattern.Palette, parsed.Palette)
	assert.Equal(t, pattern.FullStitches.All(), parsed.FullStitches.All())
	assert.Equal(t, pattern.LineStitches.All(), parsed.LineStitches.All())
	assert.Equal(t, pattern.NodeStitches.All(), parsed.NodeStitches.All())
	assert.Equal(t, pattern.SpecialStitches.All(), parsed.SpecialStitches.All())
	assert.Equal(t, pattern.SpecialStitchModels, parsed.SpecialStitchModels)
	// The interchange flavor does not carry part stitches.
	assert.Equal(t, 0, parsed.PartStitches.Len())
}

func TestMarshalOXS_RoundTripWithParts(t *testing.T) {
	pattern := buildRichPattern(true)

	data, err := marshalOXSPattern(pattern, AppInfo{Name: "Open Stitch Studio", Version: "0.0.0"}, WriteOptions{IncludeParts: true})
	require.NoError(t, err)

	parsed, err := parseOXSPattern(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, pattern.PartStitches.All(), parsed.PartStitches.All())
}

// buildRichPattern assembles a pattern exercising every serialized shape.
// Part stitches are optional because the interchange flavor drops them; the
// ones used are expressible with the direction codes.
func buildRichPattern(withParts bool) *models.Pattern {
	pattern := models.NewPattern(models.Fabric{
		Width: 20, Height: 30, SPI: [2]uint16{14, 14}, Kind: "Aida", Name: "Linen", Color: "F0EAD6",
	})
	pattern.Info.Title = "Sampler"
	pattern.Info.Author = "Jane"
	pattern.Palette = []models.PaletteItem{
		{Brand: "DMC", Number: "310", Name: "Black", Color: "2C3225", Symbol: &models.Symbol{Code: 131}},
		{Brand: "DMC", Number: "321", Name: "Red", Color: "C63F47", Symbol: &models.Symbol{Char: "k"}},
		{Brand: "Anchor Marlitt", Number: "815", Name: "Fuschia", Color: "9B2759"},
	}

	pattern.FullStitches.Insert(models.FullStitch{X: 1, Y: 1, Palindex: 0, Kind: models.FullStitchKindFull})
	pattern.FullStitches.Insert(models.FullStitch{X: 2.5, Y: 1, Palindex: 1, Kind: models.FullStitchKindPetite})
	pattern.LineStitches.Insert(models.LineStitch{
		X: [2]models.Coord{0, 3}, Y: [2]models.Coord{0, 2}, Palindex: 2, Kind: models.LineStitchKindBack,
	})
	pattern.LineStitches.Insert(models.LineStitch{
		X: [2]models.Coord{4, 5.5}, Y: [2]models.Coord{1, 1}, Palindex: 0, Kind: models.LineStitchKindStraight,
	})
	pattern.NodeStitches.Insert(models.NodeStitch{X: 5.5, Y: 6, Rotated: true, Palindex: 1, Kind: models.NodeStitchKindBead})
	pattern.NodeStitches.Insert(models.NodeStitch{X: 7, Y: 8.5, Palindex: 0, Kind: models.NodeStitchKindFrenchKnot})
	pattern.SpecialStitches.Insert(models.SpecialStitch{
		X: 10, Y: 5.5, Rotation: 90, Flip: [2]bool{true, false}, Palindex: 0, Modindex: 0,
	})
	pattern.SpecialStitchModels = []models.SpecialStitchModel{{
		UniqueName: "Rhodes Heart - over 6",
		Name:       "Rhodes Heart",
		Width:      3,
		Height:     2.5,
		LineStitches: []models.LineStitch{{
			X: [2]models.Coord{1, 2}, Y: [2]models.Coord{2, 0}, Palindex: 0, Kind: models.LineStitchKindStraight,
		}},
		CurvedStitches: []models.CurvedStitch{{
			Points: [][2]models.Coord{{1, 0}, {0.5, 0.5}, {0, 1}},
		}},
	}}

	if withParts {
		// A lone forward half.
		pattern.PartStitches.Insert(models.PartStitch{
			X: 11, Y: 2, Palindex: 0, Direction: models.PartStitchDirectionForward, Kind: models.PartStitchKindHalf,
		})
		// A bottom-left three-quarter: backward half plus a forward quarter.
		pattern.PartStitches.Insert(models.PartStitch{
			X: 12, Y: 2, Palindex: 1, Direction: models.PartStitchDirectionBackward, Kind: models.PartStitchKindHalf,
		})
		pattern.PartStitches.Insert(models.PartStitch{
			X: 12, Y: 2.5, Palindex: 1, Direction: models.PartStitchDirectionForward, Kind: models.PartStitchKindQuarter,
		})
		// A top-left three-quarter: forward half plus a backward quarter.
		pattern.PartStitches.Insert(models.PartStitch{
			X: 13, Y: 2, Palindex: 0, Direction: models.PartStitchDirectionForward, Kind: models.PartStitchKindHalf,
		})
		pattern.PartStitches.Insert(models.PartStitch{
			X: 13, Y: 2, Palindex: 0, Direction: models.PartStitchDirectionBackward, Kind: models.PartStitchKindQuarter,
		})
	}
	return pattern
}
