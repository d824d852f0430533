package models

// DisplayMode selects how stitches are rendered.
type DisplayMode string

const (
	DisplayModeSolid    DisplayMode = "Solid"
	DisplayModeStitches DisplayMode = "Stitches"
	DisplayModeMixed    DisplayMode = "Mixed"
)

// ParseDisplayMode parses a display mode name. Unknown values parse to Mixed
// so that settings written by other software never fail the load.
func ParseDisplayMode(s string) DisplayMode {
	switch s {
	case "Solid":
		return DisplayModeSolid
	case "Stitches":
		return DisplayModeStitches
	default:
		return DisplayModeMixed
	}
}

// DisplayModeFromPatternMaker maps Pattern Maker's legacy view numbering to a
// display mode.
func DisplayModeFromPatternMaker(value uint16) DisplayMode {
	switch value {
	case 0:
		return DisplayModeStitches
	case 2:
		return DisplayModeSolid
	default:
		return DisplayModeMixed
	}
}

// GridLine styles one family of grid lines. Thickness counts in points.
type GridLine struct {
	Color     string  `json:"color"`
	Thickness float64 `json:"thickness"`
}

// Grid holds the grid drawing settings of a document.
type Grid struct {
	MajorLinesInterval uint16   `json:"major_lines_interval"`
	MinorLines         GridLine `json:"minor_lines"`
	MajorLines         GridLine `json:"major_lines"`
}

// DefaultGrid returns the grid settings of a fresh document.
func DefaultGrid() Grid {
	return Grid{
		MajorLinesInterval: 10,
		MinorLines:         GridLine{Color: "C8C8C8", Thickness: 0.072},
		MajorLines:         GridLine{Color: "646464", Thickness: 0.072},
	}
}

// Default palette display settings.
const (
	DefaultPaletteColumnsNumber   uint8 = 1
	DefaultPaletteColorOnly             = false
	DefaultPaletteShowColorBrands       = true
	DefaultPaletteShowColorNames        = true
	DefaultPaletteShowColorNumbers      = true
)

// PaletteSettings controls how the palette panel lays out its entries.
type PaletteSettings struct {
	ColumnsNumber    uint8 `json:"columns_number"`
	ColorOnly        bool  `json:"color_only"`
	ShowColorBrands  bool  `json:"show_color_brands"`
	ShowColorNumbers bool  `json:"show_color_numbers"`
	ShowColorNames   bool  `json:"show_color_names"`
}

// DefaultPaletteSettings returns the palette panel settings of a fresh
// document.
func DefaultPaletteSettings() PaletteSettings {
	return PaletteSettings{
		ColumnsNumber:    DefaultPaletteColumnsNumber,
		ColorOnly:        DefaultPaletteColorOnly,
		ShowColorBrands:  DefaultPaletteShowColorBrands,
		ShowColorNumbers: DefaultPaletteShowColorNumbers,
		ShowColorNames:   DefaultPaletteShowColorNames,
	}
}

// DisplaySettings is the per-document visual state. Its mutations flow
// through the same action pipeline as stitch edits.
type DisplaySettings struct {
	DefaultSymbolFont string          `json:"default_symbol_font"`
	Grid              Grid            `json:"grid"`
	DisplayMode       DisplayMode     `json:"display_mode"`
	ShowSymbols       bool            `json:"show_symbols"`
	PaletteSettings   PaletteSettings `json:"palette_settings"`
}

// DefaultDisplaySettings returns the visual state of a fresh document.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		DefaultSymbolFont: "Ursasoftware",
		Grid:              DefaultGrid(),
		DisplayMode:       DisplayModeSolid,
		ShowSymbols:       false,
		PaletteSettings:   DefaultPaletteSettings(),
	}
}
