package models

// MinBlendStrands and MaxBlendStrands bound the strand count of one thread in
// a blend.
const (
	MinBlendStrands uint8 = 1
	MaxBlendStrands uint8 = 6
)

// MinStitchStrands and MaxStitchStrands bound per-stitch strand counts.
const (
	MinStitchStrands uint8 = 1
	MaxStitchStrands uint8 = 12
)

// PaletteItem is one color entry of a pattern palette.
type PaletteItem struct {
	Brand      string         `json:"brand"`
	Number     string         `json:"number"`
	Name       string         `json:"name"`
	Color      string         `json:"color"`
	Blends     []Blend        `json:"blends,omitempty"`
	Bead       *Bead          `json:"bead,omitempty"`
	Strands    *StitchStrands `json:"strands,omitempty"`
	Symbol     *Symbol        `json:"symbol,omitempty"`
	SymbolFont string         `json:"symbol_font,omitempty"`
}

// Equal reports structural equality. It is used to detect duplicate palette
// additions.
func (p PaletteItem) Equal(other PaletteItem) bool {
	if p.Brand != other.Brand || p.Number != other.Number || p.Name != other.Name || p.Color != other.Color {
		return false
	}
	if len(p.Blends) != len(other.Blends) {
		return false
	}
	for i := range p.Blends {
		if p.Blends[i] != other.Blends[i] {
			return false
		}
	}
	if (p.Bead == nil) != (other.Bead == nil) || (p.Bead != nil && *p.Bead != *other.Bead) {
		return false
	}
	if (p.Strands == nil) != (other.Strands == nil) || (p.Strands != nil && *p.Strands != *other.Strands) {
		return false
	}
	if (p.Symbol == nil) != (other.Symbol == nil) || (p.Symbol != nil && *p.Symbol != *other.Symbol) {
		return false
	}
	return p.SymbolFont == other.SymbolFont
}

// Blend is one thread of a blended palette entry.
type Blend struct {
	Brand   string `json:"brand"`
	Number  string `json:"number"`
	Strands uint8  `json:"strands"`
}

// NewBlendStrands clamps a raw strand count into [1, 6].
func NewBlendStrands(raw uint8) uint8 {
	return clampStrands(raw, MinBlendStrands, MaxBlendStrands)
}

// NewStitchStrands clamps a raw strand count into [1, 12].
func NewStitchStrands(raw uint8) uint8 {
	return clampStrands(raw, MinStitchStrands, MaxStitchStrands)
}

func clampStrands(raw, min, max uint8) uint8 {
	if raw < min {
		return min
	}
	if raw > max {
		return max
	}
	return raw
}

// Bead holds the physical dimensions of a bead color, in millimeters.
type Bead struct {
	Length   float64 `json:"length"`
	Diameter float64 `json:"diameter"`
}

// Symbol is the chart glyph of a palette entry: either a numeric glyph code
// in the symbol font or a literal character. Char wins when both are set.
type Symbol struct {
	Code uint16 `json:"code,omitempty"`
	Char string `json:"char,omitempty"`
}

// StitchStrands holds per-stitch-kind strand counts for a palette entry.
type StitchStrands struct {
	Full       uint8 `json:"full"`
	Petite     uint8 `json:"petite"`
	Half       uint8 `json:"half"`
	Quarter    uint8 `json:"quarter"`
	Back       uint8 `json:"back"`
	Straight   uint8 `json:"straight"`
	FrenchKnot uint8 `json:"french_knot"`
	Special    uint8 `json:"special"`
}

// DefaultStitchStrands returns the strand counts used when a palette entry
// carries no overrides.
func DefaultStitchStrands() StitchStrands {
	return StitchStrands{
		Full:       2,
		Petite:     2,
		Half:       2,
		Quarter:    2,
		Back:       1,
		Straight:   1,
		FrenchKnot: 2,
		Special:    2,
	}
}
