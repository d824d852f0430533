package models

// SpecialStitch is a placed instance of a special stitch model.
type SpecialStitch struct {
	X        Coord   `json:"x"`
	Y        Coord   `json:"y"`
	Rotation uint16  `json:"rotation"`
	Flip     [2]bool `json:"flip"`
	Palindex uint32  `json:"palindex"`
	Modindex uint32  `json:"modindex"`
}

// Compare orders special stitches by (y, x).
// The palette index is not part of the ordering key.
func (s SpecialStitch) Compare(other SpecialStitch) int {
	if c := compareCoords(s.Y, other.Y); c != 0 {
		return c
	}
	return compareCoords(s.X, other.X)
}

// PalIndex returns the palette index of the stitch.
func (s SpecialStitch) PalIndex() uint32 { return s.Palindex }

// WithPalIndex returns a copy of the stitch pointing at another palette entry.
func (s SpecialStitch) WithPalIndex(palindex uint32) SpecialStitch {
	s.Palindex = palindex
	return s
}

// SpecialStitchModel describes the geometry of a reusable special stitch.
type SpecialStitchModel struct {
	UniqueName     string         `json:"unique_name"`
	Name           string         `json:"name"`
	Width          float64        `json:"width"`
	Height         float64        `json:"height"`
	NodeStitches   []NodeStitch   `json:"nodestitches"`
	LineStitches   []LineStitch   `json:"linestitches"`
	CurvedStitches []CurvedStitch `json:"curvedstitches"`
}

// CurvedStitch is a polyline of control points used inside special stitch
// models only.
type CurvedStitch struct {
	Points [][2]Coord `json:"points"`
}
