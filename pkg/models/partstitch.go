package models

// PartStitchDirection is the diagonal a half or quarter stitch lies on:
// Forward is /, Backward is \.
type PartStitchDirection uint8

const (
	PartStitchDirectionForward PartStitchDirection = iota
	PartStitchDirectionBackward
)

func (d PartStitchDirection) String() string {
	if d == PartStitchDirectionBackward {
		return "Backward"
	}
	return "Forward"
}

// PartStitchDirectionForCoords derives the direction from the quadrant a
// quadrant-sized stitch sits on: the top-left and bottom-right quadrants lie
// on the \ diagonal, the other two on the / diagonal.
func PartStitchDirectionForCoords(x, y Coord) PartStitchDirection {
	if (x.Fract() < 0.5 && y.Fract() < 0.5) || (x.Fract() >= 0.5 && y.Fract() >= 0.5) {
		return PartStitchDirectionBackward
	}
	return PartStitchDirectionForward
}

// PartStitchKind distinguishes whole-cell half stitches from quadrant-sized
// quarter stitches.
type PartStitchKind uint8

const (
	PartStitchKindHalf PartStitchKind = iota
	PartStitchKindQuarter
)

func (k PartStitchKind) String() string {
	if k == PartStitchKindQuarter {
		return "Quarter"
	}
	return "Half"
}

// PartStitch is a half or quarter cross stitch.
type PartStitch struct {
	X         Coord               `json:"x"`
	Y         Coord               `json:"y"`
	Palindex  uint32              `json:"palindex"`
	Direction PartStitchDirection `json:"direction"`
	Kind      PartStitchKind      `json:"kind"`
}

// Compare orders part stitches by (y, x, kind, direction).
// The palette index is not part of the ordering key.
func (s PartStitch) Compare(other PartStitch) int {
	if c := compareCoords(s.Y, other.Y); c != 0 {
		return c
	}
	if c := compareCoords(s.X, other.X); c != 0 {
		return c
	}
	if c := int(s.Kind) - int(other.Kind); c != 0 {
		return c
	}
	return int(s.Direction) - int(other.Direction)
}

// PalIndex returns the palette index of the stitch.
func (s PartStitch) PalIndex() uint32 { return s.Palindex }

// WithPalIndex returns a copy of the stitch pointing at another palette entry.
func (s PartStitch) WithPalIndex(palindex uint32) PartStitch {
	s.Palindex = palindex
	return s
}

// IsOnTopLeft reports whether a quadrant-sized stitch sits on the top-left
// quadrant of its cell.
func (s PartStitch) IsOnTopLeft() bool {
	return s.X.Fract() < 0.5 && s.Y.Fract() < 0.5
}

// IsOnTopRight reports whether the stitch sits on the top-right quadrant.
func (s PartStitch) IsOnTopRight() bool {
	return s.X.Fract() >= 0.5 && s.Y.Fract() < 0.5
}

// IsOnBottomRight reports whether the stitch sits on the bottom-right quadrant.
func (s PartStitch) IsOnBottomRight() bool {
	return s.X.Fract() >= 0.5 && s.Y.Fract() >= 0.5
}

// IsOnBottomLeft reports whether the stitch sits on the bottom-left quadrant.
func (s PartStitch) IsOnBottomLeft() bool {
	return s.X.Fract() < 0.5 && s.Y.Fract() >= 0.5
}

// ToFullStitch converts the stitch into the full stitch occupying the same
// area: half to full, quarter to petite.
func (s PartStitch) ToFullStitch() FullStitch {
	kind := FullStitchKindFull
	if s.Kind == PartStitchKindQuarter {
		kind = FullStitchKindPetite
	}
	return FullStitch{X: s.X, Y: s.Y, Palindex: s.Palindex, Kind: kind}
}
