package models

// FullStitchKind distinguishes whole-cell full stitches from quadrant-sized
// petite stitches.
type FullStitchKind uint8

const (
	FullStitchKindFull FullStitchKind = iota
	FullStitchKindPetite
)

func (k FullStitchKind) String() string {
	if k == FullStitchKindPetite {
		return "Petite"
	}
	return "Full"
}

// FullStitch is a full or petite cross stitch. A full stitch occupies the
// whole cell at integer (X, Y); a petite occupies one quadrant and its
// coordinates carry fractional parts of 0 or 0.5.
type FullStitch struct {
	X        Coord          `json:"x"`
	Y        Coord          `json:"y"`
	Palindex uint32         `json:"palindex"`
	Kind     FullStitchKind `json:"kind"`
}

// Compare orders full stitches by (y, x, kind).
// The palette index is not part of the ordering key.
func (s FullStitch) Compare(other FullStitch) int {
	if c := compareCoords(s.Y, other.Y); c != 0 {
		return c
	}
	if c := compareCoords(s.X, other.X); c != 0 {
		return c
	}
	return int(s.Kind) - int(other.Kind)
}

// PalIndex returns the palette index of the stitch.
func (s FullStitch) PalIndex() uint32 { return s.Palindex }

// WithPalIndex returns a copy of the stitch pointing at another palette entry.
func (s FullStitch) WithPalIndex(palindex uint32) FullStitch {
	s.Palindex = palindex
	return s
}

// ToPartStitch converts the stitch into the part stitch occupying the same
// area: full to half, petite to quarter. The direction is derived from the
// quadrant the stitch sits on.
func (s FullStitch) ToPartStitch() PartStitch {
	kind := PartStitchKindHalf
	if s.Kind == FullStitchKindPetite {
		kind = PartStitchKindQuarter
	}
	return PartStitch{
		X:         s.X,
		Y:         s.Y,
		Palindex:  s.Palindex,
		Direction: PartStitchDirectionForCoords(s.X, s.Y),
		Kind:      kind,
	}
}
