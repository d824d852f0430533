package models

// FullStitches is the ordered set of full and petite stitches of a pattern.
type FullStitches struct {
	StitchSet[FullStitch]
}

// RemoveConflictsWithFullStitch removes and returns every petite stitch
// sitting in one of the four quadrants of the cell a new full stitch covers.
func (s *FullStitches) RemoveConflictsWithFullStitch(fullstitch FullStitch) []FullStitch {
	var conflicts []FullStitch

	x := fullstitch.X.Half()
	y := fullstitch.Y.Half()
	petite := fullstitch
	petite.Kind = FullStitchKindPetite

	for _, candidate := range []FullStitch{
		petite,
		{X: x, Y: petite.Y, Kind: FullStitchKindPetite},
		{X: petite.X, Y: y, Kind: FullStitchKindPetite},
		{X: x, Y: y, Kind: FullStitchKindPetite},
	} {
		if taken, ok := s.Take(candidate); ok {
			conflicts = append(conflicts, taken)
		}
	}

	return conflicts
}

// RemoveConflictsWithPetiteStitch removes and returns the full stitch
// covering the cell a new petite stitch falls into.
func (s *FullStitches) RemoveConflictsWithPetiteStitch(petite FullStitch) []FullStitch {
	var conflicts []FullStitch

	full := FullStitch{
		X:    petite.X.Trunc(),
		Y:    petite.Y.Trunc(),
		Kind: FullStitchKindFull,
	}
	if taken, ok := s.Take(full); ok {
		conflicts = append(conflicts, taken)
	}

	return conflicts
}

// RemoveConflictsWithHalfStitch removes and returns the full stitch of the
// cell plus the two petites on the quadrants the half stitch's diagonal
// touches: top-right and bottom-left for /, top-left and bottom-right for \.
func (s *FullStitches) RemoveConflictsWithHalfStitch(half PartStitch) []FullStitch {
	var conflicts []FullStitch

	base := half.ToFullStitch()
	x := half.X.Half()
	y := half.Y.Half()

	var petites []FullStitch
	switch half.Direction {
	case PartStitchDirectionForward:
		petites = []FullStitch{
			{X: x, Y: base.Y, Kind: FullStitchKindPetite},
			{X: base.X, Y: y, Kind: FullStitchKindPetite},
		}
	case PartStitchDirectionBackward:
		petites = []FullStitch{
			{X: base.X, Y: base.Y, Kind: FullStitchKindPetite},
			{X: x, Y: y, Kind: FullStitchKindPetite},
		}
	}
	for _, petite := range petites {
		if taken, ok := s.Take(petite); ok {
			conflicts = append(conflicts, taken)
		}
	}

	if taken, ok := s.Take(base); ok {
		conflicts = append(conflicts, taken)
	}

	return conflicts
}

// RemoveConflictsWithQuarterStitch removes and returns the full stitch of
// the cell and the petite on the quadrant a new quarter stitch covers.
func (s *FullStitches) RemoveConflictsWithQuarterStitch(quarter PartStitch) []FullStitch {
	var conflicts []FullStitch

	for _, candidate := range []FullStitch{
		{X: quarter.X.Trunc(), Y: quarter.Y.Trunc(), Kind: FullStitchKindFull},
		quarter.ToFullStitch(),
	} {
		if taken, ok := s.Take(candidate); ok {
			conflicts = append(conflicts, taken)
		}
	}

	return conflicts
}

// RemoveOutsideBounds removes and returns every stitch whose anchor lies
// outside [x, x+width) x [y, y+height).
func (s *FullStitches) RemoveOutsideBounds(x, y, width, height uint16) []FullStitch {
	left, top := Coord(x), Coord(y)
	right, bottom := Coord(x+width), Coord(y+height)
	return s.retain(func(stitch FullStitch) bool {
		return stitch.X >= left && stitch.X < right && stitch.Y >= top && stitch.Y < bottom
	})
}

// PartStitches is the ordered set of half and quarter stitches of a pattern.
type PartStitches struct {
	StitchSet[PartStitch]
}

// RemoveConflictsWithFullStitch removes and returns the half stitches (both
// directions) and the quarters in all four quadrants of the cell a new full
// stitch covers.
func (s *PartStitches) RemoveConflictsWithFullStitch(fullstitch FullStitch) []PartStitch {
	var conflicts []PartStitch

	base := fullstitch.ToPartStitch()
	x := fullstitch.X.Half()
	y := fullstitch.Y.Half()

	for _, candidate := range []PartStitch{
		{X: base.X, Y: base.Y, Kind: PartStitchKindHalf, Direction: PartStitchDirectionForward},
		{X: base.X, Y: base.Y, Kind: PartStitchKindHalf, Direction: PartStitchDirectionBackward},
		{X: base.X, Y: base.Y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionBackward},
		{X: x, Y: base.Y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionForward},
		{X: base.X, Y: y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionForward},
		{X: x, Y: y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionBackward},
	} {
		if taken, ok := s.Take(candidate); ok {
			conflicts = append(conflicts, taken)
		}
	}

	return conflicts
}

// RemoveConflictsWithPetiteStitch removes and returns the half stitch whose
// diagonal passes through the quadrant a new petite stitch covers, plus the
// quarter on that quadrant.
func (s *PartStitches) RemoveConflictsWithPetiteStitch(petite FullStitch) []PartStitch {
	var conflicts []PartStitch

	direction := PartStitchDirectionForCoords(petite.X, petite.Y)
	half := PartStitch{
		X:         petite.X.Trunc(),
		Y:         petite.Y.Trunc(),
		Direction: direction,
		Kind:      PartStitchKindHalf,
	}
	if taken, ok := s.Take(half); ok {
		conflicts = append(conflicts, taken)
	}

	quarter := PartStitch{X: petite.X, Y: petite.Y, Direction: direction, Kind: PartStitchKindQuarter}
	if taken, ok := s.Take(quarter); ok {
		conflicts = append(conflicts, taken)
	}

	return conflicts
}

// RemoveConflictsWithHalfStitch removes and returns the same-direction half
// stitch of the cell and the quarters on the two quadrants the half's
// diagonal touches. Quarters on the other diagonal coexist with the half.
func (s *PartStitches) RemoveConflictsWithHalfStitch(half PartStitch) []PartStitch {
	var conflicts []PartStitch

	x := half.X.Half()
	y := half.Y.Half()

	var quarters []PartStitch
	switch half.Direction {
	case PartStitchDirectionForward:
		quarters = []PartStitch{
			{X: x, Y: half.Y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionForward},
			{X: half.X, Y: y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionForward},
		}
	case PartStitchDirectionBackward:
		quarters = []PartStitch{
			{X: half.X, Y: half.Y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionBackward},
			{X: x, Y: y, Kind: PartStitchKindQuarter, Direction: PartStitchDirectionBackward},
		}
	}
	for _, quarter := range quarters {
		if taken, ok := s.Take(quarter); ok {
			conflicts = append(conflicts, taken)
		}
	}

	return conflicts
}

// RemoveConflictsWithQuarterStitch removes and returns the half stitch whose
// diagonal passes through the quadrant a new quarter stitch covers.
func (s *PartStitches) RemoveConflictsWithQuarterStitch(quarter PartStitch) []PartStitch {
	var conflicts []PartStitch

	half := PartStitch{
		X:         quarter.X.Trunc(),
		Y:         quarter.Y.Trunc(),
		Direction: PartStitchDirectionForCoords(quarter.X, quarter.Y),
		Kind:      PartStitchKindHalf,
	}
	if taken, ok := s.Take(half); ok {
		conflicts = append(conflicts, taken)
	}

	return conflicts
}

// RemoveOutsideBounds removes and returns every stitch whose anchor lies
// outside [x, x+width) x [y, y+height).
func (s *PartStitches) RemoveOutsideBounds(x, y, width, height uint16) []PartStitch {
	left, top := Coord(x), Coord(y)
	right, bottom := Coord(x+width), Coord(y+height)
	return s.retain(func(stitch PartStitch) bool {
		return stitch.X >= left && stitch.X < right && stitch.Y >= top && stitch.Y < bottom
	})
}

// LineStitches is the ordered set of back and straight stitches of a pattern.
type LineStitches struct {
	StitchSet[LineStitch]
}

// RemoveOutsideBounds removes and returns every line with an endpoint outside
// the inclusive bound [x, x+width] x [y, y+height].
func (s *LineStitches) RemoveOutsideBounds(x, y, width, height uint16) []LineStitch {
	left, top := Coord(x), Coord(y)
	right, bottom := Coord(x+width), Coord(y+height)
	return s.retain(func(line LineStitch) bool {
		return line.X[0] >= left && line.X[1] >= left &&
			line.X[0] <= right && line.X[1] <= right &&
			line.Y[0] >= top && line.Y[1] >= top &&
			line.Y[0] <= bottom && line.Y[1] <= bottom
	})
}

// NodeStitches is the ordered set of french knots and beads of a pattern.
type NodeStitches struct {
	StitchSet[NodeStitch]
}

// RemoveOutsideBounds removes and returns every node whose anchor lies
// outside [x, x+width) x [y, y+height).
func (s *NodeStitches) RemoveOutsideBounds(x, y, width, height uint16) []NodeStitch {
	left, top := Coord(x), Coord(y)
	right, bottom := Coord(x+width), Coord(y+height)
	return s.retain(func(node NodeStitch) bool {
		return node.X >= left && node.X < right && node.Y >= top && node.Y < bottom
	})
}

// SpecialStitches is the ordered set of placed special stitches of a pattern.
type SpecialStitches struct {
	StitchSet[SpecialStitch]
}

// RemoveOutsideBounds removes and returns every special stitch whose anchor
// lies outside [x, x+width) x [y, y+height).
func (s *SpecialStitches) RemoveOutsideBounds(x, y, width, height uint16) []SpecialStitch {
	left, top := Coord(x), Coord(y)
	right, bottom := Coord(x+width), Coord(y+height)
	return s.retain(func(special SpecialStitch) bool {
		return special.X >= left && special.X < right && special.Y >= top && special.Y < bottom
	})
}
