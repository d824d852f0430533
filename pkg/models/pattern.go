// Package models defines the document model of Open Stitch Studio: the
// stitch primitives on the half-integer grid, the ordered stitch sets with
// their conflict-resolution rules, the palette, the fabric, and the
// per-document display settings.
package models

import (
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
)

// PatternInfo holds the descriptive metadata of a pattern.
type PatternInfo struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Company     string `json:"company"`
	Copyright   string `json:"copyright"`
	Description string `json:"description"`
}

// DefaultPatternInfo returns the metadata of a fresh pattern.
func DefaultPatternInfo() PatternInfo {
	return PatternInfo{Title: "Untitled"}
}

// Pattern aggregates the palette, the fabric and one ordered stitch set per
// primitive kind. It owns the conflict-resolution logic that spans the sets.
type Pattern struct {
	Info                PatternInfo          `json:"info"`
	Fabric              Fabric               `json:"fabric"`
	Palette             []PaletteItem        `json:"palette"`
	FullStitches        FullStitches         `json:"fullstitches"`
	PartStitches        PartStitches         `json:"partstitches"`
	LineStitches        LineStitches         `json:"linestitches"`
	NodeStitches        NodeStitches         `json:"nodestitches"`
	SpecialStitches     SpecialStitches      `json:"specialstitches"`
	SpecialStitchModels []SpecialStitchModel `json:"special_stitch_models"`
}

// NewPattern creates an empty pattern on the given fabric.
func NewPattern(fabric Fabric) *Pattern {
	return &Pattern{Info: DefaultPatternInfo(), Fabric: fabric}
}

// GetStitch looks up the stored stitch matching the reference's ordering key.
// The reference may carry only the key fields; the returned value carries the
// full stored state.
func (p *Pattern) GetStitch(stitch Stitch) (Stitch, bool) {
	switch s := stitch.(type) {
	case FullStitch:
		if stored, ok := p.FullStitches.Get(s); ok {
			return stored, true
		}
	case PartStitch:
		if stored, ok := p.PartStitches.Get(s); ok {
			return stored, true
		}
	case LineStitch:
		if stored, ok := p.LineStitches.Get(s); ok {
			return stored, true
		}
	case NodeStitch:
		if stored, ok := p.NodeStitches.Get(s); ok {
			return stored, true
		}
	}
	return nil, false
}

// ContainsStitch reports whether the pattern holds a stitch structurally
// equal to the given one.
func (p *Pattern) ContainsStitch(stitch Stitch) bool {
	switch s := stitch.(type) {
	case FullStitch:
		return p.FullStitches.Contains(s)
	case PartStitch:
		return p.PartStitches.Contains(s)
	case LineStitch:
		return p.LineStitches.Contains(s)
	case NodeStitch:
		return p.NodeStitches.Contains(s)
	}
	return false
}

// AddStitches adds many stitches, dropping the conflict lists. Used when
// restoring displaced stitches on undo.
func (p *Pattern) AddStitches(stitches []Stitch) {
	for _, stitch := range stitches {
		p.AddStitch(stitch)
	}
}

// AddStitch inserts a stitch and removes everything it overlaps per the
// conflict rules. The displaced stitches are returned, fulls before parts
// before lines before nodes.
func (p *Pattern) AddStitch(stitch Stitch) []Stitch {
	logger.Debug("Adding stitch")
	var conflicts []Stitch
	switch s := stitch.(type) {
	case FullStitch:
		switch s.Kind {
		case FullStitchKindFull:
			conflicts = append(conflicts, fullsToStitches(p.FullStitches.RemoveConflictsWithFullStitch(s))...)
			conflicts = append(conflicts, partsToStitches(p.PartStitches.RemoveConflictsWithFullStitch(s))...)
		case FullStitchKindPetite:
			conflicts = append(conflicts, fullsToStitches(p.FullStitches.RemoveConflictsWithPetiteStitch(s))...)
			conflicts = append(conflicts, partsToStitches(p.PartStitches.RemoveConflictsWithPetiteStitch(s))...)
		}
		if replaced, ok := p.FullStitches.Insert(s); ok {
			conflicts = append(conflicts, replaced)
		}
	case PartStitch:
		switch s.Kind {
		case PartStitchKindHalf:
			conflicts = append(conflicts, fullsToStitches(p.FullStitches.RemoveConflictsWithHalfStitch(s))...)
			conflicts = append(conflicts, partsToStitches(p.PartStitches.RemoveConflictsWithHalfStitch(s))...)
		case PartStitchKindQuarter:
			conflicts = append(conflicts, fullsToStitches(p.FullStitches.RemoveConflictsWithQuarterStitch(s))...)
			conflicts = append(conflicts, partsToStitches(p.PartStitches.RemoveConflictsWithQuarterStitch(s))...)
		}
		if replaced, ok := p.PartStitches.Insert(s); ok {
			conflicts = append(conflicts, replaced)
		}
	case LineStitch:
		if replaced, ok := p.LineStitches.Insert(s); ok {
			conflicts = append(conflicts, replaced)
		}
	case NodeStitch:
		if replaced, ok := p.NodeStitches.Insert(s); ok {
			conflicts = append(conflicts, replaced)
		}
	}
	return conflicts
}

// RemoveStitches removes many stitches by key.
func (p *Pattern) RemoveStitches(stitches []Stitch) {
	for _, stitch := range stitches {
		p.RemoveStitch(stitch)
	}
}

// RemoveStitch removes the stitch matching the reference's ordering key and
// returns the full stored value, so callers can restore it on undo.
func (p *Pattern) RemoveStitch(stitch Stitch) (Stitch, bool) {
	logger.Debug("Removing stitch")
	switch s := stitch.(type) {
	case FullStitch:
		if taken, ok := p.FullStitches.Take(s); ok {
			return taken, true
		}
	case PartStitch:
		if taken, ok := p.PartStitches.Take(s); ok {
			return taken, true
		}
	case LineStitch:
		if taken, ok := p.LineStitches.Take(s); ok {
			return taken, true
		}
	case NodeStitch:
		if taken, ok := p.NodeStitches.Take(s); ok {
			return taken, true
		}
	}
	return nil, false
}

// RemoveStitchesByPalindexes removes every stitch referencing one of the
// sorted palette indices and rewrites the survivors' indices down. The
// removed stitches are returned for undo.
func (p *Pattern) RemoveStitchesByPalindexes(palindexes []uint32) []Stitch {
	logger.Debug("Removing stitches by palette index")
	var removed []Stitch
	removed = append(removed, fullsToStitches(RemoveByPalindexes(&p.FullStitches.StitchSet, palindexes))...)
	removed = append(removed, partsToStitches(RemoveByPalindexes(&p.PartStitches.StitchSet, palindexes))...)
	removed = append(removed, linesToStitches(RemoveByPalindexes(&p.LineStitches.StitchSet, palindexes))...)
	removed = append(removed, nodesToStitches(RemoveByPalindexes(&p.NodeStitches.StitchSet, palindexes))...)
	return removed
}

// RestoreStitches is the inverse of RemoveStitchesByPalindexes. palsize is
// the palette size after the removed entries were reinserted.
func (p *Pattern) RestoreStitches(stitches []Stitch, palindexes []uint32, palsize uint32) {
	var fulls []FullStitch
	var parts []PartStitch
	var lines []LineStitch
	var nodes []NodeStitch
	for _, stitch := range stitches {
		switch s := stitch.(type) {
		case FullStitch:
			fulls = append(fulls, s)
		case PartStitch:
			parts = append(parts, s)
		case LineStitch:
			lines = append(lines, s)
		case NodeStitch:
			nodes = append(nodes, s)
		}
	}

	RestoreByPalindexes(&p.FullStitches.StitchSet, fulls, palindexes, palsize)
	RestoreByPalindexes(&p.PartStitches.StitchSet, parts, palindexes, palsize)
	RestoreByPalindexes(&p.LineStitches.StitchSet, lines, palindexes, palsize)
	RestoreByPalindexes(&p.NodeStitches.StitchSet, nodes, palindexes, palsize)
}

// RemoveStitchesOutsideBounds removes and returns every stitch whose anchor
// lies outside [x, x+width) x [y, y+height). Lines are removed when any
// endpoint leaves the inclusive bound.
func (p *Pattern) RemoveStitchesOutsideBounds(x, y, width, height uint16) []Stitch {
	logger.Debug("Removing stitches outside bounds")
	var removed []Stitch
	removed = append(removed, fullsToStitches(p.FullStitches.RemoveOutsideBounds(x, y, width, height))...)
	removed = append(removed, partsToStitches(p.PartStitches.RemoveOutsideBounds(x, y, width, height))...)
	removed = append(removed, linesToStitches(p.LineStitches.RemoveOutsideBounds(x, y, width, height))...)
	removed = append(removed, nodesToStitches(p.NodeStitches.RemoveOutsideBounds(x, y, width, height))...)
	return removed
}
