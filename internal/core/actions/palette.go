package actions

import (
	"sort"

	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
	"github.com/ArmyClaw/open-stitch-studio/pkg/wire"
)

// AddedPaletteItemData is the payload of palette:add_palette_item.
type AddedPaletteItemData struct {
	Palitem  models.PaletteItem `json:"palitem"`
	Palindex uint32             `json:"palindex"`
}

// AddPaletteItemAction appends a color entry to the palette.
type AddPaletteItemAction struct {
	palitem models.PaletteItem
}

// NewAddPaletteItemAction creates an action that appends the given entry.
func NewAddPaletteItemAction(palitem models.PaletteItem) *AddPaletteItemAction {
	return &AddPaletteItemAction{palitem: palitem}
}

// Perform adds the palette item to the pattern.
//
// Emits:
//   - palette:add_palette_item with the added palette item and its index
func (a *AddPaletteItemAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	patproj.Pattern.Palette = append(patproj.Pattern.Palette, a.palitem)
	payload, err := wire.Encode(AddedPaletteItemData{
		Palitem:  a.palitem,
		Palindex: uint32(len(patproj.Pattern.Palette) - 1),
	})
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventPaletteAddItem, payload)
}

// Revoke removes the added palette item from the pattern.
//
// Emits:
//   - palette:remove_palette_items with the palette item index
func (a *AddPaletteItemAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	patproj.Pattern.Palette = patproj.Pattern.Palette[:len(patproj.Pattern.Palette)-1]
	payload, err := wire.Encode([]uint32{uint32(len(patproj.Pattern.Palette))})
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventPaletteRemoveItems, payload)
}

// RemovePaletteItemsAction deletes a set of palette entries, removes every
// stitch referencing them and rewrites the surviving stitches' indices.
type RemovePaletteItemsAction struct {
	palindexes []uint32

	palitems  []models.PaletteItem
	conflicts []models.Stitch
	captured  bool
}

// NewRemovePaletteItemsAction creates an action that deletes the entries at
// the given indices. The indices are sorted on construction.
func NewRemovePaletteItemsAction(palindexes []uint32) *RemovePaletteItemsAction {
	sorted := make([]uint32, len(palindexes))
	copy(sorted, palindexes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &RemovePaletteItemsAction{palindexes: sorted}
}

// Perform removes the palette items from the pattern.
//
// Emits:
//   - palette:remove_palette_items with the palette item indices
//   - stitches:remove_many with the stitches that referenced them
func (a *RemovePaletteItemsAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	palitems := make([]models.PaletteItem, 0, len(a.palindexes))
	for i := len(a.palindexes) - 1; i >= 0; i-- {
		palindex := int(a.palindexes[i])
		palitems = append(palitems, patproj.Pattern.Palette[palindex])
		patproj.Pattern.Palette = append(patproj.Pattern.Palette[:palindex], patproj.Pattern.Palette[palindex+1:]...)
	}
	payload, err := wire.Encode(a.palindexes)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventPaletteRemoveItems, payload); err != nil {
		return err
	}

	// Reverse so the items line up with palindexes again.
	for i, j := 0, len(palitems)-1; i < j; i, j = i+1, j-1 {
		palitems[i], palitems[j] = palitems[j], palitems[i]
	}

	conflicts := patproj.Pattern.RemoveStitchesByPalindexes(a.palindexes)
	payload, err = wire.Encode(conflicts)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventStitchesRemoveMany, payload); err != nil {
		return err
	}

	if !a.captured {
		a.palitems = palitems
		a.conflicts = conflicts
		a.captured = true
	}
	return nil
}

// Revoke adds the removed palette items back and restores their stitches.
//
// Emits:
//   - palette:add_palette_item once per restored palette item
//   - stitches:add_many with the restored stitches
func (a *RemovePaletteItemsAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	for i, palindex := range a.palindexes {
		palitem := a.palitems[i]
		patproj.Pattern.Palette = append(patproj.Pattern.Palette, models.PaletteItem{})
		copy(patproj.Pattern.Palette[palindex+1:], patproj.Pattern.Palette[palindex:])
		patproj.Pattern.Palette[palindex] = palitem

		payload, err := wire.Encode(AddedPaletteItemData{Palitem: palitem, Palindex: palindex})
		if err != nil {
			return err
		}
		if err := sink.Emit(contracts.EventPaletteAddItem, payload); err != nil {
			return err
		}
	}

	patproj.Pattern.RestoreStitches(a.conflicts, a.palindexes, uint32(len(patproj.Pattern.Palette)))
	payload, err := wire.Encode(a.conflicts)
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventStitchesAddMany, payload)
}
