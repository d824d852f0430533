package actions

import (
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
	"github.com/ArmyClaw/open-stitch-studio/pkg/wire"
)

// UpdateFabricAction replaces the fabric of a pattern. Shrinking the fabric
// also purges the stitches that fall outside the new bounds.
type UpdateFabricAction struct {
	fabric models.Fabric

	previous models.Fabric
	purged   []models.Stitch
	captured bool
}

// NewUpdateFabricAction creates an action that installs the given fabric.
func NewUpdateFabricAction(fabric models.Fabric) *UpdateFabricAction {
	return &UpdateFabricAction{fabric: fabric}
}

// Perform updates the fabric properties and purges out-of-bounds stitches.
//
// Emits:
//   - fabric:update with the updated fabric properties
//   - stitches:remove_many with the purged stitches, when the fabric shrank
func (a *UpdateFabricAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(a.fabric)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventFabricUpdate, payload); err != nil {
		return err
	}

	previous := patproj.Pattern.Fabric
	patproj.Pattern.Fabric = a.fabric

	var purged []models.Stitch
	if a.fabric.Width < previous.Width || a.fabric.Height < previous.Height {
		purged = patproj.Pattern.RemoveStitchesOutsideBounds(0, 0, a.fabric.Width, a.fabric.Height)
		payload, err = wire.Encode(purged)
		if err != nil {
			return err
		}
		if err := sink.Emit(contracts.EventStitchesRemoveMany, payload); err != nil {
			return err
		}
	}

	if !a.captured {
		a.previous = previous
		a.purged = purged
		a.captured = true
	}
	return nil
}

// Revoke restores the previous fabric properties and the purged stitches.
//
// Emits:
//   - fabric:update with the previous fabric properties
//   - stitches:add_many with the restored stitches, when any were purged
func (a *UpdateFabricAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(a.previous)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventFabricUpdate, payload); err != nil {
		return err
	}

	patproj.Pattern.Fabric = a.previous
	if len(a.purged) > 0 {
		patproj.Pattern.AddStitches(a.purged)
		payload, err = wire.Encode(a.purged)
		if err != nil {
			return err
		}
		return sink.Emit(contracts.EventStitchesAddMany, payload)
	}
	return nil
}
