package actions

import (
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
	"github.com/ArmyClaw/open-stitch-studio/pkg/wire"
)

// AddStitchAction adds a stitch to the pattern, displacing every stitch it
// conflicts with.
type AddStitchAction struct {
	stitch models.Stitch

	conflicts []models.Stitch
	captured  bool
}

// NewAddStitchAction creates an action that adds the given stitch.
func NewAddStitchAction(stitch models.Stitch) *AddStitchAction {
	return &AddStitchAction{stitch: stitch}
}

// Perform adds the stitch to the pattern.
//
// Emits:
//   - stitches:add_one with the added stitch
//   - stitches:remove_many with the displaced stitches
func (a *AddStitchAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	conflicts := patproj.Pattern.AddStitch(a.stitch)
	payload, err := wire.Encode(a.stitch)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventStitchesAddOne, payload); err != nil {
		return err
	}
	payload, err = wire.Encode(conflicts)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventStitchesRemoveMany, payload); err != nil {
		return err
	}
	if !a.captured {
		a.conflicts = conflicts
		a.captured = true
	}
	return nil
}

// Revoke removes the added stitch and restores the displaced ones.
//
// Emits:
//   - stitches:remove_one with the removed stitch
//   - stitches:add_many with the restored stitches
func (a *AddStitchAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	patproj.Pattern.RemoveStitch(a.stitch)
	patproj.Pattern.AddStitches(a.conflicts)
	payload, err := wire.Encode(a.stitch)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventStitchesRemoveOne, payload); err != nil {
		return err
	}
	payload, err = wire.Encode(a.conflicts)
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventStitchesAddMany, payload)
}

// RemoveStitchAction removes a stitch from the pattern.
type RemoveStitchAction struct {
	// The target carries only the key fields of the stitch to remove.
	target models.Stitch
	// The actual stitch, with all its properties, is captured on perform.
	actual   models.Stitch
	captured bool
}

// NewRemoveStitchAction creates an action that removes the stitch matching
// the given reference.
func NewRemoveStitchAction(stitch models.Stitch) *RemoveStitchAction {
	return &RemoveStitchAction{target: stitch}
}

// Perform removes the stitch from the pattern.
//
// Emits:
//   - stitches:remove_one with the removed stitch
func (a *RemoveStitchAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	stitch, ok := patproj.Pattern.RemoveStitch(a.target)
	if !ok {
		stitch = a.actual
	}
	if !a.captured {
		a.actual = stitch
		a.captured = true
	}
	payload, err := wire.Encode(stitch)
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventStitchesRemoveOne, payload)
}

// Revoke adds the removed stitch back to the pattern.
//
// Emits:
//   - stitches:add_one with the added stitch
func (a *RemoveStitchAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	patproj.Pattern.AddStitch(a.actual)
	payload, err := wire.Encode(a.actual)
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventStitchesAddOne, payload)
}
