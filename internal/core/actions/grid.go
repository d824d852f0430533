package actions

import (
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
	"github.com/ArmyClaw/open-stitch-studio/pkg/wire"
)

// UpdateGridAction replaces the grid settings of a document.
type UpdateGridAction struct {
	grid models.Grid

	previous models.Grid
	captured bool
}

// NewUpdateGridAction creates an action that installs the given grid.
func NewUpdateGridAction(grid models.Grid) *UpdateGridAction {
	return &UpdateGridAction{grid: grid}
}

// Perform updates the grid properties.
//
// Emits:
//   - grid:update with the updated grid properties
func (a *UpdateGridAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(a.grid)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventGridUpdate, payload); err != nil {
		return err
	}
	previous := patproj.DisplaySettings.Grid
	patproj.DisplaySettings.Grid = a.grid
	if !a.captured {
		a.previous = previous
		a.captured = true
	}
	return nil
}

// Revoke restores the previous grid properties.
//
// Emits:
//   - grid:update with the previous grid properties
func (a *UpdateGridAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(a.previous)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventGridUpdate, payload); err != nil {
		return err
	}
	patproj.DisplaySettings.Grid = a.previous
	return nil
}
