// Package actions implements the reversible operations of the document core.
// Every user-facing mutation is one Action: performing it applies the change
// and emits the matching events; revoking it restores the captured previous
// state. An action captures its undo state on the first perform only, so a
// redo re-uses what the first run observed.
package actions

import (
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// Action is a reversible operation on a pattern project.
//
// Revoke must only be called on an action whose Perform has run at least
// once; the history guarantees that ordering.
type Action interface {
	Perform(sink contracts.EventSink, patproj *models.PatternProject) error
	Revoke(sink contracts.EventSink, patproj *models.PatternProject) error
}
