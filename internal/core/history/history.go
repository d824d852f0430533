// Package history implements the per-project undo/redo stacks.
package history

import (
	"github.com/ArmyClaw/open-stitch-studio/internal/core/actions"
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// History holds the undo and redo stacks of one pattern project. It is
// retained for the document lifetime; there is no compaction.
type History struct {
	undo []actions.Action
	redo []actions.Action
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Push records a performed action on the undo stack and clears the redo
// stack.
func (h *History) Push(action actions.Action) {
	h.undo = append(h.undo, action)
	h.redo = h.redo[:0]
}

// Undo revokes the most recent action and moves it to the redo stack.
// An empty undo stack is a no-op.
func (h *History) Undo(sink contracts.EventSink, patproj *models.PatternProject) error {
	if len(h.undo) == 0 {
		return nil
	}
	action := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	if err := action.Revoke(sink, patproj); err != nil {
		return err
	}
	h.redo = append(h.redo, action)
	return nil
}

// Redo re-performs the most recently revoked action and moves it back to the
// undo stack. An empty redo stack is a no-op.
func (h *History) Redo(sink contracts.EventSink, patproj *models.PatternProject) error {
	if len(h.redo) == 0 {
		return nil
	}
	action := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	if err := action.Perform(sink, patproj); err != nil {
		return err
	}
	h.undo = append(h.undo, action)
	return nil
}

// UndoLen returns the undo stack depth.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the redo stack depth.
func (h *History) RedoLen() int { return len(h.redo) }
