// Package document hosts the open-pattern registry and the command surface
// of the document core.
package document

import (
	"path/filepath"
	"sync"

	"github.com/ArmyClaw/open-stitch-studio/internal/core/history"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// PatternKey identifies a loaded pattern project. It is derived from the
// canonical file path.
type PatternKey string

// KeyForPath derives the registry key of a project file.
func KeyForPath(path string) PatternKey {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return PatternKey(path)
}

// Registry maps pattern keys to live projects and their histories. A single
// reader-writer lock serializes all mutations; concurrent reads are
// permitted.
type Registry struct {
	mu       sync.RWMutex
	patterns map[PatternKey]*models.PatternProject
	history  map[PatternKey]*history.History
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		patterns: make(map[PatternKey]*models.PatternProject),
		history:  make(map[PatternKey]*history.History),
	}
}

// get returns the project under the key. The caller must hold the lock.
func (r *Registry) get(key PatternKey) (*models.PatternProject, bool) {
	patproj, ok := r.patterns[key]
	return patproj, ok
}

// getHistory returns the history of a loaded project, creating it on first
// use. The caller must hold the write lock.
func (r *Registry) getHistory(key PatternKey) *history.History {
	h, ok := r.history[key]
	if !ok {
		h = history.New()
		r.history[key] = h
	}
	return h
}

// insert registers a project under the key. The caller must hold the write
// lock.
func (r *Registry) insert(key PatternKey, patproj *models.PatternProject) {
	r.patterns[key] = patproj
}

// remove drops a project and its history. The caller must hold the write
// lock.
func (r *Registry) remove(key PatternKey) {
	delete(r.patterns, key)
	delete(r.history, key)
}

// Len returns the number of loaded projects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}
