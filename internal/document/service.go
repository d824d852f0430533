package document

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ArmyClaw/open-stitch-studio/internal/core/actions"
	"github.com/ArmyClaw/open-stitch-studio/internal/data/cache"
	"github.com/ArmyClaw/open-stitch-studio/internal/fonts"
	"github.com/ArmyClaw/open-stitch-studio/internal/parser"
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/errors"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// Service is the command surface of the document core. Every command either
// completes, pushing its action onto the project history, or fails before
// any observable change. Events are emitted synchronously while the registry
// lock is held; receivers must not call back in.
type Service struct {
	registry *Registry
	sink     contracts.EventSink
	app      parser.AppInfo

	// documentsDir hosts the projects created without an explicit path.
	documentsDir string
	// fontDirs are scanned by the font commands.
	fontDirs []string
	// fontCache holds recently served font payloads.
	fontCache *cache.Cache
}

// NewService wires the command surface around a registry and an event sink.
func NewService(registry *Registry, sink contracts.EventSink, app parser.AppInfo, documentsDir string, fontDirs []string) *Service {
	if sink == nil {
		sink = contracts.NopSink{}
	}
	return &Service{
		registry:     registry,
		sink:         sink,
		app:          app,
		documentsDir: documentsDir,
		fontDirs:     fontDirs,
		fontCache:    cache.New(16, time.Hour),
	}
}

// LoadPattern parses a pattern file and registers it. Loading an already
// registered path is idempotent and returns the existing key.
func (s *Service) LoadPattern(path string) (PatternKey, error) {
	logger.Debug("Loading pattern")

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	key := KeyForPath(path)
	if _, ok := s.registry.get(key); ok {
		return key, nil
	}

	patproj, err := parser.ParsePattern(path)
	if err != nil {
		return "", err
	}

	// Keep the original file untouched: subsequent saves land next to it in
	// the default project format.
	ext := filepath.Ext(path)
	patproj.FilePath = strings.TrimSuffix(path, ext) + "." + parser.DefaultFormat.String()

	s.registry.insert(key, patproj)
	logger.Debug("Pattern loaded")
	return key, nil
}

// CreatePattern fabricates a project on the given fabric under a default
// path in the documents directory.
func (s *Service) CreatePattern(fabric models.Fabric) (PatternKey, error) {
	logger.Debug("Creating new pattern")

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj := models.NewPatternProject("", fabric)
	path := filepath.Join(s.documentsDir, patproj.Pattern.Info.Title+"."+parser.DefaultFormat.String())
	if _, taken := s.registry.get(KeyForPath(path)); taken {
		name := patproj.Pattern.Info.Title + "-" + uuid.NewString()
		path = filepath.Join(s.documentsDir, name+"."+parser.DefaultFormat.String())
	}
	patproj.FilePath = path

	key := KeyForPath(path)
	s.registry.insert(key, patproj)
	logger.Debug("Pattern has been created")
	return key, nil
}

// SavePattern rewrites the project's file path and serializes it in the
// format the extension selects. Saving to XSD is unsupported.
func (s *Service) SavePattern(key PatternKey, path string) error {
	logger.Debug("Saving pattern")

	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	if _, err := parser.FormatFromPath(path); err != nil {
		return err
	}

	previous := patproj.FilePath
	patproj.FilePath = path
	if err := parser.SavePattern(patproj, s.app); err != nil {
		patproj.FilePath = previous
		return err
	}
	logger.Debug("Pattern saved")
	return nil
}

// ClosePattern drops a project and its history from the registry.
func (s *Service) ClosePattern(key PatternKey) error {
	logger.Debug("Closing pattern")
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	s.registry.remove(key)
	return nil
}

// PatternFilePath returns the file path a project will save to.
func (s *Service) PatternFilePath(key PatternKey) (string, error) {
	s.registry.mu.RLock()
	defer s.registry.mu.RUnlock()
	patproj, ok := s.registry.get(key)
	if !ok {
		return "", errors.ErrPatternNotFound.WithField("key", string(key))
	}
	return patproj.FilePath, nil
}

// WithProject runs a read-only callback on a loaded project under the read
// lock. Rendering queries use this.
func (s *Service) WithProject(key PatternKey, fn func(*models.PatternProject)) error {
	s.registry.mu.RLock()
	defer s.registry.mu.RUnlock()
	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	fn(patproj)
	return nil
}

// perform runs an action on a loaded project and pushes it onto the
// project's history.
func (s *Service) perform(key PatternKey, action actions.Action) error {
	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	if err := action.Perform(s.sink, patproj); err != nil {
		return err
	}
	s.registry.getHistory(key).Push(action)
	return nil
}

// SetDisplayMode switches the rendering mode of a document.
func (s *Service) SetDisplayMode(key PatternKey, mode string) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	return s.perform(key, actions.NewSetDisplayModeAction(models.ParseDisplayMode(mode)))
}

// ShowSymbols toggles symbol rendering of a document.
func (s *Service) ShowSymbols(key PatternKey, value bool) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	return s.perform(key, actions.NewShowSymbolsAction(value))
}

// UpdateFabric replaces the fabric of a pattern, purging stitches that no
// longer fit.
func (s *Service) UpdateFabric(key PatternKey, fabric models.Fabric) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	return s.perform(key, actions.NewUpdateFabricAction(fabric))
}

// UpdateGrid replaces the grid settings of a document.
func (s *Service) UpdateGrid(key PatternKey, grid models.Grid) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	return s.perform(key, actions.NewUpdateGridAction(grid))
}

// AddPaletteItem appends a color entry. Adding an entry the palette already
// contains (by structural equality) is a no-op.
func (s *Service) AddPaletteItem(key PatternKey, item models.PaletteItem) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	for _, existing := range patproj.Pattern.Palette {
		if existing.Equal(item) {
			return nil
		}
	}
	return s.perform(key, actions.NewAddPaletteItemAction(item))
}

// RemovePaletteItems deletes the palette entries at the given indices along
// with every stitch referencing them.
func (s *Service) RemovePaletteItems(key PatternKey, palindexes []uint32) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	for _, palindex := range palindexes {
		if int(palindex) >= len(patproj.Pattern.Palette) {
			return errors.ErrInvalidPalindex.WithField("palindex", palindex)
		}
	}
	return s.perform(key, actions.NewRemovePaletteItemsAction(palindexes))
}

// UpdatePaletteDisplaySettings replaces the palette panel settings.
func (s *Service) UpdatePaletteDisplaySettings(key PatternKey, settings models.PaletteSettings) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()
	return s.perform(key, actions.NewUpdatePaletteDisplaySettingsAction(settings))
}

// AddStitch adds a stitch to a pattern, resolving conflicts. Adding a stitch
// the pattern already contains returns false without touching the history.
func (s *Service) AddStitch(key PatternKey, stitch models.Stitch) (bool, error) {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return false, errors.ErrPatternNotFound.WithField("key", string(key))
	}
	if err := validateStitch(stitch, len(patproj.Pattern.Palette)); err != nil {
		return false, err
	}
	if patproj.Pattern.ContainsStitch(stitch) {
		return false, nil
	}
	if err := s.perform(key, actions.NewAddStitchAction(stitch)); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveStitch removes the stitch matching the reference. Removing a stitch
// that is not present returns false without touching the history.
func (s *Service) RemoveStitch(key PatternKey, stitch models.Stitch) (bool, error) {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return false, errors.ErrPatternNotFound.WithField("key", string(key))
	}
	// The reference may carry only the key fields; resolve the stored stitch
	// so undo can restore it in full.
	stored, ok := patproj.Pattern.GetStitch(stitch)
	if !ok {
		return false, nil
	}
	if err := s.perform(key, actions.NewRemoveStitchAction(stored)); err != nil {
		return false, err
	}
	return true, nil
}

// Undo revokes the most recent action of a project. An empty history is a
// no-op.
func (s *Service) Undo(key PatternKey) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	return s.registry.getHistory(key).Undo(s.sink, patproj)
}

// Redo re-performs the most recently revoked action of a project. An empty
// redo stack is a no-op.
func (s *Service) Redo(key PatternKey) error {
	s.registry.mu.Lock()
	defer s.registry.mu.Unlock()

	patproj, ok := s.registry.get(key)
	if !ok {
		return errors.ErrPatternNotFound.WithField("key", string(key))
	}
	return s.registry.getHistory(key).Redo(s.sink, patproj)
}

// AllTextFontFamilies lists the font families available to symbol rendering.
func (s *Service) AllTextFontFamilies() ([]string, error) {
	return fonts.Families(s.fontDirs)
}

// LoadStitchFont loads the font file of a family by name. Payloads are
// cached; symbol rendering asks for the same few fonts over and over.
func (s *Service) LoadStitchFont(family string) ([]byte, error) {
	if data, ok := s.fontCache.Get(family); ok {
		return data, nil
	}
	data, err := fonts.Load(s.fontDirs, family)
	if err != nil {
		return nil, err
	}
	s.fontCache.Set(family, data)
	return data, nil
}

// validateStitch rejects stitches with off-grid coordinates or palette
// indices past the palette before anything observable happens.
func validateStitch(stitch models.Stitch, palsize int) error {
	checkCoord := func(c models.Coord) error {
		if math.IsNaN(float64(c)) || math.Mod(float64(c)*2, 1) != 0 {
			return errors.ErrInvalidCoord.WithField("coord", float64(c))
		}
		return nil
	}
	checkPalindex := func(palindex uint32) error {
		if int(palindex) >= palsize {
			return errors.ErrInvalidPalindex.WithField("palindex", palindex)
		}
		return nil
	}

	switch v := stitch.(type) {
	case models.FullStitch:
		for _, c := range []models.Coord{v.X, v.Y} {
			if err := checkCoord(c); err != nil {
				return err
			}
		}
		return checkPalindex(v.Palindex)
	case models.PartStitch:
		for _, c := range []models.Coord{v.X, v.Y} {
			if err := checkCoord(c); err != nil {
				return err
			}
		}
		return checkPalindex(v.Palindex)
	case models.LineStitch:
		for _, c := range []models.Coord{v.X[0], v.X[1], v.Y[0], v.Y[1]} {
			if err := checkCoord(c); err != nil {
				return err
			}
		}
		return checkPalindex(v.Palindex)
	case models.NodeStitch:
		for _, c := range []models.Coord{v.X, v.Y} {
			if err := checkCoord(c); err != nil {
				return err
			}
		}
		return checkPalindex(v.Palindex)
	default:
		return errors.ErrInvalidStitch
	}
}

// EnsureDocumentsDir creates the documents directory on first launch and
// copies the bundled sample patterns into it.
func EnsureDocumentsDir(documentsDir, samplesDir string) error {
	if _, err := os.Stat(documentsDir); err == nil {
		return nil
	}
	logger.Debug("Creating the app document directory")
	if err := os.MkdirAll(documentsDir, 0o755); err != nil {
		return errors.Wrap(err, errors.ErrIo.Code, "cannot create the documents directory").WithPath(documentsDir)
	}
	if samplesDir == "" {
		return nil
	}
	logger.Debug("Copying sample patterns to the app document directory")
	entries, err := os.ReadDir(samplesDir)
	if err != nil {
		return errors.Wrap(err, errors.ErrIo.Code, "cannot list the sample patterns").WithPath(samplesDir)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(samplesDir, entry.Name()))
		if err != nil {
			return errors.Wrap(err, errors.ErrIo.Code, "cannot read a sample pattern").WithPath(entry.Name())
		}
		if err := os.WriteFile(filepath.Join(documentsDir, entry.Name()), data, 0o644); err != nil {
			return errors.Wrap(err, errors.ErrIo.Code, "cannot copy a sample pattern").WithPath(entry.Name())
		}
	}
	return nil
}
