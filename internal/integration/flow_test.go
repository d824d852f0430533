package integration

import (
	"path/filepath"
	"testing"

	"github.com/ArmyClaw/open-stitch-studio/internal/document"
	"github.com/ArmyClaw/open-stitch-studio/internal/parser"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

// TestCompleteFlow_Integration walks the full document lifecycle: create,
// edit with conflicts, undo/redo, save as a bundle and reload.
func TestCompleteFlow_Integration(t *testing.T) {
	// 1. Wire the command surface.
	service := document.NewService(
		document.NewRegistry(),
		nil,
		parser.AppInfo{Name: "Open Stitch Studio", Version: "test"},
		t.TempDir(),
		nil,
	)

	// 2. Create a project and a palette.
	key, err := service.CreatePattern(models.DefaultFabric())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	for _, item := range []models.PaletteItem{
		{Brand: "DMC", Number: "310", Name: "Black", Color: "2C3225"},
		{Brand: "DMC", Number: "321", Name: "Red", Color: "C63F47"},
	} {
		if err := service.AddPaletteItem(key, item); err != nil {
			t.Fatalf("add palette item failed: %v", err)
		}
	}

	// 3. Stitch: a petite, then a full that displaces it.
	petite := models.FullStitch{X: 0.5, Y: 0, Palindex: 1, Kind: models.FullStitchKindPetite}
	if _, err := service.AddStitch(key, petite); err != nil {
		t.Fatal(err)
	}
	full := models.FullStitch{X: 0, Y: 0, Palindex: 0, Kind: models.FullStitchKindFull}
	if _, err := service.AddStitch(key, full); err != nil {
		t.Fatal(err)
	}
	service.WithProject(key, func(patproj *models.PatternProject) {
		if patproj.Pattern.ContainsStitch(petite) {
			t.Error("the petite should be displaced")
		}
	})

	// 4. Undo brings the petite back, redo displaces it again.
	if err := service.Undo(key); err != nil {
		t.Fatal(err)
	}
	service.WithProject(key, func(patproj *models.PatternProject) {
		if !patproj.Pattern.ContainsStitch(petite) {
			t.Error("undo should restore the petite")
		}
	})
	if err := service.Redo(key); err != nil {
		t.Fatal(err)
	}

	// 5. Line, node, display tweaks.
	if _, err := service.AddStitch(key, models.LineStitch{
		X: [2]models.Coord{0, 2}, Y: [2]models.Coord{0, 2}, Palindex: 1, Kind: models.LineStitchKindBack,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := service.AddStitch(key, models.NodeStitch{
		X: 3.5, Y: 3, Palindex: 0, Kind: models.NodeStitchKindFrenchKnot,
	}); err != nil {
		t.Fatal(err)
	}
	if err := service.SetDisplayMode(key, "Mixed"); err != nil {
		t.Fatal(err)
	}
	if err := service.ShowSymbols(key, true); err != nil {
		t.Fatal(err)
	}

	// 6. Save the bundle and reload it into a fresh service.
	target := filepath.Join(t.TempDir(), "flow.embproj")
	if err := service.SavePattern(key, target); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	fresh := document.NewService(
		document.NewRegistry(),
		nil,
		parser.AppInfo{Name: "Open Stitch Studio", Version: "test"},
		t.TempDir(),
		nil,
	)
	reloadedKey, err := fresh.LoadPattern(target)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	var original, reloaded models.Pattern
	var originalSettings, reloadedSettings models.DisplaySettings
	service.WithProject(key, func(patproj *models.PatternProject) {
		original = patproj.Pattern
		originalSettings = patproj.DisplaySettings
	})
	fresh.WithProject(reloadedKey, func(patproj *models.PatternProject) {
		reloaded = patproj.Pattern
		reloadedSettings = patproj.DisplaySettings
	})

	if len(reloaded.Palette) != len(original.Palette) {
		t.Fatalf("palette size = %d, want %d", len(reloaded.Palette), len(original.Palette))
	}
	if reloaded.FullStitches.Len() != original.FullStitches.Len() {
		t.Errorf("full stitches = %d, want %d", reloaded.FullStitches.Len(), original.FullStitches.Len())
	}
	if reloaded.LineStitches.Len() != original.LineStitches.Len() {
		t.Errorf("line stitches = %d, want %d", reloaded.LineStitches.Len(), original.LineStitches.Len())
	}
	if reloaded.NodeStitches.Len() != original.NodeStitches.Len() {
		t.Errorf("node stitches = %d, want %d", reloaded.NodeStitches.Len(), original.NodeStitches.Len())
	}
	if reloadedSettings.DisplayMode != originalSettings.DisplayMode {
		t.Errorf("display mode = %v, want %v", reloadedSettings.DisplayMode, originalSettings.DisplayMode)
	}
	if reloadedSettings.ShowSymbols != originalSettings.ShowSymbols {
		t.Errorf("show symbols = %v, want %v", reloadedSettings.ShowSymbols, originalSettings.ShowSymbols)
	}
}
