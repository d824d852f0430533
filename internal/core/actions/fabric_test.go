package actions

import (
	"testing"

	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

func TestUpdateFabricAction_ShrinkPurgesStitches(t *testing.T) {
	sink := &recorderSink{}
	patproj := models.NewPatternProject("", models.Fabric{Width: 10, Height: 10})
	patproj.Pattern.AddStitch(models.FullStitch{X: 5, Y: 5, Kind: models.FullStitchKindFull})
	patproj.Pattern.AddStitch(models.FullStitch{X: 1, Y: 1, Kind: models.FullStitchKindFull})

	smaller := models.Fabric{Width: 3, Height: 3, Kind: "Aida", Name: "White", Color: "FFFFFF"}
	action := NewUpdateFabricAction(smaller)

	if err := action.Perform(sink, patproj); err != nil {
		t.Fatalf("perform failed: %v", err)
	}
	assertEvents(t, sink, "fabric:update", "stitches:remove_many")
	if patproj.Pattern.Fabric != smaller {
		t.Errorf("fabric = %+v, want %+v", patproj.Pattern.Fabric, smaller)
	}
	if patproj.Pattern.FullStitches.Len() != 1 {
		t.Errorf("full stitches = %d, want 1", patproj.Pattern.FullStitches.Len())
	}

	sink.reset()
	if err := action.Revoke(sink, patproj); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	assertEvents(t, sink, "fabric:update", "stitches:add_many")
	if patproj.Pattern.Fabric.Width != 10 || patproj.Pattern.Fabric.Height != 10 {
		t.Errorf("fabric not restored: %+v", patproj.Pattern.Fabric)
	}
	if !patproj.Pattern.ContainsStitch(models.FullStitch{X: 5, Y: 5, Kind: models.FullStitchKindFull}) {
		t.Error("the purged stitch should be restored")
	}
}

func TestUpdateFabricAction_GrowEmitsNoPurge(t *testing.T) {
	sink := &recorderSink{}
	patproj := models.NewPatternProject("", models.Fabric{Width: 10, Height: 10})

	action := NewUpdateFabricAction(models.Fabric{Width: 20, Height: 20})
	if err := action.Perform(sink, patproj); err != nil {
		t.Fatalf("perform failed: %v", err)
	}
	assertEvents(t, sink, "fabric:update")

	sink.reset()
	if err := action.Revoke(sink, patproj); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	assertEvents(t, sink, "fabric:update")
}
