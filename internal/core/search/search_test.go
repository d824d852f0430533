package search

import (
	"testing"

	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
)

func catalogItems() []models.PaletteItem {
	return []models.PaletteItem{
		{Brand: "DMC", Number: "310", Name: "Black", Color: "000000"},
		{Brand: "DMC", Number: "321", Name: "Red", Color: "C63F47"},
		{Brand: "DMC", Number: "815", Name: "Garnet - Medium", Color: "871B3D"},
		{Brand: "Anchor", Number: "403", Name: "Black", Color: "000000"},
	}
}

func TestSearch_ExactNumber(t *testing.T) {
	engine := NewEngine()

	results := engine.Search("310", catalogItems(), Options{})
	if len(results) == 0 {
		t.Fatal("expected a match")
	}
	if results[0].Branch != "exact" || results[0].Item.Number != "310" {
		t.Errorf("best match = %+v, want exact 310", results[0])
	}
}

func TestSearch_ExactBrandAndNumber(t *testing.T) {
	engine := NewEngine()

	result, ok := engine.SearchOne("anchor 403", catalogItems())
	if !ok {
		t.Fatal("expected a match")
	}
	if result.Item.Brand != "Anchor" {
		t.Errorf("match = %+v, want the Anchor entry", result.Item)
	}
}

func TestSearch_KeywordsOverNames(t *testing.T) {
	engine := NewEngine()

	results := engine.Search("medium garnet", catalogItems(), Options{})
	if len(results) == 0 {
		t.Fatal("expected a match")
	}
	if results[0].Item.Number != "815" {
		t.Errorf("best match = %+v, want 815", results[0].Item)
	}
	if results[0].Confidence < 99 {
		t.Errorf("confidence = %v, want both words matched", results[0].Confidence)
	}
}

func TestSearch_ThresholdAndLimit(t *testing.T) {
	engine := NewEngine()

	results := engine.Search("black", catalogItems(), Options{Threshold: 50, Limit: 1})
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	engine := NewEngine()
	if results := engine.Search("  ", catalogItems(), Options{}); results != nil {
		t.Errorf("results = %v, want none", results)
	}
}
