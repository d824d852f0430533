package models

import (
	"math"
	"testing"
)

func TestNewCoord(t *testing.T) {
	for _, value := range []float64{0, 1, -2, 0.5, 10.5, 3} {
		if _, err := NewCoord(value); err != nil {
			t.Errorf("NewCoord(%v) failed: %v", value, err)
		}
	}
}

func TestNewCoord_RejectsOffGrid(t *testing.T) {
	for _, value := range []float64{0.25, 1.1, -0.3} {
		if _, err := NewCoord(value); err == nil {
			t.Errorf("NewCoord(%v) should fail", value)
		}
	}
}

func TestNewCoord_RejectsNaN(t *testing.T) {
	if _, err := NewCoord(math.NaN()); err == nil {
		t.Error("NewCoord(NaN) should fail")
	}
}

func TestCoord_Fract(t *testing.T) {
	if got := Coord(1.5).Fract(); got != 0.5 {
		t.Errorf("Fract(1.5) = %v, want 0.5", got)
	}
	if got := Coord(2).Fract(); got != 0 {
		t.Errorf("Fract(2) = %v, want 0", got)
	}
}

func TestCoord_Trunc(t *testing.T) {
	if got := Coord(1.5).Trunc(); got != 1 {
		t.Errorf("Trunc(1.5) = %v, want 1", got)
	}
	if got := Coord(3).Trunc(); got != 3 {
		t.Errorf("Trunc(3) = %v, want 3", got)
	}
}
