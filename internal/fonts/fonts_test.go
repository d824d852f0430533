package fonts

import (
	"os"
	"path/filepath"
	"testing"
)

func fontDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"CrossStitch3.ttf", "Ursasoftware.otf", "README.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("font bytes"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestFamilies(t *testing.T) {
	families, err := Families([]string{fontDir(t), "/nonexistent"})
	if err != nil {
		t.Fatalf("Families failed: %v", err)
	}
	if len(families) != 2 {
		t.Fatalf("families = %v, want 2 entries", families)
	}
	if families[0] != "CrossStitch3" || families[1] != "Ursasoftware" {
		t.Errorf("families = %v", families)
	}
}

func TestLoad(t *testing.T) {
	dir := fontDir(t)

	data, err := Load([]string{dir}, "ursasoftware")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "font bytes" {
		t.Errorf("data = %q", data)
	}

	if _, err := Load([]string{dir}, "NoSuchFont"); err == nil {
		t.Error("loading an unknown family should fail")
	}
}
