package models

// PatternProject bundles a pattern with its file path and display settings.
// It is the unit of undo/redo scope.
type PatternProject struct {
	FilePath        string          `json:"file_path"`
	Pattern         Pattern         `json:"pattern"`
	DisplaySettings DisplaySettings `json:"display_settings"`
}

// NewPatternProject creates a project around a fresh pattern on the given
// fabric.
func NewPatternProject(filePath string, fabric Fabric) *PatternProject {
	return &PatternProject{
		FilePath:        filePath,
		Pattern:         *NewPattern(fabric),
		DisplaySettings: DefaultDisplaySettings(),
	}
}
