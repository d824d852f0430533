package actions

import (
	"github.com/ArmyClaw/open-stitch-studio/pkg/contracts"
	"github.com/ArmyClaw/open-stitch-studio/pkg/models"
	"github.com/ArmyClaw/open-stitch-studio/pkg/wire"
)

// SetDisplayModeAction switches the rendering mode of a document.
type SetDisplayModeAction struct {
	mode models.DisplayMode

	previous models.DisplayMode
	captured bool
}

// NewSetDisplayModeAction creates an action that installs the given mode.
func NewSetDisplayModeAction(mode models.DisplayMode) *SetDisplayModeAction {
	return &SetDisplayModeAction{mode: mode}
}

// Perform updates the display mode.
//
// Emits:
//   - display:set_mode with the updated display mode
func (a *SetDisplayModeAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(string(a.mode))
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventDisplaySetMode, payload); err != nil {
		return err
	}
	previous := patproj.DisplaySettings.DisplayMode
	patproj.DisplaySettings.DisplayMode = a.mode
	if !a.captured {
		a.previous = previous
		a.captured = true
	}
	return nil
}

// Revoke restores the previous display mode.
//
// Emits:
//   - display:set_mode with the previous display mode
func (a *SetDisplayModeAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(string(a.previous))
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventDisplaySetMode, payload); err != nil {
		return err
	}
	patproj.DisplaySettings.DisplayMode = a.previous
	return nil
}

// ShowSymbolsAction toggles symbol rendering. The boolean is its own
// inverse, so nothing needs to be captured.
type ShowSymbolsAction struct {
	value bool
}

// NewShowSymbolsAction creates an action that sets symbol visibility.
func NewShowSymbolsAction(value bool) *ShowSymbolsAction {
	return &ShowSymbolsAction{value: value}
}

// Perform updates the display setting for showing symbols.
//
// Emits:
//   - display:show_symbols with the new value
func (a *ShowSymbolsAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	patproj.DisplaySettings.ShowSymbols = a.value
	payload, err := wire.Encode(a.value)
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventDisplayShowSymbols, payload)
}

// Revoke toggles the display setting back.
//
// Emits:
//   - display:show_symbols with the new value
func (a *ShowSymbolsAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	patproj.DisplaySettings.ShowSymbols = !a.value
	payload, err := wire.Encode(!a.value)
	if err != nil {
		return err
	}
	return sink.Emit(contracts.EventDisplayShowSymbols, payload)
}

// UpdatePaletteDisplaySettingsAction replaces the palette panel settings.
type UpdatePaletteDisplaySettingsAction struct {
	settings models.PaletteSettings

	previous models.PaletteSettings
	captured bool
}

// NewUpdatePaletteDisplaySettingsAction creates an action that installs the
// given palette panel settings.
func NewUpdatePaletteDisplaySettingsAction(settings models.PaletteSettings) *UpdatePaletteDisplaySettingsAction {
	return &UpdatePaletteDisplaySettingsAction{settings: settings}
}

// Perform updates the display settings of the palette.
//
// Emits:
//   - palette:update_display_settings with the new display settings
func (a *UpdatePaletteDisplaySettingsAction) Perform(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(a.settings)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventPaletteUpdateDisplaySettings, payload); err != nil {
		return err
	}
	previous := patproj.DisplaySettings.PaletteSettings
	patproj.DisplaySettings.PaletteSettings = a.settings
	if !a.captured {
		a.previous = previous
		a.captured = true
	}
	return nil
}

// Revoke restores the previous display settings of the palette.
//
// Emits:
//   - palette:update_display_settings with the old display settings
func (a *UpdatePaletteDisplaySettingsAction) Revoke(sink contracts.EventSink, patproj *models.PatternProject) error {
	payload, err := wire.Encode(a.previous)
	if err != nil {
		return err
	}
	if err := sink.Emit(contracts.EventPaletteUpdateDisplaySettings, payload); err != nil {
		return err
	}
	patproj.DisplaySettings.PaletteSettings = a.previous
	return nil
}
