// Package contracts defines the core interfaces of Open Stitch Studio.
// These interfaces establish the contracts between the document core and its
// hosts.
package contracts

// Event names emitted by the document core. The set is closed: every action
// declares which of these it emits, and receivers may ignore names they do
// not recognize.
const (
	EventStitchesAddOne     = "stitches:add_one"
	EventStitchesAddMany    = "stitches:add_many"
	EventStitchesRemoveOne  = "stitches:remove_one"
	EventStitchesRemoveMany = "stitches:remove_many"

	EventFabricUpdate = "fabric:update"
	EventGridUpdate   = "grid:update"

	EventDisplaySetMode     = "display:set_mode"
	EventDisplayShowSymbols = "display:show_symbols"

	EventPaletteAddItem               = "palette:add_palette_item"
	EventPaletteRemoveItems           = "palette:remove_palette_items"
	EventPaletteUpdateDisplaySettings = "palette:update_display_settings"
)

// EventSink receives the change notifications an action emits while it runs.
//
// The core calls Emit synchronously while holding the document lock, so
// implementations must not call back into the core from inside a handler.
// The payload is a length-prefixed blob produced by pkg/wire.
type EventSink interface {
	Emit(name string, payload []byte) error
}

// NopSink discards every event. Useful for headless operations.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(string, []byte) error { return nil }
