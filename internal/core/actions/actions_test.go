package actions

import (
	"testing"
)

// recorderSink collects emitted events for assertions.
type recorderSink struct {
	events []recordedEvent
}

type recordedEvent struct {
	name    string
	payload []byte
}

func (r *recorderSink) Emit(name string, payload []byte) error {
	r.events = append(r.events, recordedEvent{name: name, payload: payload})
	return nil
}

func (r *recorderSink) names() []string {
	names := make([]string, 0, len(r.events))
	for _, event := range r.events {
		names = append(names, event.name)
	}
	return names
}

func (r *recorderSink) last() recordedEvent {
	return r.events[len(r.events)-1]
}

func (r *recorderSink) reset() {
	r.events = nil
}

func assertEvents(t *testing.T, sink *recorderSink, want ...string) {
	t.Helper()
	got := sink.names()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}
