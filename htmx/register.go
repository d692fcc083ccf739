package htmx

import (
	"encoding/json"
	"fmt"
)

// EventRegister announces assets the response delivered, so the client can
// add them to its registry.
const EventRegister = "teapot:register"

type Registration struct {
	Styles       []string `json:"styles,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

func (r Registration) IsEmpty() bool {
	return len(r.Styles) == 0 && len(r.Dependencies) == 0
}

// Register adds an EventRegister event to the HX-Trigger header. Nothing is
// written for an empty registration.
func (h ResponseHeader) Register(r Registration) (Header, error) {
	if r.IsEmpty() {
		return h, nil
	}
	return h.Trigger(Event{Name: EventRegister, Details: r})
}

// RegistrationFromTrigger extracts the EventRegister payload from a raw
// HX-Trigger value. ok is false when the event is absent.
func RegistrationFromTrigger(raw string) (r Registration, ok bool, err error) {
	es, err := ParseTrigger(raw)
	if err != nil {
		return Registration{}, false, err
	}

	e, ok := FindEvent(es, EventRegister)
	if !ok || e.Details == nil {
		return Registration{}, ok, nil
	}

	details, isRaw := e.Details.(json.RawMessage)
	if !isRaw {
		return Registration{}, true, fmt.Errorf("unexpected details type %T: %w", e.Details, ErrMalformedTrigger)
	}
	if err := json.Unmarshal(details, &r); err != nil {
		return Registration{}, true, fmt.Errorf("unable to decode %s details: %w", EventRegister, err)
	}

	return r, true, nil
}
