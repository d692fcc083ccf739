package htmx

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

type (
	// Event is for triggering client-side events.
	Event struct {
		Name string
		// Details are optional.
		Details JSON
		// Target optionally can specify a target element.
		Target HTMLID
	}

	JSON   = any
	HTMLID = string
)

var (
	errNotAnJSONObject = errors.New("not a json object")

	ErrMalformedTrigger = errors.New("malformed trigger header")
)

func compileEvents(es []Event) ([]byte, error) {
	m := make(map[string]json.RawMessage, len(es))
	for _, e := range es {
		if e.Name == "" {
			return nil, fmt.Errorf("event without a name: %w", ErrMalformedTrigger)
		}

		details, err := e.compileDetailsForTriggerHeader()
		if err != nil {
			return nil, fmt.Errorf("unable to marshal details of event %q to json: %w", e.Name, err)
		}

		m[e.Name] = details
	}

	return json.Marshal(m)
}

// compileDetailsForTriggerHeader will return a json null if no details are specified.
func (e Event) compileDetailsForTriggerHeader() (json.RawMessage, error) {
	details := json.RawMessage("null")
	if e.Details != nil {
		b, err := json.Marshal(e.Details)
		if err != nil {
			return nil, err
		}
		details = b
	}

	if e.Target == "" {
		return details, nil
	}

	if string(details) == "null" {
		details = json.RawMessage("{}")
	}

	var obj map[string]json.RawMessage
	if len(details) == 0 || details[0] != '{' {
		return nil, fmt.Errorf("cannot add target to event details: %w", errNotAnJSONObject)
	}
	if err := json.Unmarshal(details, &obj); err != nil {
		return nil, fmt.Errorf("unable to unmarshal event details into a map: %w", err)
	}
	if obj == nil {
		obj = make(map[string]json.RawMessage, 1)
	}

	target, err := json.Marshal("#" + strings.TrimPrefix(e.Target, "#"))
	if err != nil {
		return nil, err
	}
	obj["target"] = target

	return json.Marshal(obj)
}

// ParseTrigger reads an HX-Trigger style header. Both the plain form
// ("evt1, evt2") and the JSON object form are accepted. Details of the JSON
// form are kept as json.RawMessage. Events come back sorted by name.
func ParseTrigger(raw string) ([]Event, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if raw[0] != '{' {
		var es []Event
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				es = append(es, Event{Name: name})
			}
		}
		return es, nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTrigger, err)
	}

	es := make([]Event, 0, len(m))
	for name, details := range m {
		e := Event{Name: name}
		if string(details) != "null" {
			e.Details = details
		}
		es = append(es, e)
	}
	slices.SortFunc(es, func(a, b Event) int {
		return strings.Compare(a.Name, b.Name)
	})

	return es, nil
}

// FindEvent returns the first event called name.
func FindEvent(es []Event, name string) (Event, bool) {
	i := slices.IndexFunc(es, func(e Event) bool {
		return e.Name == name
	})
	if i < 0 {
		return Event{}, false
	}
	return es[i], true
}
