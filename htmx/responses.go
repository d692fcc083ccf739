package htmx

import (
	"net/http"
)

// HTMX Response Headers
// https://htmx.org/docs/#response-headers

type ResponseHeader = Header

const (
	HeaderTriggerAfterSettle = "HX-Trigger-After-Settle"
	HeaderTriggerAfterSwap   = "HX-Trigger-After-Swap"
)

func NewResponseHeader() ResponseHeader {
	return ResponseHeader{
		Header: make(http.Header),
	}
}

// allows you to trigger client-side events
func (h ResponseHeader) Trigger(es ...Event) (Header, error) {
	return h.setEvents(HeaderTrigger, es)
}

// allows you to trigger client-side events after the settle step
func (h ResponseHeader) TriggerAfterSettle(es ...Event) (Header, error) {
	return h.setEvents(HeaderTriggerAfterSettle, es)
}

// allows you to trigger client-side events after the swap step
func (h ResponseHeader) TriggerAfterSwap(es ...Event) (Header, error) {
	return h.setEvents(HeaderTriggerAfterSwap, es)
}

// Events already present under key are kept unless es redefines them.
func (h ResponseHeader) setEvents(key string, es []Event) (Header, error) {
	if len(es) == 0 {
		return h, nil
	}

	existing, err := ParseTrigger(h.Get(key))
	if err != nil {
		return h, err
	}

	b, err := compileEvents(append(existing, es...))
	if err != nil {
		return h, err
	}

	h.Set(key, string(b))
	return h, nil
}
