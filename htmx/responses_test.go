package htmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseHeader_Trigger(t *testing.T) {
	h := NewResponseHeader()
	_, err := h.Trigger(Event{
		Name: "ABC",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ABC":null}`, h.Get("HX-Trigger"))
}

func TestResponseHeader_TriggerAfterSettle(t *testing.T) {
	h := NewResponseHeader()
	_, err := h.TriggerAfterSettle(Event{
		Name:    "ABC",
		Details: "DEF",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ABC":"DEF"}`, h.Get("HX-Trigger-After-Settle"))
}

func TestResponseHeader_TriggerAfterSwap(t *testing.T) {
	h := NewResponseHeader()
	_, err := h.TriggerAfterSwap(Event{
		Name:   "ABC",
		Target: "GHI",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ABC":{"target":"#GHI"}}`, h.Get("HX-Trigger-After-Swap"))
}

func TestResponseHeader_Trigger_Merges(t *testing.T) {
	h := NewResponseHeader()
	_, err := h.Trigger(Event{Name: "first", Details: map[string]int{"n": 1}})
	require.NoError(t, err)
	_, err = h.Trigger(Event{Name: "second"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"first":{"n":1},"second":null}`, h.Get("HX-Trigger"))
}

func TestResponseHeader_Trigger_NoEvents(t *testing.T) {
	h := NewResponseHeader()
	_, err := h.Trigger()
	require.NoError(t, err)
	assert.Empty(t, h.Values("HX-Trigger"))
}

func TestResponseHeader_Trigger_Error(t *testing.T) {
	h := NewResponseHeader()
	_, err := h.Trigger(Event{Name: "ABC", Details: "text", Target: "x"})
	assert.Error(t, err)
	assert.Empty(t, h.Get("HX-Trigger"))

	_, err = h.Trigger(Event{})
	assert.ErrorIs(t, err, ErrMalformedTrigger)
}
