package hxassets

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarget_Dispatch(t *testing.T) {
	target := NewTarget()

	var calls []string
	target.AddEventListener("a", func(e *ConfigRequestEvent) { calls = append(calls, "first") })
	target.AddEventListener("a", func(e *ConfigRequestEvent) { calls = append(calls, "second") })
	target.AddEventListener("b", func(e *ConfigRequestEvent) { calls = append(calls, "other") })

	target.Dispatch("a", &ConfigRequestEvent{Header: http.Header{}})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestTarget_Remove(t *testing.T) {
	target := NewTarget()

	var n int
	remove := target.AddEventListener("a", func(e *ConfigRequestEvent) { n++ })
	assert.Equal(t, 1, target.ListenerCount("a"))

	target.Dispatch("a", &ConfigRequestEvent{})
	remove()
	remove()
	target.Dispatch("a", &ConfigRequestEvent{})

	assert.Equal(t, 1, n)
	assert.Zero(t, target.ListenerCount("a"))
}

func TestTarget_RemoveDuringDispatch(t *testing.T) {
	var target Target

	var n int
	var remove func()
	remove = target.AddEventListener("a", func(e *ConfigRequestEvent) {
		n++
		remove()
	})

	target.Dispatch("a", &ConfigRequestEvent{})
	target.Dispatch("a", &ConfigRequestEvent{})

	assert.Equal(t, 1, n)
}

func TestTarget_NoListeners(t *testing.T) {
	assert.NotPanics(t, func() {
		NewTarget().Dispatch(EventConfigRequest, &ConfigRequestEvent{})
	})
}
