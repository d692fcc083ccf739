package hxassets

import (
	"net/http"
	"slices"
	"sync"
)

// EventConfigRequest fires right before a fragment request is sent.
// https://htmx.org/events/#htmx:configRequest
const EventConfigRequest = "htmx:configRequest"

// ConfigRequestEvent is handed to listeners of EventConfigRequest.
// Listeners may mutate Header; Verb and Path are informational.
type ConfigRequestEvent struct {
	Header http.Header
	Verb   string
	Path   string
}

type Listener func(e *ConfigRequestEvent)

// Target dispatches named events to listeners, the way a document body does
// for a page. The zero value is ready to use.
type Target struct {
	mu        sync.Mutex
	listeners map[string][]*listener
}

type listener struct {
	fn Listener
}

func NewTarget() *Target {
	return &Target{}
}

// AddEventListener attaches fn to the named event. The returned function
// detaches it again and may be called any number of times.
func (t *Target) AddEventListener(name string, fn Listener) (remove func()) {
	l := &listener{fn: fn}

	t.mu.Lock()
	if t.listeners == nil {
		t.listeners = make(map[string][]*listener)
	}
	t.listeners[name] = append(t.listeners[name], l)
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()

			t.listeners[name] = slices.DeleteFunc(t.listeners[name], func(other *listener) bool {
				return other == l
			})
			if len(t.listeners[name]) == 0 {
				delete(t.listeners, name)
			}
		})
	}
}

// Dispatch runs the listeners of the named event synchronously, in the order
// they were added. Listeners added or removed during dispatch take effect on
// the next dispatch.
func (t *Target) Dispatch(name string, e *ConfigRequestEvent) {
	t.mu.Lock()
	ls := slices.Clone(t.listeners[name])
	t.mu.Unlock()

	for _, l := range ls {
		l.fn(e)
	}
}

// ListenerCount reports how many listeners are attached to the named event.
func (t *Target) ListenerCount(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[name])
}
