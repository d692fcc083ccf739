package hxassets

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/angelbeltran/hxassets/htmx"
)

// Augment writes the htmx.HeaderStyles and htmx.HeaderDependencies headers
// into h. Only those two headers are touched. Empty sets are written as [].
func Augment(reg *Registry, h http.Header) {
	styles, deps := reg.contents()
	h.Set(htmx.HeaderStyles, encodeSet(styles))
	h.Set(htmx.HeaderDependencies, encodeSet(deps))
}

// encodeSet writes ids as a JSON array made of printable ASCII only, so the
// value is always a legal header field value.
func encodeSet(ids []string) string {
	// marshalling a []string cannot fail
	b, _ := json.Marshal(ids)
	return escapeNonASCII(b)
}

// escapeNonASCII rewrites every rune from DEL upwards as a \uXXXX escape.
// b is marshalled JSON, so such runes only occur inside strings.
func escapeNonASCII(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))

	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]

		switch {
		case r < utf8.RuneSelf-1:
			sb.WriteRune(r)
		case r > 0xffff:
			r -= 0x10000
			fmt.Fprintf(&sb, `\u%04x\u%04x`, 0xd800+(r>>10), 0xdc00+(r&0x3ff))
		default:
			fmt.Fprintf(&sb, `\u%04x`, r)
		}
	}

	return sb.String()
}

type options struct {
	logger *slog.Logger
	base   http.RoundTripper
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBaseTransport sets the RoundTripper NewClient sends requests through.
// It only applies to NewClient; Install has no transport and ignores it.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.base = rt
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = newLogger()
	}
	return o
}

// Install attaches the header augmenter to target. Call it once, after the
// hosting application finished its setup. The returned function detaches it.
// Of the options only WithLogger is used.
func Install(target *Target, reg *Registry, opts ...Option) (dispose func()) {
	o := buildOptions(opts)
	l := o.logger.With("event", EventConfigRequest)

	remove := target.AddEventListener(EventConfigRequest, func(e *ConfigRequestEvent) {
		Augment(reg, e.Header)
		RequestsAugmentedTotal.Inc()

		l.Debug("augmented request",
			"verb", e.Verb,
			"path", e.Path,
			"styles", e.Header.Get(htmx.HeaderStyles),
			"dependencies", e.Header.Get(htmx.HeaderDependencies),
		)
	})

	l.Debug("header augmenter installed")

	return func() {
		remove()
		l.Debug("header augmenter removed")
	}
}
