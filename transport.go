package hxassets

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/angelbeltran/hxassets/htmx"
)

// Transport issues fragment requests. Before each request it dispatches
// EventConfigRequest on Target, and after each response it applies any
// teapot:register announcement to Registry.
type Transport struct {
	Base     http.RoundTripper
	Target   *Target
	Registry *Registry
	Logger   *slog.Logger
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	l := t.logger().With("method", req.Method, "url", req.URL.String())

	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	htmx.Wrap(req.Header).MarkHTMXRequest()

	if t.Target != nil {
		t.Target.Dispatch(EventConfigRequest, &ConfigRequestEvent{
			Header: req.Header,
			Verb:   req.Method,
			Path:   req.URL.Path,
		})
	}

	res, err := t.base().RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if t.Registry != nil {
		// a bad announcement never fails an otherwise good response
		if err := t.applyRegistration(res.Header, l); err != nil {
			TriggerDecodeErrorsTotal.Inc()
			l.With("error", err).Error("ignoring asset registration")
		}
	}

	return res, nil
}

func (t *Transport) applyRegistration(h http.Header, l *slog.Logger) error {
	raw := h.Get(htmx.HeaderTrigger)
	if raw == "" {
		return nil
	}

	r, ok, err := htmx.RegistrationFromTrigger(raw)
	if err != nil {
		return fmt.Errorf("failed to read asset registration from response: %w", err)
	}
	if !ok {
		return nil
	}

	err = errors.Join(
		t.Registry.AddStyles(r.Styles...),
		t.Registry.AddDependencies(r.Dependencies...),
	)
	RegistrationsAppliedTotal.WithLabelValues("style").Add(float64(len(r.Styles)))
	RegistrationsAppliedTotal.WithLabelValues("dependency").Add(float64(len(r.Dependencies)))

	l.Debug("registered announced assets", "styles", r.Styles, "dependencies", r.Dependencies)
	return err
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

// NewClient returns an http.Client whose requests go through a Transport
// bound to target and reg. Install must have been called on target for the
// registry headers to be written.
func NewClient(target *Target, reg *Registry, opts ...Option) *http.Client {
	o := buildOptions(opts)
	return &http.Client{
		Transport: &Transport{
			Base:     o.base,
			Target:   target,
			Registry: reg,
			Logger:   o.logger,
		},
	}
}
