package hxassets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/angelbeltran/hxassets/dependency"
	"github.com/angelbeltran/hxassets/htmx"
)

var ErrMalformedHeader = errors.New("malformed registry header")

// AlreadyLoaded is the server's view of a client registry.
type AlreadyLoaded struct {
	Styles       map[string]struct{}
	Dependencies map[dependency.Dependency]struct{}
}

func parseSet[T comparable](header, raw string, fn func(string) (T, error)) (map[T]struct{}, error) {
	result := map[T]struct{}{}
	if raw == "" {
		return result, nil
	}

	var strs []string
	if err := json.Unmarshal([]byte(raw), &strs); err != nil {
		HeaderDecodeErrorsTotal.WithLabelValues(header).Inc()
		return nil, fmt.Errorf("%w: %s %q: %w", ErrMalformedHeader, header, raw, err)
	}

	for _, str := range strs {
		key, err := fn(str)
		if err != nil {
			HeaderDecodeErrorsTotal.WithLabelValues(header).Inc()
			return nil, fmt.Errorf("%w: %s element %q: %w", ErrMalformedHeader, header, str, err)
		}
		result[key] = struct{}{}
	}

	return result, nil
}

// AlreadyLoadedFromRequest decodes the registry headers of r. A missing
// header counts as an empty set.
func AlreadyLoadedFromRequest(r *http.Request) (AlreadyLoaded, error) {
	h := htmx.Wrap(r.Header)

	styles, err := parseSet(htmx.HeaderStyles, h.GetStyles(), func(s string) (string, error) { return s, nil })
	if err != nil {
		return AlreadyLoaded{}, err
	}

	deps, err := parseSet(htmx.HeaderDependencies, h.GetDependencies(), dependency.Parse)
	if err != nil {
		return AlreadyLoaded{}, err
	}

	return AlreadyLoaded{
		Styles:       styles,
		Dependencies: deps,
	}, nil
}

// Missing filters styles and deps down to the ones the client lacks,
// keeping their order and dropping repeats.
func (al AlreadyLoaded) Missing(styles []string, deps []dependency.Dependency) ([]string, []dependency.Dependency) {
	var (
		missingStyles []string
		missingDeps   []dependency.Dependency
		seenStyles    = map[string]struct{}{}
		seenDeps      = map[dependency.Dependency]struct{}{}
	)

	for _, s := range styles {
		if _, ok := al.Styles[s]; ok {
			continue
		}
		if _, ok := seenStyles[s]; ok {
			continue
		}
		seenStyles[s] = struct{}{}
		missingStyles = append(missingStyles, s)
	}

	for _, d := range deps {
		if _, ok := al.Dependencies[d]; ok {
			continue
		}
		if _, ok := seenDeps[d]; ok {
			continue
		}
		seenDeps[d] = struct{}{}
		missingDeps = append(missingDeps, d)
	}

	return missingStyles, missingDeps
}

// Announce tells the client, through HX-Trigger, which of styles and deps
// this response delivers that it did not have yet. It returns what was
// announced.
func (al AlreadyLoaded) Announce(w http.ResponseWriter, styles []string, deps []dependency.Dependency) (htmx.Registration, error) {
	missingStyles, missingDeps := al.Missing(styles, deps)

	r := htmx.Registration{Styles: missingStyles}
	for _, d := range missingDeps {
		r.Dependencies = append(r.Dependencies, d.String())
	}

	if _, err := htmx.Wrap(w.Header()).Register(r); err != nil {
		return htmx.Registration{}, fmt.Errorf("failed to announce assets: %w", err)
	}

	return r, nil
}

type alreadyLoadedKey struct{}

func withAlreadyLoaded(ctx context.Context, al AlreadyLoaded) context.Context {
	return context.WithValue(ctx, alreadyLoadedKey{}, al)
}

// AlreadyLoadedFromContext returns what Middleware decoded for the request.
func AlreadyLoadedFromContext(ctx context.Context) (AlreadyLoaded, bool) {
	al, ok := ctx.Value(alreadyLoadedKey{}).(AlreadyLoaded)
	return al, ok
}

// Middleware decodes the registry headers once per request and stores them
// in the request context. Requests with malformed headers get a 400.
func Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = newLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			al, err := AlreadyLoadedFromRequest(r)
			if err != nil {
				logger.With("path", r.URL.Path, "error", err).
					Debug("rejecting request with malformed registry headers")
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			logger.Debug("client registry decoded",
				"path", r.URL.Path,
				"styles", len(al.Styles),
				"dependencies", len(al.Dependencies),
			)

			next.ServeHTTP(w, r.WithContext(withAlreadyLoaded(r.Context(), al)))
		})
	}
}
