// Command runtime_handlers serves htmx fragments that announce the assets
// they need, skipping whatever the client registry says it already has.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelbeltran/hxassets"
	"github.com/angelbeltran/hxassets/dependency"
)

var (
	fragmentStyles = []string{"card", "card-title"}
	fragmentDeps   = []dependency.Dependency{
		dependency.MustParse("script:htmx"),
		dependency.MustParse("style:colors"),
	}
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
	logger := slog.Default()

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Group(func(r chi.Router) {
		r.Use(hxassets.Middleware(logger))
		r.Get("/fragment", func(w http.ResponseWriter, r *http.Request) {
			al, _ := hxassets.AlreadyLoadedFromContext(r.Context())

			announced, err := al.Announce(w, fragmentStyles, fragmentDeps)
			if err != nil {
				logger.With("error", err).Error("failed to announce assets")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			logger.Debug("serving fragment", "announced", announced)
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, `<div class="card"><h2 class="card-title">Hello!</h2></div>`)
		})
	})

	srv := http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.With("error", err).
			Error("server shutdown with unexpected error")
		os.Exit(1)
	}
}
