package hxassets

import (
	"log/slog"
	"os"

	"github.com/angelbeltran/hxassets/internal/logging"
)

var env_hxassets_loglevel = os.Getenv("HXASSETS_LOGLEVEL")

func newLogger() *slog.Logger {
	return logging.New(os.Stdout, logging.ParseLevel(env_hxassets_loglevel))
}
