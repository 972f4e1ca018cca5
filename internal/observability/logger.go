package observability

import (
	"github.com/danmuck/nibblekit/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the runtime logger tagged with app as the global logger.
func InitLogger(app string) zerolog.Logger {
	cfg := logging.DefaultConfig(logging.ProfileRuntime)
	logging.ApplyEnvOverrides(&cfg)
	logger := logging.NewLogger(cfg).With().Str("app", app).Logger()
	log.Logger = logger
	zerolog.SetGlobalLevel(cfg.Level)
	return logger
}
