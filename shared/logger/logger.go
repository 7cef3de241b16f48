package logger

import (
	"io"
	"os"
	"paroisse/config"
	"paroisse/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// InitLogger sets the global zerolog logger: JSON lines in production, a
// console writer elsewhere. The level comes from SERVER_LOG_LEVEL.
func InitLogger(cfg *config.Config) {
	InitLoggerTo(os.Stdout, cfg)
}

// InitLoggerTo is InitLogger writing to out.
func InitLoggerTo(out io.Writer, cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	writer := out
	if cfg.Server.Env != constant.ServerEnvProduction {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	context := zerolog.New(writer).With().Timestamp()
	if cfg.App.Name != "" {
		context = context.Str("app", cfg.App.Name)
	}

	log.Logger = context.Logger()

	zerolog.SetGlobalLevel(level(cfg.Server.LogLevel))
}

func level(raw string) zerolog.Level {
	if raw == "" {
		return defaultLevel
	}

	parsed, err := zerolog.ParseLevel(raw)
	if err != nil {
		log.Warn().Str("loglevel", raw).Msg("Unknown log level, using info")

		return defaultLevel
	}

	return parsed
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
