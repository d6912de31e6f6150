package logger

import (
	"io"
	"time"

	"todofeed/config"
	"todofeed/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger points the global logger at a human readable console writer on out.
// Command line tools pass os.Stderr so their own output on stdout stays clean.
func InitLogger(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// UseJSONOutput swaps the console writer for structured JSON lines in production.
func UseJSONOutput(config *config.Config, out io.Writer) {
	if config.Server.Env != constant.ServerEnvProduction {
		return
	}

	log.Logger = zerolog.New(out).With().Timestamp().Str("app", config.App.Name).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies LOG_LEVEL. An unset or unknown level uses fallback.
func SetLogLevel(config *config.Config, fallback zerolog.Level) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == "" {
		level = fallback
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no usable log level, using fallback.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
