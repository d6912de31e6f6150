package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"todofeed/config"
	"todofeed/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preserveGlobals(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger_WritesToGivenOutput(t *testing.T) {
	preserveGlobals(t)

	var buf bytes.Buffer
	logger.InitLogger(&buf)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())

	log.Warn().Msg("todo store unreachable")
	assert.Contains(t, buf.String(), "todo store unreachable")
}

func TestErrorWithStack(t *testing.T) {
	preserveGlobals(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("insert into todos failed"))

	assert.Contains(t, buf.String(), "insert into todos failed")
	assert.Contains(t, buf.String(), "logger_test")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		fallback zerolog.Level
		want     zerolog.Level
	}{
		{name: "debug", logLevel: "debug", fallback: zerolog.InfoLevel, want: zerolog.DebugLevel},
		{name: "error", logLevel: "error", fallback: zerolog.InfoLevel, want: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", fallback: zerolog.InfoLevel, want: zerolog.Disabled},
		{name: "unknown uses fallback", logLevel: "loud", fallback: zerolog.InfoLevel, want: zerolog.InfoLevel},
		{name: "unset uses fallback", logLevel: "", fallback: zerolog.WarnLevel, want: zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preserveGlobals(t)

			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg, tt.fallback)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestUseJSONOutput(t *testing.T) {
	t.Run("left alone outside production", func(t *testing.T) {
		preserveGlobals(t)

		var console, jsonOut bytes.Buffer
		log.Logger = log.Output(&console)

		cfg := &config.Config{}
		cfg.Server.Env = "development"

		logger.UseJSONOutput(cfg, &jsonOut)
		log.Info().Msg("still on console")

		assert.Contains(t, console.String(), "still on console")
		assert.Empty(t, jsonOut.String())
	})

	t.Run("json lines in production", func(t *testing.T) {
		preserveGlobals(t)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)

		var out bytes.Buffer

		cfg := &config.Config{}
		cfg.Server.Env = "production"
		cfg.App.Name = "todofeed"

		logger.UseJSONOutput(cfg, &out)
		log.Info().Str("id", "70905d7e").Msg("todo toggled")

		var line map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &line))
		assert.Equal(t, "todofeed", line["app"])
		assert.Equal(t, "todo toggled", line["message"])
		assert.Equal(t, "70905d7e", line["id"])
	})
}
