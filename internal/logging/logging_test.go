package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/justestif/moodjukebox/internal/config"
)

func TestSetupJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Setup(&config.Config{LogLevel: zerolog.WarnLevel, LogFormat: "json"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("mood", "sad").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"mood":"sad"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestSetupConsole(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Setup(&config.Config{LogLevel: zerolog.InfoLevel, LogFormat: "console"}, &buf)

	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
