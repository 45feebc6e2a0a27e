package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFueraDeDesarrollo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	log.Warn().Str("component", "menu").Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "menu", line["component"])
	assert.Equal(t, "warn", line["level"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("ruidoso"))
}
