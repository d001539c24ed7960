package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/pkg/logger"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Component("ui").Info().Str("tab", "orders").Msg("pestaña seleccionada")
	log.Debug().Msg("no debe aparecer")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "una sola línea JSON")
	assert.Equal(t, "ui", entry["component"])
	assert.Equal(t, "orders", entry["tab"])
	assert.Equal(t, "info", entry["level"])
}

func TestNop_NoEscribe(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Error().Msg("descartado")
	})
}
