package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DebugLevel,
		" WARN ":  WarnLevel,
		"error":   ErrorLevel,
		"verbose": InfoLevel,
		"":        InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestConfigure_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	lgr := Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	lgr.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	component := WithComponent(lgr, "students")
	component.Warn().Str("roll", "R1").Msg("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "students", line["component"])
	assert.Equal(t, "R1", line["roll"])
	assert.Equal(t, "kept", line["message"])
	assert.Equal(t, "warn", line["level"])
	assert.Contains(t, line, "time")
}
