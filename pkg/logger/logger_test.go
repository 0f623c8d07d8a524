package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_RegistraEnDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "test", Level: "debug", Out: &buf})

	stop := l.Timer("clients.list")
	stop()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "clients.list", entry["op"])
	assert.Contains(t, entry, "elapsed")
}

func TestTimer_SilenciosoEnInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "test", Level: "info", Out: &buf})
	l.Timer("x")()
	assert.Empty(t, buf.String())
}

func TestParseLevel_Desconocido(t *testing.T) {
	l := New(Config{Level: "verbose", Out: &bytes.Buffer{}})
	assert.Equal(t, "info", l.Zerolog().GetLevel().String())
}
