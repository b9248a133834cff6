package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDiscardsUntilConfigured(t *testing.T) {
	mu.Lock()
	saved := base
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		base = saved
		mu.Unlock()
	})

	var buf bytes.Buffer
	Configure(Config{Level: "info", Output: &buf, Service: "cldurl"})
	logger := WithComponent("config")
	logger.Info().Str(FieldPath, "cloudinary.toml").Msg("loaded")
	logger.Debug().Msg("hidden")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "cldurl", entry[FieldService])
	assert.Equal(t, "config", entry[FieldComponent])
	assert.Equal(t, "cloudinary.toml", entry[FieldPath])
	assert.Equal(t, "loaded", entry["message"])
}

func TestConfigureInvalidLevelFallsBackToInfo(t *testing.T) {
	mu.Lock()
	saved := base
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		base = saved
		mu.Unlock()
	})

	var buf bytes.Buffer
	Configure(Config{Level: "loud", Output: &buf})
	logger := Base()
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"service":"cloudinary"`)
}
