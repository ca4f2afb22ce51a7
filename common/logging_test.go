package common

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&LoggingOpts{
		JSON:    true,
		Service: "registrar",
		Version: "v0.1.0",
		Output:  &buf,
	})

	logger.Info("registered", "fid", 123)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "registered", record["msg"])
	assert.Equal(t, "registrar", record["service"])
	assert.Equal(t, "v0.1.0", record["version"])
	assert.Equal(t, float64(123), record["fid"])
}

func TestSetupLogger_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&LoggingOpts{Output: &buf})
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	logger = SetupLogger(&LoggingOpts{Debug: true, Output: &buf})
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerOrDiscard(t *testing.T) {
	assert.NotNil(t, LoggerOrDiscard(nil))

	logger := DiscardLogger()
	assert.Same(t, logger, LoggerOrDiscard(logger))
}
