package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONWithService(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Options{Service: "library-api", Level: "debug", Format: "json", Output: out})
	require.NoError(t, err)

	log.Debug("loan created", zap.Uint("loan_id", 7))
	_ = log.Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"library-api"`)
	assert.Contains(t, string(data), `"loan_id":7`)
	assert.Contains(t, string(data), `"message":"loan created"`)
}

func TestNewLevel(t *testing.T) {
	log, err := New(Options{Level: "warn", Output: "stderr"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	log, err = New(Options{Level: "nonsense", Output: "stderr"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
