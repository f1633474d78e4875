package logger_test

import (
	"testing"

	"github.com/straye-as/storefront/internal/config"
	"github.com/straye-as/storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Level(t *testing.T) {
	log, err := logger.NewLogger(
		&config.LoggingConfig{Level: "warn", Format: "json"},
		&config.AppConfig{Name: "storefront", Environment: "production"},
	)
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	log, err := logger.NewLogger(
		&config.LoggingConfig{Level: "chatty", Format: "console"},
		&config.AppConfig{Name: "storefront", Environment: "development"},
	)
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestWithSession(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	logger.WithSession(zap.New(core), "abc").Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["session_id"])
}
