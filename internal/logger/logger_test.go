package logger

import (
	"testing"

	"taskflow/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggerConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestNew_Console(t *testing.T) {
	l, err := New(config.LoggerConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, l.SugaredLogger)
}

func TestLogSecurityEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core)).WithComponent("auth")

	l.LogSecurityEvent("login_failed", "", "10.0.0.1", map[string]interface{}{"username": "bob"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "login_failed", fields["security_event"])
	assert.Equal(t, "auth", fields["component"])
	assert.Equal(t, "bob", fields["username"])
}
