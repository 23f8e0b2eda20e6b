package platform

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowConfig_LoggerDefaultsToDiscard(t *testing.T) {
	l := WindowConfig{}.logger()
	assert.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestWindowConfig_LoggerUsesConfigured(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	WindowConfig{Logger: l}.logger().Warn("swap interval failed", "interval", 1)
	assert.Contains(t, buf.String(), "interval=1")
}
