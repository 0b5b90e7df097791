package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)

	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.LogError(nil, "nothing")
	l.LogError(errors.New("boom"), "capture failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.NotContains(t, out, "nothing")
	assert.Contains(t, out, "capture failed")
	assert.Contains(t, out, "boom")
	assert.False(t, l.DebugEnabled())
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.DebugLevel)

	l.WithFields(logrus.Fields{"iteration": 3}).Debug("planned")
	assert.Contains(t, buf.String(), "iteration=3")
	assert.True(t, l.DebugEnabled())
}

func TestNewLoggerManagerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bot.log")
	l, err := NewLoggerManager(path, "info")
	require.NoError(t, err)

	l.Info("started")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}

func TestNewLoggerManagerRejectsLevel(t *testing.T) {
	_, err := NewLoggerManager("", "loud")
	assert.Error(t, err)
}
