package log

import (
	"bytes"
	stdlog "log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level)
	l.logger = stdlog.New(&buf, "", 0)
	return l, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	l, buf := newBufferedLogger(LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	assert.Empty(t, buf.String())

	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "error 4")
}

func TestLogger_SetLevel(t *testing.T) {
	t.Parallel()

	l, buf := newBufferedLogger(LevelError)
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestGetLogger_DefaultsToInfo(t *testing.T) {
	l := GetLogger()
	assert.NotNil(t, l)
	assert.Equal(t, LevelInfo, l.level)
}
