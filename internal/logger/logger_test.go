package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/flipdeck/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
}

func TestLogger_FormatsPrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(logger.DEBUG),
		logger.WithColors(false),
		logger.WithClock(fixedClock),
	).WithPrefix("quiz").WithFields(map[string]any{"b": 2, "a": 1})

	log.Info("advanced to %d", 3)

	out := buf.String()
	assert.Contains(t, out, "2024-03-01 12:30:00.000 INFO  [quiz]")
	assert.Contains(t, out, "advanced to 3 a=1 b=2")
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	_ = parent.WithField("session_id", "abc")

	parent.Info("plain")
	assert.NotContains(t, buf.String(), "session_id")
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false))

	log.WithError(errors.New("boom")).Error("failed")
	assert.Contains(t, buf.String(), "error=boom")

	assert.Same(t, log, log.WithError(nil))
}

func TestLookupLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  logger.Level
		known bool
	}{
		{"debug", logger.DEBUG, true},
		{"INFO", logger.INFO, true},
		{"warning", logger.WARN, true},
		{"Error", logger.ERROR, true},
		{"verbose", logger.INFO, false},
		{"", logger.INFO, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.LookupLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	log := logger.Discard().WithPrefix("req")
	ctx := logger.NewContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
