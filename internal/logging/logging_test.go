package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"Debug text", "debug", "text"},
		{"Info json", "info", "json"},
		{"Invalid level falls back", "nope", "text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log := NewLogrusAdapter(tc.level, tc.format)

			assert.NotNil(t, log)
			assert.NotPanics(t, func() {
				log.Debug("debug message")
				log.Info("info message", Field{Key: FieldCount, Value: 1})
				log.Warn("warn message")
				log.Error("error message")
			})
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	base := logrus.New()
	log := NewLogrusAdapterFromLogger(base)

	assert.NotNil(t, log)

	// nil input still yields a working logger
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestLogrusAdapterWithChaining(t *testing.T) {
	log := NewLogrusAdapter("debug", "text")

	derived := log.WithError(errors.New("boom")).
		WithField(FieldFile, "orders.csv").
		WithFields(Field{Key: FieldRow, Value: 3})

	assert.NotNil(t, derived)
	assert.NotPanics(t, func() {
		derived.Warn("row skipped")
	})
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	log := &MockLogger{}

	log.Info("loaded", Field{Key: FieldCount, Value: 2})
	log.Warn("skipped row", Field{Key: FieldRow, Value: 5})
	log.Warn("skipped row", Field{Key: FieldRow, Value: 7})

	assert.Len(t, log.Entries, 3)
	assert.Len(t, log.EntriesByLevel("WARN"), 2)
	assert.True(t, log.HasEntry("INFO", "loaded"))
	assert.False(t, log.HasEntry("ERROR", "loaded"))

	warns := log.EntriesByLevel("WARN")
	assert.Equal(t, FieldRow, warns[0].Fields[0].Key)
	assert.Equal(t, 5, warns[0].Fields[0].Value)
}

func TestMockLoggerFatalDoesNotExit(t *testing.T) {
	log := &MockLogger{}

	log.Fatal("boom")
	log.Fatalf("boom %d", 2)

	entries := log.EntriesByLevel("FATAL")
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "boom 2", entries[1].Message)
	}
}
