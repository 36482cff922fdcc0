package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level    string
		format   string
		expected zapcore.Level
	}{
		{level: "debug", format: "json", expected: zapcore.DebugLevel},
		{level: "warn", format: "console", expected: zapcore.WarnLevel},
		{level: "bogus", format: "json", expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.format)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !logger.Core().Enabled(tt.expected) {
			t.Errorf("level %s should be enabled for %q", tt.expected, tt.level)
		}
		if tt.expected > zapcore.DebugLevel && logger.Core().Enabled(tt.expected-1) {
			t.Errorf("level %s should be disabled for %q", tt.expected-1, tt.level)
		}
	}
}
