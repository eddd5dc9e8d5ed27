package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			l, err := NewLogger(in, "console", "test")
			require.NoError(t, err)
			require.True(t, l.Core().Enabled(want))
			if want > zapcore.DebugLevel {
				require.False(t, l.Core().Enabled(want-1))
			}
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	l, err := NewLogger("info", "json", "torrebot")
	require.NoError(t, err)
	require.NotNil(t, l)
}
