package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		l, err := NewLogger(nil)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zapcore.InfoLevel))
		require.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("level", func(t *testing.T) {
		var prm Prm
		require.NoError(t, prm.SetLevelString("debug"))
		require.NoError(t, prm.SetEncoding(EncodingJSON))

		l, err := NewLogger(&prm)
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("invalid", func(t *testing.T) {
		var prm Prm
		require.Error(t, prm.SetLevelString("verbose"))
		require.Error(t, prm.SetEncoding("xml"))
	})
}
