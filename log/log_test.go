//go:build testing

package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() {
		logger = newLogger()
	})

	require.NoError(t, SetLevel(""))
	require.NoError(t, SetLevel("warn"))
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	require.Error(t, SetLevel("loud"))
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
