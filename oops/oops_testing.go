//go:build testing

package oops

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func RequireNoError(t *testing.T, err error, msgAndArgs ...any) {
	if err == nil {
		return
	}
	t.Helper()
	var sterr *Error
	if !errors.As(err, &sterr) {
		require.Fail(t, fmt.Sprintf("Received unexpected error:\n%+v", err), msgAndArgs...)
		return
	}
	require.Fail(t, fmt.Sprintf("Received unexpected error:\n%+v", sterr), msgAndArgs...)
}

// RequireStackError checks that err matches target and went through Wrap.
func RequireStackError(t *testing.T, err error, target error, msgAndArgs ...any) {
	t.Helper()
	require.ErrorIs(t, err, target, msgAndArgs...)
	var sterr *Error
	require.True(t, errors.As(err, &sterr), msgAndArgs...)
	require.NotEmpty(t, sterr.StackTrace(), msgAndArgs...)
}
