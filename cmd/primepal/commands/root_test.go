package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrled/suns/primepal/internal/presenter"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return out.String(), err
}

func TestRoot_PrintsPrimePalindromes(t *testing.T) {
	out, err := executeRoot(t)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"11", "101", "131", "151", "181", "191", "313", "353",
		"373", "383", "727", "757", "787", "797", "919", "929",
		presenter.SignOff,
	}, "\n")
	assert.Equal(t, expected, out)
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := executeRoot(t, "100")
	require.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr), "expected a UsageError, got %T", err)

	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "argument errors must not carry an exit code")
}

func TestRoot_InvalidLoggingEnvironment(t *testing.T) {
	t.Setenv("LOG_ADD_SOURCE", "maybe")

	_, err := executeRoot(t)
	require.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr), "expected a UsageError, got %T", err)
}

func TestExitWithCode(t *testing.T) {
	assert.NoError(t, ExitWithCode(3, nil))

	base := errors.New("boom")
	err := ExitWithCode(3, base)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "boom", err.Error())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"exit error", ExitWithCode(4, errors.New("boom")), 4},
		{"usage error", &UsageError{errors.New("bad args")}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestRoot_ArgumentsExitWithUsageCode(t *testing.T) {
	_, err := executeRoot(t, "1", "2")
	assert.Equal(t, 2, ExitCode(err))
}
