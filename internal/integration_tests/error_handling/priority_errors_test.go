package integration_tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/ledgen/internal/model"
	"github.com/vk/ledgen/internal/testutil"
	"github.com/vk/ledgen/internal/validate"
)

func TestCompile_InconsistentPriorityFails(t *testing.T) {
	t.Parallel()

	result := testutil.RunCompile(t, "{A: {led1: {Action: On, Priority: 2}}, B: {led1: {Action: Off, Priority: 3}}}")

	var inconsistent *validate.InconsistentPriorityError
	require.True(t, errors.As(result.Err, &inconsistent), "got %v", result.Err)
	require.Equal(t, "led1", inconsistent.Indicator)
	require.Contains(t, result.Err.Error(), "led1")
	require.False(t, result.OutputExists)
	require.Empty(t, result.OutputDirEntries)
}

func TestCompile_ConflictingPriorityFails(t *testing.T) {
	t.Parallel()

	result := testutil.RunCompile(t, "{A: {Priority: 1, led1: {Action: On, Priority: 1}}}")

	var conflict *validate.ConflictingPriorityError
	require.True(t, errors.As(result.Err, &conflict), "got %v", result.Err)
	require.Equal(t, "A", conflict.Group)
	require.Equal(t, "led1", conflict.Indicator)
	require.False(t, result.OutputExists)
}

func TestCompile_MissingPriorityFails(t *testing.T) {
	t.Parallel()

	result := testutil.RunCompile(t, "A:\n  led1:\n    Action: On\n")

	var missing *validate.MissingPriorityError
	require.True(t, errors.As(result.Err, &missing), "got %v", result.Err)
	require.Contains(t, result.Err.Error(), "failed to validate configuration")
	require.False(t, result.OutputExists)
}

func TestCompile_MalformedInputFails(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"syntax":            "A: {led1: [\n",
		"top level list":    "- A\n",
		"textual priority":  "A:\n  led1:\n    Priority: 'On'\n",
		"duty overflow":     "A:\n  Priority: 1\n  led1:\n    DutyOn: 150\n",
		"fractional period": "A:\n  Priority: 1\n  led1:\n    Period: 1.5\n",
		"two documents":     "A: {Priority: 1}\n---\nB: {Priority: 2}\n",
	}

	for name, input := range testCases {
		input := input
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := testutil.RunCompile(t, input)

			var malformed *model.MalformedInputError
			require.True(t, errors.As(result.Err, &malformed), "got %v", result.Err)
			require.Contains(t, result.Err.Error(), "failed to load configuration")
			require.Empty(t, result.OutputDirEntries)
		})
	}
}

func TestCompile_FailureKeepsExistingArtifact(t *testing.T) {
	t.Parallel()

	const previous = "/* previous build */\n"
	result := testutil.RunCompileWithOptions(t,
		"{A: {Priority: 1, led1: {Action: On, Priority: 1}}}",
		testutil.Options{Existing: previous},
	)

	require.Error(t, result.Err)
	require.True(t, result.OutputExists)
	require.Equal(t, previous, result.Output)
	require.Equal(t, []string{"led-gen.hpp"}, result.OutputDirEntries)
}

func TestCompile_FailureAfterFirstGroupEmitsNothing(t *testing.T) {
	t.Parallel()

	// The first groups are valid; the violation in the last one must still
	// prevent any output.
	input := `
good_one:
    Priority: 1
    led1: {Action: On}
good_two:
    led2: {Action: On, Priority: 4}
bad:
    led2: {Action: On, Priority: 5}
`
	result := testutil.RunCompile(t, input)

	var inconsistent *validate.InconsistentPriorityError
	require.True(t, errors.As(result.Err, &inconsistent), "got %v", result.Err)
	require.Equal(t, "good_two", inconsistent.FirstGroup)
	require.Equal(t, "bad", inconsistent.Group)
	require.Empty(t, result.OutputDirEntries)
}
