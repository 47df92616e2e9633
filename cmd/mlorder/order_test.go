package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFunctionalAcceptsEachKnownLetter(t *testing.T) {
	for _, letter := range []string{"h", "g", "s", "a", "r", "m"} {
		fn, err := parseFunctional(letter)
		require.NoError(t, err, letter)
		require.NotNil(t, fn, letter)
	}
}

func TestParseFunctionalRejectsUnknownLetter(t *testing.T) {
	_, err := parseFunctional("z")
	require.Error(t, err)
}

func TestParseFunctionalRejectsMultiRuneArgument(t *testing.T) {
	_, err := parseFunctional("ab")
	require.Error(t, err)
}

func TestParseOrderArgsAppliesDefaultsWhenOmitted(t *testing.T) {
	opts, psfile, err := parseOrderArgs([]string{"g"})
	require.NoError(t, err)
	require.Equal(t, 1, opts.Iterations)
	require.Equal(t, 2, opts.Window)
	require.Equal(t, 2, opts.Period)
	require.Equal(t, uint32(0), opts.Seed)
	require.Empty(t, psfile)
}

func TestParseOrderArgsFillsEveryPositionalField(t *testing.T) {
	opts, psfile, err := parseOrderArgs([]string{"g", "3", "4", "1", "7", "out.ps"})
	require.NoError(t, err)
	require.Equal(t, 3, opts.Iterations)
	require.Equal(t, 4, opts.Window)
	require.Equal(t, 1, opts.Period)
	require.Equal(t, uint32(7), opts.Seed)
	require.Equal(t, "out.ps", psfile)
}

func TestParseOrderArgsRejectsNonIntegerIterations(t *testing.T) {
	_, _, err := parseOrderArgs([]string{"g", "not-a-number"})
	require.Error(t, err)
}

func TestParseOrderArgsRejectsNonIntegerSeed(t *testing.T) {
	_, _, err := parseOrderArgs([]string{"g", "1", "2", "1", "not-a-seed"})
	require.Error(t, err)
}
