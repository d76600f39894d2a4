package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/automoto/planetdrop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTrajectoryCommand(t *testing.T) {
	out, err := runCLI(t, "trajectory", "--log-level", "error", "--dx", "0", "--dy", "80", "--radius", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+config.Preview.Steps)
	assert.Equal(t, "# velocity 0.000,5.000 px/tick", lines[0])
	assert.Equal(t, "0 200.00 60.00", lines[1])
	assert.Equal(t, "1 200.00 75.00", lines[2])
}

func TestBadLogLevel(t *testing.T) {
	_, err := runCLI(t, "trajectory", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}
