package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "solsense", rootCmd.Use)
	assert.Equal(t, "Launcher for the SolSense GeoTIFF Slope Viewer", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "launch")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "setup")
	assert.Contains(t, output, "status")
	assert.Contains(t, output, "reset")
	assert.Contains(t, output, "packages")
}

func TestRootCmdVersion(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "solsense version")
}

func TestPackagesCmd(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"packages"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestLaunchCmdRegistered(t *testing.T) {
	rootCmd := newRootCmd()

	cmd, _, err := rootCmd.Find([]string{"launch"})
	require.NoError(t, err)
	assert.Equal(t, "launch", cmd.Use)

	// The fix flag lives on doctor only
	cmd, _, err = rootCmd.Find([]string{"doctor"})
	require.NoError(t, err)
	assert.NotNil(t, cmd.Flags().Lookup("fix"))
	assert.Nil(t, rootCmd.Flags().Lookup("fix"))
}
