package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummariseCmd_Use(t *testing.T) {
	assert.Equal(t, "summarise [doc-id]", summariseCmd.Use)
}

func TestSummariseCmd_HasSummarizeAlias(t *testing.T) {
	assert.Contains(t, summariseCmd.Aliases, "summarize")
}

func TestSummariseCmd_HasLengthFlag(t *testing.T) {
	flag := summariseCmd.Flags().Lookup("length")
	require.NotNil(t, flag)
	assert.Equal(t, "l", flag.Shorthand)
	assert.Equal(t, "medium", flag.DefValue)
}

func TestSummariseCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"summarise"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSummariseCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"summarise", seededDocID})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Summary")
	assert.Contains(t, buf.String(), "A concise summary.")
}

func TestSummariseCmd_ExecutesWithLengthFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"summarise", "--length", "short", seededDocID})
	defer func() {
		rootCmd.SetArgs(nil)
		summariseLength = "medium"
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "A concise summary.")
}

func TestSummariseCmd_InvalidLength(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"summarise", "--length", "enormous", seededDocID})
	defer func() {
		rootCmd.SetArgs(nil)
		summariseLength = "medium"
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "summary length")
}

func TestSummariseCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"summarise", "nope"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
