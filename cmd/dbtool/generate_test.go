package main

import (
	"bytes"
	"itinerary-planner-service/internal/adapters/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDBTool(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateWritesSeedExport(t *testing.T) {
	out, err := runDBTool(t, "generate", "--count", "3", "--seed", "5", "--first-id", "10", "--out", "", "--insert=false")
	require.NoError(t, err)

	pkgs, err := repositories.DecodeSeed(bytes.NewBufferString(out))
	require.NoError(t, err)
	require.Len(t, pkgs, 3)
	assert.Equal(t, "10", pkgs[0].ID)
	assert.Equal(t, "12", pkgs[2].ID)

	again, err := runDBTool(t, "generate", "--count", "3", "--seed", "5", "--first-id", "10", "--out", "", "--insert=false")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	_, err := runDBTool(t, "generate", "--count", "0", "--out", "", "--insert=false")
	assert.ErrorContains(t, err, "--count must be positive")

	_, err = runDBTool(t, "generate", "--count", "2", "--out", "x.json", "--insert")
	assert.ErrorContains(t, err, "mutually exclusive")
}
