package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "status"},
		{"seed"},
		{"badges"},
	} {
		cmd, rest, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Empty(t, rest)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	demo := seedCmd.Flags().Lookup("demo")
	require.NotNil(t, demo)
	assert.Equal(t, "false", demo.DefValue)

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("timeout"))
}
