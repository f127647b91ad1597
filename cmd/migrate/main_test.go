package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	for _, name := range []string{"up", "status", "seed", "truncate"} {
		var out bytes.Buffer
		cmd, ok := parseCommand([]string{name}, &out)
		assert.True(t, ok)
		assert.Equal(t, name, cmd)
		assert.Empty(t, out.String())
	}
}

func TestParseCommandUnknownWritesUsage(t *testing.T) {
	var out bytes.Buffer
	_, ok := parseCommand([]string{"drop"}, &out)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Unknown command: drop")
	assert.Contains(t, out.String(), "Usage:")
}

func TestParseCommandMissing(t *testing.T) {
	var out bytes.Buffer
	_, ok := parseCommand(nil, &out)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Commands:")
}
