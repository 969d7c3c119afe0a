package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_NonEmptyReprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n   \nhello\n"), &out)

	value, ok := p.NonEmpty("name: ")
	require.True(t, ok)
	assert.Equal(t, "hello", value)
	assert.Contains(t, out.String(), "cannot be empty")
}

func TestPrompter_IntReprompts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n7\n"), &out)

	n, ok := p.Int("marks: ")
	require.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Contains(t, out.String(), "whole number")
}

func TestPrompter_IntRange(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("101\n-1\n42\n"), &out)

	n, ok := p.IntRange("marks: ", 0, 100)
	require.True(t, ok)
	assert.Equal(t, 42, n)
}

func TestPrompter_EOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, ok := p.Line("anything: ")
	assert.False(t, ok)

	_, ok = p.NonEmpty("anything: ")
	assert.False(t, ok)

	_, ok = p.Int("anything: ")
	assert.False(t, ok)
}
