package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicTokenizer(t *testing.T) {
	tk := HeuristicTokenizer{}

	assert.Equal(t, 0, tk.CountTokens(""))
	assert.Equal(t, 1, tk.CountTokens("a"))
	assert.Equal(t, 1, tk.CountTokens(strings.Repeat("a", 16)))
	assert.Equal(t, 2, tk.CountTokens(strings.Repeat("a", 17)))
	assert.Equal(t, 4, tk.CountTokens(strings.Repeat("a", 64)))
}
