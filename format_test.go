package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1572864, "1.50 MB"},
		{1073741824, "1.00 GB"},
		// The scale caps at GB; no TB step.
		{5 * 1024 * 1024 * 1024 * 1024, "5120.00 GB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSize(tc.bytes))
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
}
