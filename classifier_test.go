package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTextFile(t *testing.T) {
	c := Classifier{}

	cases := []struct {
		path string
		want bool
	}{
		{"main.go", true},
		{"src/app.PY", true},
		{"notes.md", true},
		{"config.yaml", true},
		{"deploy.sh", true},
		{"index.html", true},
		{"photo.png", false},
		{"archive.tar.gz", false},
		{"binary.exe", false},
		{"Makefile", false}, // no extension
		{"dir.with.dots/file", false},
		{".gitignore", false}, // dotfile, not on the allow-list
		{"weird.", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.IsTextFile(tc.path), tc.path)
	}
}

func TestIsTextFileUsesFinalExtension(t *testing.T) {
	c := Classifier{}
	assert.True(t, c.IsTextFile("bundle.min.js"))
	assert.False(t, c.IsTextFile("script.js.bak"))
}

func TestClassifierOverrides(t *testing.T) {
	c := Classifier{
		Include: []string{".vue", "SVELTE"},
		Exclude: []string{"sql"},
	}

	assert.True(t, c.IsTextFile("App.vue"))
	assert.True(t, c.IsTextFile("widget.svelte"))
	assert.False(t, c.IsTextFile("schema.sql"))
	// Untouched defaults still apply.
	assert.True(t, c.IsTextFile("main.go"))
}

func TestExcludeWinsOverInclude(t *testing.T) {
	c := Classifier{Include: []string{"dat"}, Exclude: []string{"dat"}}
	assert.False(t, c.IsTextFile("dump.dat"))
}
