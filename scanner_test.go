package main

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

func TestScanMixedTree(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "src/a.py", "print('hi')\n")
	writeFixture(t, root, "src/b.bin", "\x00\x01\x02")
	writeFixture(t, root, "README.md", "# readme\n")

	scanner := &Scanner{}
	discovered := []string{"src/a.py", "src/b.bin", "README.md"}
	result := scanner.Scan(root, discovered)

	// b.bin is unclassified: absent from contents and accounting, present
	// in the tree.
	assert.Equal(t, 2, result.Summary.FileCount)
	require.Len(t, result.Contents, 2)
	assert.Equal(t, "src/a.py", result.Contents[0].Path)
	assert.Equal(t, "README.md", result.Contents[1].Path)

	aLen := len("print('hi')\n")
	rLen := len("# readme\n")
	assert.Equal(t, int64(aLen+rLen), result.Summary.TotalSize)
	assert.Equal(t, (aLen+15)/16+(rLen+15)/16, result.Summary.EstimatedTokens)

	expected := filepath.Base(root) + "\n" +
		"├── src/\n" +
		"│   ├── a.py\n" +
		"│   └── b.bin\n" +
		"└── README.md\n"
	assert.Equal(t, expected, result.Structure)
}

func TestScanEmptyRoot(t *testing.T) {
	scanner := &Scanner{}
	result := scanner.Scan("", nil)

	assert.Equal(t, "No workspace folder open", result.Structure)
	assert.Equal(t, SummaryInfo{}, result.Summary)
	assert.Empty(t, result.Contents)
}

func TestScanReadFailure(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "ok.md", "fine\n")

	scanner := &Scanner{}
	result := scanner.Scan(root, []string{"ok.md", "missing.md"})

	// The failing file still counts toward FileCount and keeps its slot in
	// contents, but contributes nothing to size or token totals.
	assert.Equal(t, 2, result.Summary.FileCount)
	require.Len(t, result.Contents, 2)
	assert.Equal(t, "missing.md", result.Contents[1].Path)
	assert.True(t, strings.HasPrefix(result.Contents[1].Content, "Error reading file:"))

	okLen := len("fine\n")
	assert.Equal(t, int64(okLen), result.Summary.TotalSize)
	assert.Equal(t, (okLen+15)/16, result.Summary.EstimatedTokens)
}

func TestScanEscapesContentOnce(t *testing.T) {
	root := t.TempDir()
	raw := `<script>&"'`
	writeFixture(t, root, "page.html", raw)

	scanner := &Scanner{}
	result := scanner.Scan(root, []string{"page.html"})

	require.Len(t, result.Contents, 1)
	assert.Equal(t, html.EscapeString(raw), result.Contents[0].Content)
	assert.Equal(t, raw, html.UnescapeString(result.Contents[0].Content))
}

func TestScanWorkerCountDoesNotChangeResult(t *testing.T) {
	root := t.TempDir()
	var discovered []string
	for i := 0; i < 40; i++ {
		rel := fmt.Sprintf("pkg%d/file%d.go", i%5, i)
		writeFixture(t, root, rel, strings.Repeat("x", i+1))
		discovered = append(discovered, rel)
	}

	serial := (&Scanner{Workers: 1}).Scan(root, discovered)
	parallel := (&Scanner{Workers: 16}).Scan(root, discovered)

	assert.Equal(t, serial.Summary, parallel.Summary)
	assert.Equal(t, serial.Contents, parallel.Contents)
	assert.Equal(t, serial.Structure, parallel.Structure)
}

func TestScanAbsoluteDiscoveredPaths(t *testing.T) {
	root := t.TempDir()
	writeFixture(t, root, "docs/guide.md", "guide\n")

	scanner := &Scanner{}
	result := scanner.Scan(root, []string{filepath.Join(root, "docs", "guide.md")})

	require.Len(t, result.Contents, 1)
	assert.Equal(t, "docs/guide.md", result.Contents[0].Path)
	assert.Contains(t, result.Structure, "└── docs/\n    └── guide.md\n")
}

func TestScanNoDiscoveredFiles(t *testing.T) {
	root := t.TempDir()

	result := (&Scanner{}).Scan(root, nil)

	assert.Equal(t, filepath.Base(root)+"\n", result.Structure)
	assert.Equal(t, SummaryInfo{}, result.Summary)
	assert.Empty(t, result.Contents)
}
