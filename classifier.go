package main

import (
	"path/filepath"
	"strings"
)

// textExtensions is the built-in allow-list of extensions treated as text.
// Classification is extension-only; content is never sniffed, so a binary
// file named *.txt is still attempted for reading and recovers per-file.
var textExtensions = map[string]bool{
	"txt": true, "md": true, "rst": true,
	"py": true, "js": true, "ts": true, "jsx": true, "tsx": true,
	"go": true, "rs": true, "rb": true, "php": true, "java": true,
	"c": true, "h": true, "cpp": true, "hpp": true, "cs": true,
	"swift": true, "kt": true, "scala": true, "lua": true, "pl": true,
	"r": true, "sql": true,
	"html": true, "css": true, "scss": true, "xml": true,
	"json": true, "yaml": true, "yml": true, "toml": true,
	"ini": true, "cfg": true, "conf": true,
	"sh": true, "bash": true, "bat": true, "ps1": true,
}

// Classifier decides whether a path counts as a text file. The zero value
// uses the built-in allow-list; Include/Exclude carry runtime overrides
// loaded from extensions.yml or flags.
type Classifier struct {
	Include []string
	Exclude []string
}

// IsTextFile reports whether the path's final extension is on the
// allow-list. Paths with no extension classify as non-text.
func (c Classifier) IsTextFile(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filepath.Base(path)), "."))
	if ext == "" {
		return false
	}
	for _, e := range c.Exclude {
		if ext == normalizeExt(e) {
			return false
		}
	}
	for _, e := range c.Include {
		if ext == normalizeExt(e) {
			return true
		}
	}
	return textExtensions[ext]
}

// normalizeExt accepts "go", ".go", or "GO" and yields "go".
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
