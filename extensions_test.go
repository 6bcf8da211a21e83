package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExtensionOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	yml := "include: [vue, svelte]\nexclude: [sql]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extensions.yml"), []byte(yml), 0644))

	overrides, err := loadExtensionOverrides()
	require.NoError(t, err)
	assert.Equal(t, []string{"vue", "svelte"}, overrides.Include)
	assert.Equal(t, []string{"sql"}, overrides.Exclude)
}

func TestLoadExtensionOverridesHomeConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	confDir := filepath.Join(home, ".config", "vsingest")
	require.NoError(t, os.MkdirAll(confDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(confDir, "extensions.yml"), []byte("include: [zig]\n"), 0644))

	overrides, err := loadExtensionOverrides()
	require.NoError(t, err)
	assert.Equal(t, []string{"zig"}, overrides.Include)
	assert.Empty(t, overrides.Exclude)
}

func TestLoadExtensionOverridesMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	overrides, err := loadExtensionOverrides()
	require.NoError(t, err)
	assert.Empty(t, overrides.Include)
	assert.Empty(t, overrides.Exclude)
}

func TestLoadExtensionOverridesBadYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extensions.yml"), []byte("include: [unclosed\n"), 0644))

	_, err := loadExtensionOverrides()
	assert.Error(t, err)
}
