package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	cfg.Host.Command = "monify-host"
	cfg.Host.Args = []string{"--profile", cfg.Profile.Path}

	path := filepath.Join(dir, "monify.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Profile.Path, got.Profile.Path)
	assert.Equal(t, cfg.Import.Dir, got.Import.Dir)
	assert.Equal(t, cfg.Import.Format, got.Import.Format)
	assert.Equal(t, "monify-host", got.Host.Command)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
}

func TestDefaults(t *testing.T) {
	cfg := Default("/data")

	assert.Equal(t, filepath.Join("/data", "profile.json"), cfg.Profile.Path)
	assert.Equal(t, filepath.Join("/data", "import"), cfg.Import.Dir)
	assert.Equal(t, "intesa", cfg.Import.Format)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Empty(t, cfg.Host.Command)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
