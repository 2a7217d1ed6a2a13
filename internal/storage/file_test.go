package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miloscript/monify/internal/model"
)

func TestFileStoreLoadAbsent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "profile.json"))

	doc, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, doc)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	s := NewFileStore(path)

	doc := model.NewDocument()
	doc.Company.Name = "Monify d.o.o."
	doc.Clients = append(doc.Clients, model.Client{
		ID:      "c1",
		Company: model.Company{Name: "ACME"},
	})
	doc.Theme.DarkMode = true
	require.NoError(t, s.Save(doc))

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Monify d.o.o.", got.Company.Name)
	require.Len(t, got.Clients, 1)
	assert.Equal(t, "ACME", got.Clients[0].Company.Name)
	assert.True(t, got.Theme.DarkMode)
}

func TestFileStoreSaveReplacesWholeDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	s := NewFileStore(path)

	first := model.NewDocument()
	first.Company.Name = "before"
	require.NoError(t, s.Save(first))

	second := model.NewDocument()
	second.Company.Name = "after"
	require.NoError(t, s.Save(second))

	got, ok, err := s.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "after", got.Company.Name)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewFileStore(path)
	_, _, err := s.Load()
	assert.Error(t, err)
}
