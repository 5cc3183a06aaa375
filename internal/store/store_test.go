package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load_SeedsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	s := New(path)

	doc, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, Default(), doc)

	// Seed must be persisted immediately
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestStore_Load_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "prompts.json")
	s := New(path)

	_, err := s.Load()
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_Load_ReadError(t *testing.T) {
	dir := t.TempDir()
	// A directory at the file's path makes the read fail without ErrNotExist
	s := New(dir)

	doc, err := s.Load()
	require.Error(t, err)
	assert.Nil(t, doc)

	var ferr *FormatError
	assert.False(t, errors.As(err, &ferr), "read failure is not a format error")
}

func TestStore_Load_InvalidContent(t *testing.T) {
	cases := map[string]string{
		"broken_json": "{\"version\": 2,",
		"empty_file":  "",
		"scalar":      "\"hello\"",
		"number":      "42",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prompts.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			doc, err := New(path).Load()
			require.Error(t, err)
			assert.Nil(t, doc)

			var ferr *FormatError
			require.True(t, errors.As(err, &ferr))
			assert.Equal(t, path, ferr.Path)
		})
	}
}

func TestStore_Load_LegacyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	legacy := `[{"name":"A","content":"B"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	doc, err := New(path).Load()
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, []Category{}, doc.Categories)
	assert.Equal(t, []Snippet{{Name: "A", Content: "B"}}, doc.Uncategorized)
	assert.True(t, doc.UncategorizedExpanded)
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	s := New(path)

	doc := &Document{
		Version: CurrentVersion,
		Categories: []Category{
			{Name: "Работа", Prompts: []Snippet{{Name: "Подпись", Content: "С уважением,\n"}}, Expanded: false},
			{Name: "Email", Prompts: []Snippet{}, Expanded: true},
		},
		Uncategorized:         []Snippet{{Name: "Ping", Content: "ping"}},
		UncategorizedExpanded: false,
	}
	require.NoError(t, s.Save(doc))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, doc, loaded)

	// Byte stability: saving what was just loaded must not change the file
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(loaded))
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStore_Save_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "prompts.json")

	require.NoError(t, New(path).Save(Empty()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_Save_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.json")

	require.NoError(t, New(path).Save(Default()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prompts.json", entries[0].Name())
}
