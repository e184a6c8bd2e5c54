package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "/media")

	url, err := store.Save("resumes", "cv.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/resumes/"))
	assert.True(t, strings.HasSuffix(url, ".pdf"))

	rel := strings.TrimPrefix(url, "/media/")
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreSaveUniqueNames(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/media")
	a, err := store.Save("profile_pics", "me.png", strings.NewReader("x"))
	require.NoError(t, err)
	b, err := store.Save("profile_pics", "me.png", strings.NewReader("y"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalStoreRemoveRejectsForeignURLs(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/media")
	assert.Error(t, store.Remove("https://elsewhere.example/file.png"))
	assert.Error(t, store.Remove("/media/../etc/passwd"))
}
