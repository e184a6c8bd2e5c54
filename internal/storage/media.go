package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaStore holds uploaded files (resumes, profile pictures). The portal
// originally pushed these to object storage with a local fallback; the
// interface keeps that swap possible.
type MediaStore interface {
	// Save stores the file under the given folder and returns its public URL.
	Save(folder, filename string, r io.Reader) (string, error)
	// Remove deletes the file a previous Save returned the URL for.
	Remove(url string) error
}

// LocalStore keeps media on disk under Root and serves it under BaseURL.
type LocalStore struct {
	Root    string // e.g. ./media
	BaseURL string // e.g. /media
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Save writes the file under a uuid-prefixed name so uploads never collide.
func (s *LocalStore) Save(folder, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString()
	if ext := path.Ext(filename); ext != "" {
		name += ext
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.BaseURL, folder, name), nil
}

// Remove maps the URL back into Root and deletes the file. URLs outside
// BaseURL are rejected rather than guessed at.
func (s *LocalStore) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.BaseURL+"/")
	if !ok {
		return fmt.Errorf("url %q is not under %s", url, s.BaseURL)
	}
	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("refusing to remove %q", url)
	}
	return os.Remove(filepath.Join(s.Root, filepath.FromSlash(rel)))
}
