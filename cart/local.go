package cart

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// FileStore is the local snapshot tier: one JSON file per session, written
// synchronously on every mutation so the cart survives a process restart even
// when both remote tiers are down.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

var _ Persister = (*FileStore)(nil)

func (f *FileStore) Load() ([]models.CartLine, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (f *FileStore) Save(lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0644)
}

func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
