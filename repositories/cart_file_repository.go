package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"

	"storefront/models"
)

// FileCartRepository keeps the cart snapshot in a single JSON file, the
// zero-infrastructure default.
type FileCartRepository struct {
	path string
}

func NewFileCartRepository(path string) *FileCartRepository {
	return &FileCartRepository{path: path}
}

func (r *FileCartRepository) Save(lines []models.CartLine) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, data, 0o644)
}

func (r *FileCartRepository) Load() ([]models.CartLine, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, ErrNoSnapshot
	}

	lines := []models.CartLine{}
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, ErrNoSnapshot
	}
	return lines, nil
}
