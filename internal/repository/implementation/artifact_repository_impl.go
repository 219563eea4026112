package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"presentation-builder-be/internal/pkg/apperr"
	"presentation-builder-be/internal/pkg/fileutil"
	"presentation-builder-be/internal/repository/contract"
)

type artifactRepository struct {
	dir string
}

func NewArtifactRepository(dir string) (contract.IArtifactRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output folder %s: %w", dir, err)
	}
	return &artifactRepository{dir: dir}, nil
}

func (r *artifactRepository) Save(ctx context.Context, filename string, v any) (string, error) {
	if !fileutil.IsPlainFilename(filename) {
		return "", apperr.InvalidParameter("invalid artifact name %q", filename)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", filename, err)
	}

	path := r.Path(filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}

func (r *artifactRepository) Load(ctx context.Context, filename string, v any) error {
	if !fileutil.IsPlainFilename(filename) {
		return apperr.InvalidParameter("invalid artifact name %q", filename)
	}

	data, err := os.ReadFile(r.Path(filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.NotFound("artifact %s not found", filename)
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}
	return nil
}

func (r *artifactRepository) Exists(filename string) bool {
	if !fileutil.IsPlainFilename(filename) {
		return false
	}
	info, err := os.Stat(r.Path(filename))
	return err == nil && !info.IsDir()
}

func (r *artifactRepository) Path(filename string) string {
	return filepath.Join(r.dir, filename)
}

func (r *artifactRepository) Dir() string {
	return r.dir
}
