package contract

import (
	"context"
)

// IArtifactRepository stores generated artifacts as JSON files named by the
// caller. Files are written once and read back by name; there is no update
// or delete.
type IArtifactRepository interface {
	Save(ctx context.Context, filename string, v any) (string, error)
	Load(ctx context.Context, filename string, v any) error
	Exists(filename string) bool
	Path(filename string) string
	Dir() string
}
