package driving

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// FileService manages attachments of module objects.
type FileService interface {
	List(ctx context.Context, target domain.FileDomain) ([]domain.File, error)

	// Upload attaches a local file. name overrides the file name when not
	// empty. With overwrite, an existing file of the same name is replaced.
	Upload(ctx context.Context, path string, target domain.FileDomain, name string, overwrite bool) error

	// Delete removes all files of the target, or only the named one when
	// name is not empty.
	Delete(ctx context.Context, target domain.FileDomain, name string) error

	// Download stores the named file in dir and returns the written path.
	Download(ctx context.Context, name string, target domain.FileDomain, dir string) (string, error)
}
