package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// Ensure FileService implements the interface.
var _ driving.FileService = (*FileService)(nil)

// FileService manages attachments. The files API can only delete all
// files of an object, so deleting a single file downloads the others to
// a temporary directory and uploads them again.
type FileService struct {
	files   driven.FileClient
	tempDir string
}

// NewFileService creates a new file service.
func NewFileService(files driven.FileClient) *FileService {
	return &FileService{files: files}
}

// SetTempDir sets the parent directory for temporary copies.
// Defaults to os.TempDir.
func (s *FileService) SetTempDir(dir string) {
	s.tempDir = dir
}

// List returns the files attached to the target.
func (s *FileService) List(ctx context.Context, target domain.FileDomain) ([]domain.File, error) {
	if s.files == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.files.ListFiles(ctx, target)
}

// Upload attaches the local file at path to the target.
func (s *FileService) Upload(ctx context.Context, path string, target domain.FileDomain, name string, overwrite bool) error {
	if s.files == nil {
		return domain.ErrNotImplemented
	}
	if name == "" {
		name = filepath.Base(path)
	}
	if strings.Contains(name, "/") {
		return fmt.Errorf("%w: file name %q contains '/'", domain.ErrInvalidInput, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if overwrite {
		logger.Debug("Deleting %q before upload", name)
		if err := s.Delete(ctx, target, name); err != nil {
			return fmt.Errorf("overwrite %s: %w", name, err)
		}
	}

	if err := s.files.UploadFile(ctx, target, name, f); err != nil {
		return err
	}
	logger.Info("Uploaded %s to %s/%s", name, target.Type, target.Identifier)
	return nil
}

// Delete removes all files of the target, or only the named file.
func (s *FileService) Delete(ctx context.Context, target domain.FileDomain, name string) error {
	if s.files == nil {
		return domain.ErrNotImplemented
	}
	if name == "" {
		return s.files.DeleteFiles(ctx, target)
	}

	files, err := s.files.ListFiles(ctx, target)
	if err != nil {
		return fmt.Errorf("list files: %w", err)
	}

	var keep []domain.File
	for _, f := range files {
		if f.Name != name {
			keep = append(keep, f)
		}
	}
	if len(keep) == len(files) {
		logger.Debug("No file %q on %s/%s", name, target.Type, target.Identifier)
		return nil
	}

	dir, err := os.MkdirTemp(s.tempDir, "churchtools-files-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	paths := make([]string, len(keep))
	for i, f := range keep {
		paths[i] = filepath.Join(dir, fmt.Sprintf("%d_%d", i, f.ID))
		if err := s.downloadTo(ctx, f.FileURL, paths[i]); err != nil {
			return fmt.Errorf("back up %s: %w", f.Name, err)
		}
	}

	if err := s.files.DeleteFiles(ctx, target); err != nil {
		return err
	}

	var errs []error
	for i, f := range keep {
		if err := s.uploadFrom(ctx, paths[i], target, f.Name); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// Download stores the named file in dir and returns the written path.
func (s *FileService) Download(ctx context.Context, name string, target domain.FileDomain, dir string) (string, error) {
	if s.files == nil {
		return "", domain.ErrNotImplemented
	}

	files, err := s.files.ListFiles(ctx, target)
	if err != nil {
		return "", fmt.Errorf("list files: %w", err)
	}

	for _, f := range files {
		if f.Name != name {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
		path := filepath.Join(dir, filepath.Base(f.Name))
		if err := s.downloadTo(ctx, f.FileURL, path); err != nil {
			return "", err
		}
		return path, nil
	}
	return "", fmt.Errorf("%w: file %q", domain.ErrNotFound, name)
}

func (s *FileService) downloadTo(ctx context.Context, fileURL, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.files.DownloadFile(ctx, fileURL, out); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

func (s *FileService) uploadFrom(ctx context.Context, path string, target domain.FileDomain, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.files.UploadFile(ctx, target, name, f)
}
