package churchtools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// uploadField is the multipart field name the files endpoint expects.
const uploadField = "files[]"

func filesPath(target domain.FileDomain) string {
	return fmt.Sprintf("/api/files/%s/%s", url.PathEscape(target.Type), url.PathEscape(target.Identifier))
}

func checkDomain(target domain.FileDomain) error {
	if !target.IsValid() {
		return fmt.Errorf("%w: file domain %q/%q", domain.ErrInvalidInput, target.Type, target.Identifier)
	}
	return nil
}

// ListFiles returns the files attached to the target.
func (c *Client) ListFiles(ctx context.Context, target domain.FileDomain) ([]domain.File, error) {
	if err := checkDomain(target); err != nil {
		return nil, err
	}
	files, err := getData[[]domain.File](ctx, c, filesPath(target), nil)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

// UploadFile attaches content under name to the target.
func (c *Client) UploadFile(ctx context.Context, target domain.FileDomain, name string, content io.Reader) error {
	if err := checkDomain(target); err != nil {
		return err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(uploadField, name)
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("upload %s: read content: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}

	err = c.doJSON(ctx, request{
		method:      http.MethodPost,
		path:        filesPath(target),
		body:        body.Bytes(),
		contentType: mw.FormDataContentType(),
		csrf:        true,
	}, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("upload %s: %w: %w", name, domain.ErrUploadRejected, err)
		}
		return fmt.Errorf("upload %s: %w", name, err)
	}
	return nil
}

// DeleteFiles removes all files attached to the target.
func (c *Client) DeleteFiles(ctx context.Context, target domain.FileDomain) error {
	if err := checkDomain(target); err != nil {
		return err
	}
	err := c.doJSON(ctx, request{method: http.MethodDelete, path: filesPath(target), csrf: true}, nil)
	if err != nil {
		return fmt.Errorf("delete files: %w", err)
	}
	return nil
}

// DownloadFile streams the file behind fileURL into w.
func (c *Client) DownloadFile(ctx context.Context, fileURL string, w io.Writer) error {
	if fileURL == "" {
		return fmt.Errorf("%w: empty file url", domain.ErrInvalidInput)
	}
	resp, err := c.do(ctx, request{method: http.MethodGet, path: fileURL, csrf: true})
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("download: %w", err)
	}
	return nil
}
