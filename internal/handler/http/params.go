package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/lamijafatic/blog-website-api/models"
)

// defaultMaxUploadSize caps multipart bodies when no limit is configured.
const defaultMaxUploadSize int64 = 10 << 20

const imageFormField = "image"

// pageFromQuery reads the page and pageSize query parameters. Absent values
// take the defaults; anything else must be a positive integer.
func pageFromQuery(r *http.Request) (models.Page, error) {
	number, err := positiveQueryInt(r, "page", models.DefaultPage)
	if err != nil {
		return models.Page{}, err
	}

	size, err := positiveQueryInt(r, "pageSize", models.DefaultPageSize)
	if err != nil {
		return models.Page{}, err
	}

	return models.NewPage(number, size), nil
}

func positiveQueryInt(r *http.Request, key string, def int64) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPaging, key, raw)
	}
	return v, nil
}

// decodeJSON decodes the request body into dst. An empty body is invalid.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// parseMultipart parses a multipart body bounded by the configured upload size.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	return nil
}

// formImage returns the content of the "image" file field. A missing
// field yields nil without error.
func formImage(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}
	return content, nil
}

// formValue returns a pointer to the form value of key, or nil when the
// form does not carry key.
func formValue(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
