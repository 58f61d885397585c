package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"caseboard/internal/models"
	"caseboard/internal/observability"

	"github.com/google/uuid"
)

// allowedExtensions is the upload extension allow-list, matched
// case-insensitively on the final dot-delimited suffix.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"svg":  {},
	"webp": {},
	"pdf":  {},
}

// StoredFile describes a persisted upload.
type StoredFile struct {
	// URL is the public path the file is served from.
	URL string `json:"url"`
	// Name is the original filename, kept for display purposes only.
	Name string `json:"name"`
}

// UploadService persists uploads under a dedicated directory with generated,
// collision-free filenames.
type UploadService struct {
	dir string
}

// NewUploadService creates an UploadService storing files in dir.
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir}
}

// AllowedFile reports whether the filename carries an allow-listed extension.
func AllowedFile(filename string) bool {
	return fileExtension(filename) != ""
}

// fileExtension returns the lowercased final suffix when allow-listed, else "".
func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	ext := strings.ToLower(filename[idx+1:])
	if _, ok := allowedExtensions[ext]; !ok {
		return ""
	}
	return ext
}

// Store validates the filename and writes the content under a freshly
// generated name. The generated name is unique per call, so concurrent
// uploads never collide.
func (s *UploadService) Store(originalName string, src io.Reader) (*StoredFile, error) {
	ext := fileExtension(originalName)
	if originalName == "" || ext == "" {
		observability.UploadsRejectedTotal.Inc()
		return nil, models.NewValidationError("Invalid file")
	}

	generated := fmt.Sprintf("%s.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	dest := filepath.Join(s.dir, generated)

	// O_EXCL guards against the (vanishingly unlikely) name collision.
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, src); err != nil {
		_ = os.Remove(dest)
		return nil, models.NewInternalError(err)
	}

	observability.UploadsTotal.WithLabelValues(ext).Inc()

	return &StoredFile{
		URL:  "/uploads/" + generated,
		Name: originalName,
	}, nil
}
