package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxPhotoSize = 5 << 20 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrFileTooLarge = fmt.Errorf("photo exceeds the %dMB limit", MaxPhotoSize>>20)
	ErrNotAnImage   = fmt.Errorf("photo must be an image file")
)

//go:generate mockgen -source=photo_store.go -destination=mock/photo_store_mock.go -package=mock
type PhotoStore interface {
	// Save validates and persists an uploaded photo, returning the stored
	// filename. A partially written file is removed on failure.
	Save(file *multipart.FileHeader) (string, error)
	// Remove deletes a stored photo; a missing file is not an error.
	Remove(filename string) error
}

type diskPhotoStore struct {
	dir string
}

func NewDiskPhotoStore(dir string) (PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskPhotoStore{dir: dir}, nil
}

func (s *diskPhotoStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxPhotoSize {
		return "", ErrFileTooLarge
	}
	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return "", ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write photo file: %w", err)
	}

	return name, nil
}

func (s *diskPhotoStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
