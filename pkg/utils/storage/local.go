package storage

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"

	"github.com/google/uuid"

	"nicehomes_backend/pkg/utils/validation"
)

const urlPrefix = "/uploads/"

// Local stores uploads on the local filesystem and serves them back under
// the /uploads static prefix.
type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Save(file *multipart.FileHeader) (string, error) {
	if err := validation.ValidateImage(file); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Decode check so a renamed non-image never reaches the uploads dir.
	if _, _, err := image.DecodeConfig(src); err != nil {
		return "", validation.ErrFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	name := uuid.New().String() + filepath.Ext(strings.ToLower(file.Filename))
	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return urlPrefix + name, nil
}

func (l *Local) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(ref, urlPrefix))
	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the directory served under /uploads.
func (l *Local) Dir() string {
	return l.dir
}
