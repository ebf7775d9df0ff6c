package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaRoot is the directory holding publicly served uploads. Images live
// under <root>/images and are served at /images.
func MediaRoot() string {
	root := os.Getenv("MEDIA_ROOT")
	if root == "" {
		root = "wwwroot"
	}
	return root
}

// StoreImage writes the uploaded file under the media root with a
// collision-resistant name and returns the relative URL path.
func StoreImage(file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(MediaRoot(), "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	fileName := uuid.New().String() + "_" + filepath.Base(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/images/" + fileName, nil
}

// DeleteImage removes the file behind a URL returned by StoreImage. A
// missing file is not an error.
func DeleteImage(imageURL string) error {
	rel := strings.TrimPrefix(imageURL, "/")
	path := filepath.Join(MediaRoot(), filepath.FromSlash(rel))

	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
