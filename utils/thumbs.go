package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// SaveImageWithThumb decodes an uploaded image, saves it under dir as
// <name>.jpg and writes a resized copy into dir/thumb. Returns the saved
// file name.
func SaveImageWithThumb(file multipart.File, dir, name string, thumbWidth int) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := name + ".jpg"
	if err := EnsureDir(dir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := imaging.Save(img, filepath.Join(dir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumbDir := filepath.Join(dir, "thumb")
	if err := EnsureDir(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return fileName, nil
}
