package service

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"

	"github.com/colefield/ripple/internal/domain"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

// ImageService stores and serves post images.
type ImageService struct {
	files domain.FileStore
}

// NewImageService creates a new ImageService.
func NewImageService(files domain.FileStore) *ImageService {
	return &ImageService{files: files}
}

// Upload validates and stores an image, returning the generated filename
// that posts reference.
func (s *ImageService) Upload(ctx context.Context, contentType string, data []byte) (string, error) {
	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return "", fmt.Errorf("%w: only JPEG and PNG images are accepted", domain.ErrInvalidInput)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: image data is empty", domain.ErrInvalidInput)
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("%w: image exceeds 10MB limit", domain.ErrInvalidInput)
	}

	name := uuid.NewString() + ext
	if err := s.files.Save(ctx, name, data); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return name, nil
}

// Get returns the image bytes and content type for a stored filename.
func (s *ImageService) Get(ctx context.Context, name string) ([]byte, string, error) {
	data, err := s.files.Get(ctx, name)
	if err != nil {
		return nil, "", err
	}

	contentType := "image/jpeg"
	if path.Ext(name) == ".png" {
		contentType = "image/png"
	}
	return data, contentType, nil
}
