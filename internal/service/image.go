package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lezzetli-tarifler/backend/internal/models"
)

// ImageService turns stored recipe image paths into download URLs.
// A nil *ImageService leaves images untouched.
type ImageService struct {
	signer ImageURLSigner
	ttl    time.Duration
}

func NewImageService(signer ImageURLSigner, ttl time.Duration) *ImageService {
	return &ImageService{signer: signer, ttl: ttl}
}

// SignRecipeImages sets URL on every image in place
func (s *ImageService) SignRecipeImages(ctx context.Context, images []models.RecipeImage) error {
	if s == nil || s.signer == nil {
		return nil
	}
	for i := range images {
		url, err := s.signer.GeneratePresignedURL(ctx, images[i].ImagePath, s.ttl)
		if err != nil {
			return fmt.Errorf("failed to sign image %s: %w", images[i].ID, err)
		}
		images[i].URL = url
	}
	return nil
}
