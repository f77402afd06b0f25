package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"realestate-backend/config"

	"github.com/google/uuid"
)

var mimeExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ImageService stores uploaded property photos under the uploads directory
// and returns the relative reference kept in the photos list.
type ImageService struct {
	cfg     *config.Config
	baseDir string
}

func NewImageService(cfg *config.Config) *ImageService {
	return &ImageService{cfg: cfg, baseDir: "uploads"}
}

// SavePropertyPhoto decodes a base64 payload (optionally a data URL), checks
// type and size against the image configuration, and writes it under a
// random name. Returns the reference to store, e.g. "properties/<uuid>.jpg".
func (s *ImageService) SavePropertyPhoto(b64 string) (string, error) {
	ext := "jpg"
	if strings.HasPrefix(b64, "data:") {
		end := strings.Index(b64, ";")
		if end < 0 {
			return "", &ValidationError{Fields: map[string]string{"photo": "malformed data URL"}}
		}
		mime := b64[len("data:"):end]
		mapped, ok := mimeExtensions[mime]
		if !ok {
			return "", &ValidationError{Fields: map[string]string{"photo": "unsupported image type " + mime}}
		}
		ext = mapped
	}
	if !s.extensionAllowed(ext) {
		return "", &ValidationError{Fields: map[string]string{"photo": "image type ." + ext + " not allowed"}}
	}

	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", &ValidationError{Fields: map[string]string{"photo": "invalid base64 payload"}}
	}

	maxBytes := s.cfg.Properties.Images.MaxSizeKB * 1024
	if maxBytes > 0 && len(data) > maxBytes {
		return "", &ValidationError{Fields: map[string]string{
			"photo": fmt.Sprintf("image exceeds %d KB", s.cfg.Properties.Images.MaxSizeKB),
		}}
	}

	dir := filepath.Join(s.baseDir, s.cfg.Properties.Images.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	filename := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	return filepath.ToSlash(filepath.Join(s.cfg.Properties.Images.Path, filename)), nil
}

// DeletePropertyPhoto removes a stored photo file. A missing file is not an
// error; the reference may point at an externally hosted image.
func (s *ImageService) DeletePropertyPhoto(ref string) error {
	if ref == "" || strings.Contains(ref, "..") || strings.HasPrefix(ref, "http") {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(ref)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *ImageService) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.Properties.Images.AllowedExtensions {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}
