package services

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImageService(t *testing.T) *ImageService {
	t.Helper()
	return &ImageService{cfg: testConfig(), baseDir: t.TempDir()}
}

func TestSavePropertyPhoto(t *testing.T) {
	svc := testImageService(t)

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake png bytes"))
	ref, err := svc.SavePropertyPhoto(payload)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ref, "properties/") || !strings.HasSuffix(ref, ".png") {
		t.Fatalf("ref = %q", ref)
	}

	stored := filepath.Join(svc.baseDir, filepath.FromSlash(ref))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Fatalf("stored bytes = %q", data)
	}
}

func TestSavePropertyPhotoRejectsBadInput(t *testing.T) {
	svc := testImageService(t)

	var ve *ValidationError
	if _, err := svc.SavePropertyPhoto("data:image/gif;base64,AAAA"); !errors.As(err, &ve) {
		t.Fatalf("gif should be rejected, got %v", err)
	}
	if _, err := svc.SavePropertyPhoto("data:image/png;base64,!!not-base64!!"); !errors.As(err, &ve) {
		t.Fatalf("bad base64 should be rejected, got %v", err)
	}
}

func TestSavePropertyPhotoSizeLimit(t *testing.T) {
	svc := testImageService(t)
	svc.cfg.Properties.Images.MaxSizeKB = 1

	big := make([]byte, 2048)
	payload := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(big)
	var ve *ValidationError
	if _, err := svc.SavePropertyPhoto(payload); !errors.As(err, &ve) {
		t.Fatalf("oversized image should be rejected, got %v", err)
	}
}

func TestDeletePropertyPhoto(t *testing.T) {
	svc := testImageService(t)

	payload := base64.StdEncoding.EncodeToString([]byte("bytes"))
	ref, err := svc.SavePropertyPhoto(payload)
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeletePropertyPhoto(ref); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(svc.baseDir, filepath.FromSlash(ref))); !os.IsNotExist(err) {
		t.Fatal("file should be gone")
	}

	// Missing files and external URLs are a no-op.
	if err := svc.DeletePropertyPhoto("properties/never-existed.jpg"); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeletePropertyPhoto("https://cdn.example.com/x.jpg"); err != nil {
		t.Fatal(err)
	}
}
