package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writePNG(t, t.TempDir(), "wallpaper.png")

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = (%d,%d,%d), want (10,20,30)", r>>8, g>>8, b>>8)
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	good := writePNG(t, dir, "ok.PNG")

	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "valid", path: good},
		{name: "empty", path: "", wantErr: "cannot be empty"},
		{name: "missing", path: filepath.Join(dir, "nope.png"), wantErr: "not found"},
		{name: "directory", path: dir, wantErr: "directory"},
		{name: "extension", path: text, wantErr: "unsupported image extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateImagePath() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateImagePath() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCorruptImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("dummy image data"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader().Load(path); err == nil || !strings.Contains(err.Error(), "failed to read image header") {
		t.Errorf("Load() error = %v, want header failure", err)
	}
}

