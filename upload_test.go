package pressroom

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestAllowedFile(t *testing.T) {
	tests := map[string]bool{
		"photo.png":       true,
		"photo.JPG":       true,
		"archive.tar.gif": true,
		"anim.webp":       true,
		"photo.jpeg":      true,
		"notes.txt":       false,
		"png":             false,
		"photo.png.exe":   false,
		"photo.":          false,
	}
	for name, want := range tests {
		if got := allowedFile(name); got != want {
			t.Errorf("allowedFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "etc_passwd"},
		{"i contain cool ümläuts.png", "i_contain_cool_umlauts.png"},
		{`C:\photos\sun.png`, "C_photos_sun.png"},
		{"  spaced   out .gif", "spaced_out_.gif"},
		{"...", ""},
		{"日本.png", "png"},
		{"__init__.py", "init__.py"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.expected {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestListUploads(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(0, 0, color.White)
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.jpg"), []byte("not really a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := listUploads(dir)
	if err != nil {
		t.Fatalf("listUploads: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2", len(files))
	}
	if files[0].Filename != "a.png" || files[0].Width != 4 || files[0].Height != 3 {
		t.Errorf("a.png = %+v", files[0])
	}
	if files[0].URL != "/uploads/a.png" {
		t.Errorf("URL = %q", files[0].URL)
	}
	if files[1].Filename != "b.jpg" || files[1].Width != 0 || files[1].Size != int64(len("not really a jpeg")) {
		t.Errorf("b.jpg = %+v", files[1])
	}
}

func TestListUploadsMissingDir(t *testing.T) {
	files, err := listUploads(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("listUploads: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want none", len(files))
	}
}
