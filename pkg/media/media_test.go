package media

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestEncodeSmallImage(t *testing.T) {
	data := pngBytes(t, 40, 20)
	url, err := Encode(data, 1600)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %.40s", url)
	}

	mime, raw, err := DecodeDataURL(url)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/png" || !bytes.Equal(raw, data) {
		t.Error("small image should be sent unchanged")
	}
}

func TestEncodeDownscales(t *testing.T) {
	url, err := Encode(pngBytes(t, 3000, 1000), 1500)
	if err != nil {
		t.Fatal(err)
	}
	_, raw, err := DecodeDataURL(url)
	if err != nil {
		t.Fatal(err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1500 || b.Dy() != 500 {
		t.Errorf("size = %dx%d, want 1500x500", b.Dx(), b.Dy())
	}
}

func TestEncodeRejectsText(t *testing.T) {
	_, err := Encode([]byte("just some notes"), 0)
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}

func TestEncodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wall.png")
	if err := os.WriteFile(path, pngBytes(t, 10, 10), 0o600); err != nil {
		t.Fatal(err)
	}
	url, err := EncodeFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("unexpected data URL %.40s", url)
	}

	if _, err := EncodeFile(filepath.Join(t.TempDir(), "missing.png"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalizeBase64Payload(t *testing.T) {
	tests := map[string]string{
		"":                           "",
		"   ":                        "",
		"iVBORw0KGgo=":               "data:image/png;base64,iVBORw0KGgo=",
		" data:image/jpeg;base64,AA": "data:image/jpeg;base64,AA",
	}
	for in, want := range tests {
		if got := NormalizeBase64Payload(in); got != want {
			t.Errorf("NormalizeBase64Payload(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		url, base, want string
	}{
		{"", "http://localhost:5000/api", ""},
		{"https://cdn.example.com/a.jpg", "http://localhost:5000/api", "https://cdn.example.com/a.jpg"},
		{"data:image/png;base64,AA", "", "data:image/png;base64,AA"},
		{"/uploads/a.jpg", "http://localhost:5000/api", "http://localhost:5000/uploads/a.jpg"},
		{"/uploads/a.jpg", "http://localhost:5000/api/", "http://localhost:5000/uploads/a.jpg"},
		{"/uploads/a.jpg", "http://host/", "http://host/uploads/a.jpg"},
		{"uploads/a.jpg", "http://host/api", "uploads/a.jpg"},
	}
	for _, tt := range tests {
		if got := NormalizeImageURL(tt.url, tt.base); got != tt.want {
			t.Errorf("NormalizeImageURL(%q, %q) = %q, want %q", tt.url, tt.base, got, tt.want)
		}
	}
}
