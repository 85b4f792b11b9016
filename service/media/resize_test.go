package media

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestShouldResize(t *testing.T) {
	opts := ResizeOptions{MaxWidth: 100, MaxHeight: 100}
	if ShouldResize(50, 50, opts) {
		t.Error("small image should not resize")
	}
	if !ShouldResize(150, 50, opts) {
		t.Error("wide image should resize")
	}
	if !ShouldResize(50, 150, opts) {
		t.Error("tall image should resize")
	}
	if ShouldResize(5000, 5000, ResizeOptions{}) {
		t.Error("no bounds: never resize")
	}
}

func TestTargetSize_Proportional(t *testing.T) {
	w, h := TargetSize(200, 100, ResizeOptions{MaxWidth: 100, MaxHeight: 100})
	if w != 100 || h != 50 {
		t.Errorf("TargetSize = %dx%d, want 100x50", w, h)
	}
	w, h = TargetSize(100, 400, ResizeOptions{MaxWidth: 100, MaxHeight: 100})
	if w != 25 || h != 100 {
		t.Errorf("TargetSize = %dx%d, want 25x100", w, h)
	}
	// Only one bound set
	w, h = TargetSize(300, 150, ResizeOptions{MaxWidth: 150})
	if w != 150 || h != 75 {
		t.Errorf("TargetSize = %dx%d, want 150x75", w, h)
	}
}

func TestProcess_NoResizeNeeded(t *testing.T) {
	res, err := Process(bytes.NewReader(pngBytes(t, 50, 50)), ResizeOptions{MaxWidth: 100, MaxHeight: 100})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Resized {
		t.Error("Resized = true for small image")
	}
	if res.Width != 50 || res.Height != 50 {
		t.Errorf("size = %dx%d, want 50x50", res.Width, res.Height)
	}
	if res.Format != "png" {
		t.Errorf("Format = %q, want png", res.Format)
	}
}

func TestProcess_Downscales(t *testing.T) {
	res, err := Process(bytes.NewReader(pngBytes(t, 200, 100)), ResizeOptions{MaxWidth: 100, MaxHeight: 100})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !res.Resized {
		t.Fatal("Resized = false for over-large image")
	}
	if res.Width != 100 || res.Height != 50 {
		t.Errorf("size = %dx%d, want 100x50", res.Width, res.Height)
	}
	if res.OrigWidth != 200 || res.OrigHeight != 100 {
		t.Errorf("orig size = %dx%d, want 200x100", res.OrigWidth, res.OrigHeight)
	}
	// Result must decode again
	img, _, err := image.Decode(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("re-decoded width = %d, want 100", img.Bounds().Dx())
	}
}

func TestProcess_ToWebP(t *testing.T) {
	res, err := Process(bytes.NewReader(pngBytes(t, 10, 10)), ResizeOptions{ToWebP: true})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Format != "webp" {
		t.Errorf("Format = %q, want webp", res.Format)
	}
}

func TestProcess_UndecodableInput(t *testing.T) {
	if _, err := Process(bytes.NewReader([]byte("not an image")), ResizeOptions{}); err == nil {
		t.Error("expected error for undecodable input")
	}
}
