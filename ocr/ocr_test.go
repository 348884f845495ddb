//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/tsawler/comicbox/page"
)

// createTestPNG creates a simple PNG with a block pattern. OCR may or may
// not find text in it; these tests only verify the calls complete.
func createTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50 && x < width; x++ {
		for y := 10; y < 30 && y < height; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRecognizePage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	content, err := page.FromBytes(createTestPNG(t, 100, 50))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := client.RecognizePage(content); err != nil {
		t.Errorf("RecognizePage failed: %v", err)
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestClose(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	client.client = nil
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil inner client failed: %v", err)
	}
}
