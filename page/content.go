// Package page models a single page of image content inside a comic book
// archive. The central type is Content, which pairs a raw image buffer with
// metadata derived from it: the sniffed format, pixel dimensions, and byte
// size. The format is always derived from the buffer's binary signature,
// never from a filename or a caller-supplied label, and metadata can never
// go stale: replacing the buffer re-runs the whole derivation atomically.
package page

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"

	// Header-only dimension probing goes through image.DecodeConfig, which
	// needs the decoders for every accepted page format registered.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/comicbox/format"
)

// ErrUnrecognizedContent is returned when signature sniffing cannot
// classify the bytes at all (empty or garbage input).
var ErrUnrecognizedContent = errors.New("page: unrecognized content")

// UnsupportedFormatError is returned when the bytes sniff to a real format
// that is outside the accepted page format set (for example TIFF or SVG).
type UnsupportedFormatError struct {
	// Extension is the canonical extension of the rejected format,
	// e.g. ".tiff". Empty when the sniffed format has no mapping.
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("page: unsupported image format: %s", e.Extension)
}

// Content holds the validated image bytes of a single comic page together
// with metadata derived from them. A Content is only ever observable in a
// fully consistent state: construction and replacement validate first and
// commit last, so a failed operation leaves no partially-updated instance
// behind.
//
// A Content value is not safe for concurrent replacement; callers sharing
// one instance across goroutines must serialize calls to Replace.
// Independent instances are fully independent and safe to build in
// parallel.
type Content struct {
	data   []byte
	format format.Format
	width  int
	height int
}

// FromBytes validates raw image bytes and returns a Content for them.
// The bytes must sniff to one of the accepted page formats (JPEG, PNG,
// GIF, WebP, BMP). It returns ErrUnrecognizedContent when the bytes cannot
// be classified at all, and an *UnsupportedFormatError when they belong to
// a recognized but unaccepted format. The input slice is copied; the
// caller keeps ownership of its own buffer.
func FromBytes(data []byte) (*Content, error) {
	c := &Content{}
	if err := c.Replace(data); err != nil {
		return nil, err
	}
	return c, nil
}

// FromBase64 decodes standard base64 text and validates the decoded bytes
// as page content.
func FromBase64(s string) (*Content, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("page: decoding base64: %w", err)
	}
	return FromBytes(data)
}

// Load reads a file fully into memory and validates it as page content.
// I/O errors are returned unchanged (wrapped for context); they are
// distinct from validation errors.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("page: reading %s: %w", path, err)
	}
	return FromBytes(data)
}

// Replace swaps in new image bytes, re-deriving all metadata. The swap is
// all-or-nothing: validation and dimension probing run against the new
// bytes first, and the instance is only touched once everything succeeded.
// On error the previous content and metadata are left exactly as they
// were.
func (c *Content) Replace(data []byte) error {
	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		return ErrUnrecognizedContent
	}
	if !f.SupportedPageFormat() {
		return &UnsupportedFormatError{Extension: f.Extension()}
	}

	width, height := probeDimensions(data)

	buf := make([]byte, len(data))
	copy(buf, data)

	c.data = buf
	c.format = f
	c.width = width
	c.height = height
	return nil
}

// probeDimensions extracts pixel dimensions by parsing only the image
// header. When the header cannot be parsed (truncated or corrupt data),
// it reports 0, 0: dimensions are advisory metadata, the format check is
// the hard gate.
func probeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width < 0 || cfg.Height < 0 {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// Bytes returns the page's image bytes. The returned slice is the
// Content's backing buffer and must not be modified by the caller.
func (c *Content) Bytes() []byte {
	return c.data
}

// Format returns the sniffed image format.
func (c *Content) Format() format.Format {
	return c.format
}

// Suffix returns the canonical lowercase file extension derived from the
// content's binary signature, e.g. ".jpg" or ".png".
func (c *Content) Suffix() string {
	return c.format.Extension()
}

// Width returns the pixel width, or 0 when the header could not be
// parsed. Width and height are only meaningful together; either being 0
// means the dimensions are unknown.
func (c *Content) Width() int {
	return c.width
}

// Height returns the pixel height, or 0 when the header could not be
// parsed.
func (c *Content) Height() int {
	return c.height
}

// Size returns the byte length of the content.
func (c *Content) Size() int {
	return len(c.data)
}

// Save writes the content bytes verbatim to path. No re-validation is
// performed; the content was validated when it entered the instance.
func (c *Content) Save(path string) error {
	if err := os.WriteFile(path, c.data, 0644); err != nil {
		return fmt.Errorf("page: writing %s: %w", path, err)
	}
	return nil
}
