// Package format provides file format detection for the comicbox library.
package format

import (
	"io"
	"path/filepath"
	"strings"
)

// Format represents a file format recognized by the library: either a
// raster image format used for comic pages, or a comic archive container.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JPEG indicates a JPEG image.
	JPEG
	// PNG indicates a PNG image.
	PNG
	// GIF indicates a GIF image.
	GIF
	// WEBP indicates a WebP image.
	WEBP
	// BMP indicates a Windows bitmap image.
	BMP
	// TIFF indicates a TIFF image. TIFF is recognized so its rejection can
	// name the format, but it is not an accepted page format.
	TIFF
	// CBZ indicates a ZIP-based comic book archive.
	CBZ
	// CBR indicates a RAR-based comic book archive.
	CBR
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	case GIF:
		return "GIF"
	case WEBP:
		return "WebP"
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	case CBZ:
		return "CBZ"
	case CBR:
		return "CBR"
	default:
		return "Unknown"
	}
}

// Extension returns the canonical lowercase file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpg"
	case PNG:
		return ".png"
	case GIF:
		return ".gif"
	case WEBP:
		return ".webp"
	case BMP:
		return ".bmp"
	case TIFF:
		return ".tiff"
	case CBZ:
		return ".cbz"
	case CBR:
		return ".cbr"
	default:
		return ""
	}
}

// MIMEType returns the MIME type for the format.
func (f Format) MIMEType() string {
	switch f {
	case JPEG:
		return "image/jpeg"
	case PNG:
		return "image/png"
	case GIF:
		return "image/gif"
	case WEBP:
		return "image/webp"
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	case CBZ:
		return "application/vnd.comicbook+zip"
	case CBR:
		return "application/vnd.comicbook-rar"
	default:
		return ""
	}
}

// SupportedPageFormat reports whether the format is an accepted comic page
// image format. The accepted set is fixed: JPEG, PNG, GIF, WebP, and BMP.
// Formats outside this set (including recognized ones like TIFF) are
// rejected during page validation.
func (f Format) SupportedPageFormat() bool {
	switch f {
	case JPEG, PNG, GIF, WEBP, BMP:
		return true
	default:
		return false
	}
}

// Archive reports whether the format is a comic archive container.
func (f Format) Archive() bool {
	return f == CBZ || f == CBR
}

// Detect determines file format from filename extension. Extension-based
// detection is advisory only; page validation always relies on
// DetectFromMagic instead.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".jpe":
		return JPEG
	case ".png":
		return PNG
	case ".gif":
		return GIF
	case ".webp":
		return WEBP
	case ".bmp":
		return BMP
	case ".tif", ".tiff":
		return TIFF
	case ".cbz", ".zip":
		return CBZ
	case ".cbr", ".rar":
		return CBR
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
// Returns Unknown if the format cannot be determined from magic bytes.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// JPEG magic: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return JPEG
	}

	// PNG magic: 89 50 4E 47 0D 0A 1A 0A
	if len(data) >= 8 &&
		data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G' &&
		data[4] == 0x0D && data[5] == 0x0A && data[6] == 0x1A && data[7] == 0x0A {
		return PNG
	}

	// GIF magic: "GIF87a" or "GIF89a"
	if len(data) >= 6 &&
		data[0] == 'G' && data[1] == 'I' && data[2] == 'F' && data[3] == '8' &&
		(data[4] == '7' || data[4] == '9') && data[5] == 'a' {
		return GIF
	}

	// WebP is a RIFF container: "RIFF" <size> "WEBP"
	if len(data) >= 12 &&
		data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
		data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
		return WEBP
	}

	// BMP magic: "BM". Two bytes only, so check after the longer signatures.
	if data[0] == 'B' && data[1] == 'M' {
		return BMP
	}

	// TIFF magic: "II*\0" (little-endian) or "MM\0*" (big-endian)
	if (data[0] == 'I' && data[1] == 'I' && data[2] == 0x2A && data[3] == 0x00) ||
		(data[0] == 'M' && data[1] == 'M' && data[2] == 0x00 && data[3] == 0x2A) {
		return TIFF
	}

	// ZIP magic (CBZ is a ZIP archive): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return CBZ
	}

	// RAR magic: "Rar!\x1A\x07\x00" (v1.5+) or "Rar!\x1A\x07\x01\x00" (v5)
	if len(data) >= 7 &&
		data[0] == 'R' && data[1] == 'a' && data[2] == 'r' && data[3] == '!' &&
		data[4] == 0x1A && data[5] == 0x07 &&
		(data[6] == 0x00 || data[6] == 0x01) {
		return CBR
	}

	return Unknown
}

// DetectFromReader determines format by reading leading bytes at offset 0.
// It is used to sniff archive containers before handing them to the
// matching reader.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 16)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
