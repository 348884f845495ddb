// Package comicbox reads and writes comic book archives (CBZ and CBR)
// with validated page content and ComicInfo metadata.
//
// Reading:
//
//	book, err := comicbox.Open("issue-01.cbz")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(book.Info.Series, book.PageCount())
//
// Writing:
//
//	err := comicbox.New(&comicinfo.ComicInfo{Series: "Example Tales", Number: "1"}).
//	    AddPageFile("scans/cover.png").
//	    AddPageFile("scans/p001.jpg").
//	    Write("issue-01.cbz")
//
// For lower-level control, the page, cbz, cbr, and comicinfo packages are
// also available.
package comicbox

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/comicbox/cbr"
	"github.com/tsawler/comicbox/cbz"
	"github.com/tsawler/comicbox/comicinfo"
	"github.com/tsawler/comicbox/format"
	"github.com/tsawler/comicbox/page"
)

// ErrUnknownArchive is returned when Open cannot identify the file as a
// CBZ or CBR archive from its leading bytes.
var ErrUnknownArchive = errors.New("comicbox: not a CBZ or CBR archive")

// Book is a comic book loaded from an archive: its container format,
// optional ComicInfo metadata, and pages in reading order.
type Book struct {
	// Format is the container format the book was read from.
	Format format.Format
	// Info is the parsed ComicInfo metadata, nil when the archive has
	// none.
	Info *comicinfo.ComicInfo
	// Pages holds the book's pages in reading order.
	Pages []*page.Page
	// Skipped lists archive entries that were not valid page images.
	Skipped []string
}

// PageCount returns the number of pages.
func (b *Book) PageCount() int {
	return len(b.Pages)
}

// Page returns the page at the given zero-based reading-order position,
// or nil when out of range.
func (b *Book) Page(i int) *page.Page {
	if i < 0 || i >= len(b.Pages) {
		return nil
	}
	return b.Pages[i]
}

// Cover returns the page marked as front cover, falling back to the
// first page. Returns nil for an empty book.
func (b *Book) Cover() *page.Page {
	for _, p := range b.Pages {
		if p.Type == page.FrontCover {
			return p
		}
	}
	return b.Page(0)
}

// Open opens a comic archive, sniffing the container format from its
// leading bytes; the file extension is not consulted.
func Open(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("comicbox: opening %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("comicbox: stat %s: %w", path, err)
	}

	return OpenReader(f, st.Size())
}

// OpenReader opens a comic archive from an io.ReaderAt, sniffing the
// container format from its leading bytes.
func OpenReader(ra io.ReaderAt, size int64) (*Book, error) {
	f, err := format.DetectFromReader(ra)
	if err != nil {
		return nil, fmt.Errorf("comicbox: sniffing archive: %w", err)
	}

	switch f {
	case format.CBZ:
		r, err := cbz.OpenReader(ra, size)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return &Book{
			Format:  format.CBZ,
			Info:    r.Info(),
			Pages:   r.Pages(),
			Skipped: r.Skipped(),
		}, nil
	case format.CBR:
		r, err := cbr.OpenReader(io.NewSectionReader(ra, 0, size))
		if err != nil {
			return nil, err
		}
		return &Book{
			Format:  format.CBR,
			Info:    r.Info(),
			Pages:   r.Pages(),
			Skipped: r.Skipped(),
		}, nil
	default:
		return nil, ErrUnknownArchive
	}
}

// Builder assembles a CBZ archive page by page. Methods chain; errors
// from page validation are deferred and surface from the terminal Write
// or WriteTo call, matching the order they occurred in.
type Builder struct {
	info  *comicinfo.ComicInfo
	pages []*page.Page
	err   error
}

// New starts a builder for a new comic book. info may be nil to write an
// archive without ComicInfo.xml.
func New(info *comicinfo.ComicInfo) *Builder {
	return &Builder{info: info}
}

// AddPage appends an already-validated page.
func (b *Builder) AddPage(p *page.Page) *Builder {
	if b.err == nil {
		b.pages = append(b.pages, p)
	}
	return b
}

// AddPageBytes validates raw image bytes and appends them as a page.
func (b *Builder) AddPageBytes(data []byte) *Builder {
	if b.err != nil {
		return b
	}
	c, err := page.FromBytes(data)
	if err != nil {
		b.err = err
		return b
	}
	b.pages = append(b.pages, page.New(c))
	return b
}

// AddPageFile loads an image file and appends it as a page.
func (b *Builder) AddPageFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	c, err := page.Load(path)
	if err != nil {
		b.err = err
		return b
	}
	b.pages = append(b.pages, page.New(c))
	return b
}

// WriteTo writes the assembled CBZ archive to w.
func (b *Builder) WriteTo(w io.Writer) error {
	if b.err != nil {
		return b.err
	}
	return cbz.Write(w, b.info, b.pages)
}

// Write writes the assembled CBZ archive to path.
func (b *Builder) Write(path string) error {
	if b.err != nil {
		return b.err
	}
	return cbz.WriteFile(path, b.info, b.pages)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	book := comicbox.Must(comicbox.Open("issue-01.cbz"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
