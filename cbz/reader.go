// Package cbz reads and writes CBZ comic book archives. A CBZ is a ZIP
// container holding one image per page, usually alongside a ComicInfo.xml
// metadata document. Pages are identified by their content's binary
// signature rather than by entry extension, and ordered by natural sort of
// entry names (the reading order convention of comic readers).
package cbz

import (
	"archive/zip"
	"errors"
	"io"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/comicbox/comicinfo"
	"github.com/tsawler/comicbox/internal/natsort"
	"github.com/tsawler/comicbox/page"
)

// Reader-related errors.
var (
	ErrInvalidArchive = errors.New("cbz: invalid or corrupted archive")
	ErrNoPages        = errors.New("cbz: archive contains no supported page images")
)

// metadataFilename is the conventional name of the metadata entry.
const metadataFilename = "ComicInfo.xml"

// Reader provides access to CBZ content.
type Reader struct {
	zr       *zip.ReadCloser
	zrReader *zip.Reader // for archives opened from io.ReaderAt

	info    *comicinfo.ComicInfo
	pages   []*page.Page
	skipped []string
}

// Open opens a CBZ file from a path.
func Open(filePath string) (*Reader, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, ErrInvalidArchive
	}

	r := &Reader{zr: zr}
	if err := r.init(&zr.Reader); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// OpenReader opens a CBZ from an io.ReaderAt.
func OpenReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, ErrInvalidArchive
	}

	r := &Reader{zrReader: zr}
	if err := r.init(zr); err != nil {
		return nil, err
	}

	return r, nil
}

// init walks the archive, parsing ComicInfo.xml and collecting page
// images in reading order.
func (r *Reader) init(zr *zip.Reader) error {
	type candidate struct {
		name string
		file *zip.File
	}
	var candidates []candidate

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		name := entryName(f)
		if strings.EqualFold(path.Base(name), metadataFilename) {
			if err := r.readInfo(f); err != nil {
				return err
			}
			continue
		}

		candidates = append(candidates, candidate{name: name, file: f})
	}

	// Natural sort by entry name determines reading order: page names are
	// not reliably zero-padded ("page2" must come before "page10").
	sort.SliceStable(candidates, func(i, j int) bool {
		return natsort.Less(candidates[i].name, candidates[j].name)
	})

	for _, cand := range candidates {
		data, err := readEntry(cand.file)
		if err != nil {
			return err
		}

		content, err := page.FromBytes(data)
		if err != nil {
			// Non-image entries (thumbnail databases, text files) and
			// unsupported image formats are skipped, not fatal.
			r.skipped = append(r.skipped, cand.name)
			continue
		}

		p := page.New(content)
		r.applyPageInfo(p, len(r.pages))
		r.pages = append(r.pages, p)
	}

	if len(r.pages) == 0 {
		return ErrNoPages
	}
	return nil
}

// applyPageInfo copies descriptive metadata from the ComicInfo page index
// onto a page, matching by reading-order position.
func (r *Reader) applyPageInfo(p *page.Page, index int) {
	if r.info == nil {
		return
	}
	for _, pi := range r.info.Pages {
		if pi.Image == index {
			p.Type = page.TypeFromString(pi.Type)
			p.DoublePage = pi.DoublePage
			p.Bookmark = pi.Bookmark
			p.Key = pi.Key
			return
		}
	}
}

func (r *Reader) readInfo(f *zip.File) error {
	data, err := readEntry(f)
	if err != nil {
		return err
	}
	info, err := comicinfo.Parse(data)
	if err != nil {
		return err
	}
	r.info = info
	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, ErrInvalidArchive
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, ErrInvalidArchive
	}
	return data, nil
}

// entryName returns the entry's name decoded for sorting and display.
// Archives produced by old Windows tools store names in the DOS default
// code page 437 rather than UTF-8.
func entryName(f *zip.File) string {
	if !f.NonUTF8 {
		return f.Name
	}
	decoded, err := charmap.CodePage437.NewDecoder().String(f.Name)
	if err != nil {
		return f.Name
	}
	return decoded
}

// Close releases the underlying file handle, if any.
func (r *Reader) Close() error {
	if r.zr != nil {
		return r.zr.Close()
	}
	return nil
}

// Info returns the parsed ComicInfo metadata, or nil when the archive has
// no ComicInfo.xml entry.
func (r *Reader) Info() *comicinfo.ComicInfo {
	return r.info
}

// Pages returns the archive's pages in reading order.
func (r *Reader) Pages() []*page.Page {
	return r.pages
}

// Page returns the page at the given zero-based reading-order position,
// or nil when out of range.
func (r *Reader) Page(i int) *page.Page {
	if i < 0 || i >= len(r.pages) {
		return nil
	}
	return r.pages[i]
}

// PageCount returns the number of pages.
func (r *Reader) PageCount() int {
	return len(r.pages)
}

// Skipped returns the names of archive entries that were not valid page
// images and were left out of the reading order.
func (r *Reader) Skipped() []string {
	return r.skipped
}
