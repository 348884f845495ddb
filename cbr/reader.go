// Package cbr reads CBR comic book archives. A CBR is a RAR container
// holding one image per page, usually alongside a ComicInfo.xml metadata
// document. The package is read-only: RAR creation is proprietary, so
// writing always targets CBZ instead.
//
// Page identification and ordering follow the same rules as package cbz:
// pages are classified by binary signature, not entry extension, and read
// in natural sort order of entry names.
package cbr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/nwaples/rardecode"

	"github.com/tsawler/comicbox/comicinfo"
	"github.com/tsawler/comicbox/internal/natsort"
	"github.com/tsawler/comicbox/page"
)

// Reader-related errors.
var (
	ErrInvalidArchive = errors.New("cbr: invalid or corrupted archive")
	ErrNoPages        = errors.New("cbr: archive contains no supported page images")
)

const metadataFilename = "ComicInfo.xml"

// Reader provides access to CBR content. Unlike the cbz reader it holds
// no file handle: RAR is a stream format, so all entries are read during
// Open.
type Reader struct {
	info    *comicinfo.ComicInfo
	pages   []*page.Page
	skipped []string
}

// Open opens a CBR file from a path.
func Open(filePath string) (*Reader, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("cbr: opening %s: %w", filePath, err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader opens a CBR from an io.Reader.
func OpenReader(src io.Reader) (*Reader, error) {
	rr, err := rardecode.NewReader(src, "")
	if err != nil {
		return nil, ErrInvalidArchive
	}

	r := &Reader{}
	if err := r.init(rr); err != nil {
		return nil, err
	}
	return r, nil
}

// init drains the archive stream, then sorts the collected entries into
// reading order and validates them as pages.
func (r *Reader) init(rr *rardecode.Reader) error {
	type entry struct {
		name string
		data []byte
	}
	var entries []entry

	for {
		hdr, err := rr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ErrInvalidArchive
		}
		if hdr.IsDir {
			continue
		}

		data, err := io.ReadAll(rr)
		if err != nil {
			return ErrInvalidArchive
		}

		if strings.EqualFold(path.Base(hdr.Name), metadataFilename) {
			info, err := comicinfo.Parse(data)
			if err != nil {
				return err
			}
			r.info = info
			continue
		}

		entries = append(entries, entry{name: hdr.Name, data: data})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return natsort.Less(entries[i].name, entries[j].name)
	})

	for _, e := range entries {
		content, err := page.FromBytes(e.data)
		if err != nil {
			r.skipped = append(r.skipped, e.name)
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
