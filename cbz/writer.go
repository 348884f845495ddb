package cbz

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/comicbox/comicinfo"
	"github.com/tsawler/comicbox/page"
)

// ErrNoInput is returned when writing an archive with no pages.
var ErrNoInput = errors.New("cbz: no pages to write")

// Write assembles pages and metadata into a CBZ archive on w.
//
// Page entries are named with zero-padded reading-order numbers and the
// suffix derived from each page's content, so the archive reads back in
// the same order regardless of how the pages were named on disk. Image
// entries are stored uncompressed: page images are already compressed and
// deflating them again wastes time for no size win.
//
// When info is non-nil it is serialized as ComicInfo.xml with its page
// index and page count rebuilt from the actual pages, and its summary
// reduced to plain text.
func Write(w io.Writer, info *comicinfo.ComicInfo, pages []*page.Page) error {
	if len(pages) == 0 {
		return ErrNoInput
	}

	zw := zip.NewWriter(w)

	if info != nil {
		if err := writeInfo(zw, info, pages); err != nil {
			zw.Close()
			return err
		}
	}

	pad := numberWidth(len(pages))
	for i, p := range pages {
		name := fmt.Sprintf("%0*d%s", pad, i+1, p.Suffix())
		ew, err := zw.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Store,
		})
		if err != nil {
			return fmt.Errorf("cbz: creating entry %s: %w", name, err)
		}
		if _, err := ew.Write(p.Bytes()); err != nil {
			return fmt.Errorf("cbz: writing entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("cbz: finalizing archive: %w", err)
	}
	return nil
}

// WriteFile assembles pages and metadata into a CBZ archive at path.
func WriteFile(path string, info *comicinfo.ComicInfo, pages []*page.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cbz: creating %s: %w", path, err)
	}

	if err := Write(f, info, pages); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("cbz: closing %s: %w", path, err)
	}
	return nil
}

// writeInfo serializes ComicInfo.xml with the page index rebuilt from the
// pages being written. The caller's ComicInfo value is not modified.
func writeInfo(zw *zip.Writer, info *comicinfo.ComicInfo, pages []*page.Page) error {
	ci := *info
	ci.SanitizeSummary()
	ci.PageCount = len(pages)
	ci.Pages = make([]comicinfo.PageInfo, len(pages))
	for i, p := range pages {
		pi := comicinfo.PageInfo{
			Image:       i,
			DoublePage:  p.DoublePage,
			ImageSize:   p.Size(),
			Key:         p.Key,
			Bookmark:    p.Bookmark,
			ImageWidth:  p.Width(),
			ImageHeight: p.Height(),
		}
		if p.Type != page.Story {
			pi.Type = p.Type.String()
		}
		ci.Pages[i] = pi
	}

	data, err := comicinfo.Marshal(&ci)
	if err != nil {
		return err
	}

	ew, err := zw.Create(metadataFilename)
	if err != nil {
		return fmt.Errorf("cbz: creating %s: %w", metadataFilename, err)
	}
	if _, err := ew.Write(data); err != nil {
		return fmt.Errorf("cbz: writing %s: %w", metadataFilename, err)
	}
	return nil
}

// numberWidth returns the digit count needed to zero-pad n page numbers,
// with a floor of 3 to match the prevailing naming convention.
func numberWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	if w < 3 {
		w = 3
	}
	return w
}
