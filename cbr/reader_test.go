package cbr

// RAR creation is proprietary, so no fixture archive can be built in a
// test. Coverage here is limited to the failure paths; the shared page
// classification and ordering logic is exercised through the cbz tests.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "no-such-file.cbr"))
	if err == nil {
		t.Fatal("Open() succeeded for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestOpen_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.cbr")
	if err := os.WriteFile(path, []byte("plain text, not a RAR archive"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(path); !errors.Is(err, ErrInvalidArchive) {
		t.Errorf("Open() error = %v, want ErrInvalidArchive", err)
	}
}

func TestOpenReader_Garbage(t *testing.T) {
	data := bytes.Repeat([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 64)
	if _, err := OpenReader(bytes.NewReader(data)); !errors.Is(err, ErrInvalidArchive) {
		t.Errorf("OpenReader() error = %v, want ErrInvalidArchive", err)
	}
}

func TestReader_PageAccessors(t *testing.T) {
	r := &Reader{}
	if r.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0", r.PageCount())
	}
	if r.Page(0) != nil || r.Page(-1) != nil {
		t.Error("Page() out of range should return nil")
	}
	if r.Info() != nil {
		t.Error("Info() should be nil without metadata")
	}
}
