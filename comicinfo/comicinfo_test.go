package comicinfo

import (
	"errors"
	"strings"
	"testing"
)

func TestMarshalParse_RoundTrip(t *testing.T) {
	info := &ComicInfo{
		Title:       "The Long Night",
		Series:      "Example Tales",
		Number:      "3",
		Count:       12,
		Volume:      1,
		Summary:     "A quiet issue.",
		Year:        2019,
		Month:       7,
		Writer:      "A. Writer",
		Publisher:   "Example Press",
		Genre:       "Mystery",
		LanguageISO: "en",
		PageCount:   2,
		Manga:       MangaRightToLeft,
		AgeRating:   RatingTeen,
		Pages: []PageInfo{
			{Image: 0, Type: "FrontCover", ImageWidth: 600, ImageHeight: 900, ImageSize: 12345},
			{Image: 1, ImageWidth: 600, ImageHeight: 900, ImageSize: 23456, Bookmark: "Chapter 1"},
		},
	}

	data, err := Marshal(info)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("Marshal() output missing XML declaration")
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if parsed.Title != info.Title || parsed.Series != info.Series ||
		parsed.Number != info.Number || parsed.Publisher != info.Publisher {
		t.Errorf("round trip changed identity fields: %+v", parsed)
	}
	if parsed.Manga != MangaRightToLeft {
		t.Errorf("Manga = %q, want %q", parsed.Manga, MangaRightToLeft)
	}
	if parsed.AgeRating != RatingTeen {
		t.Errorf("AgeRating = %q, want %q", parsed.AgeRating, RatingTeen)
	}
	if len(parsed.Pages) != 2 {
		t.Fatalf("len(Pages) = %d, want 2", len(parsed.Pages))
	}
	if parsed.Pages[0].Type != "FrontCover" || parsed.Pages[0].ImageWidth != 600 {
		t.Errorf("page 0 = %+v", parsed.Pages[0])
	}
	if parsed.Pages[1].Bookmark != "Chapter 1" {
		t.Errorf("page 1 bookmark = %q", parsed.Pages[1].Bookmark)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("not xml at all <<<"))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Parse() error = %v, want ErrInvalidDocument", err)
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "A quiet issue.",
			want: "A quiet issue.",
		},
		{
			name: "simple markup",
			in:   "<p>The team returns to <em>Neo City</em>.</p>",
			want: "The team returns to Neo City.",
		},
		{
			name: "line breaks preserved",
			in:   "First arc.<br>Second arc.",
			want: "First arc.\nSecond arc.",
		},
		{
			name: "entities decoded",
			in:   "Cats &amp; dogs",
			want: "Cats & dogs",
		},
		{
			name: "whitespace trimmed",
			in:   "  padded  ",
			want: "padded",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeSummary(t *testing.T) {
	info := &ComicInfo{Summary: "<p>An <b>explosive</b> finale.</p>"}
	info.SanitizeSummary()
	if info.Summary != "An explosive finale." {
		t.Errorf("Summary = %q", info.Summary)
	}
}
