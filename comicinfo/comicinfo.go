// Package comicinfo models ComicInfo.xml, the de-facto metadata document
// embedded in comic book archives. It covers the fields comic readers and
// library managers consume: series/title/numbering, credits, publication
// data, and the per-page index.
package comicinfo

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrInvalidDocument is returned when ComicInfo.xml cannot be parsed.
var ErrInvalidDocument = errors.New("comicinfo: invalid ComicInfo.xml document")

// YesNo is a tri-state flag used by ComicInfo for fields like
// BlackAndWhite.
type YesNo string

// YesNo values.
const (
	UnknownYesNo YesNo = "Unknown"
	No           YesNo = "No"
	Yes          YesNo = "Yes"
)

// Manga indicates whether the book is a manga, and if so whether it reads
// right to left.
type Manga string

// Manga values.
const (
	UnknownManga     Manga = "Unknown"
	NotManga         Manga = "No"
	IsManga          Manga = "Yes"
	MangaRightToLeft Manga = "YesAndRightToLeft"
)

// AgeRating is the content rating of the book, using the ComicInfo
// vocabulary.
type AgeRating string

// AgeRating values.
const (
	RatingUnknown        AgeRating = "Unknown"
	RatingEveryone       AgeRating = "Everyone"
	RatingTeen           AgeRating = "Teen"
	RatingMaturePlus17   AgeRating = "Mature 17+"
	RatingAdultsOnly18   AgeRating = "Adults Only 18+"
	RatingRatingPending  AgeRating = "Rating Pending"
	RatingEarlyChildhood AgeRating = "Early Childhood"
	RatingEveryone10Plus AgeRating = "Everyone 10+"
)

// ComicInfo is the root of a ComicInfo.xml document. Zero-valued fields
// are omitted on serialization.
type ComicInfo struct {
	XMLName xml.Name `xml:"ComicInfo"`

	Title       string `xml:"Title,omitempty"`
	Series      string `xml:"Series,omitempty"`
	Number      string `xml:"Number,omitempty"`
	Count       int    `xml:"Count,omitempty"`
	Volume      int    `xml:"Volume,omitempty"`
	Summary     string `xml:"Summary,omitempty"`
	Notes       string `xml:"Notes,omitempty"`
	Year        int    `xml:"Year,omitempty"`
	Month       int    `xml:"Month,omitempty"`
	Day         int    `xml:"Day,omitempty"`
	Writer      string `xml:"Writer,omitempty"`
	Penciller   string `xml:"Penciller,omitempty"`
	Inker       string `xml:"Inker,omitempty"`
	Colorist    string `xml:"Colorist,omitempty"`
	Letterer    string `xml:"Letterer,omitempty"`
	CoverArtist string `xml:"CoverArtist,omitempty"`
	Editor      string `xml:"Editor,omitempty"`
	Publisher   string `xml:"Publisher,omitempty"`
	Imprint     string `xml:"Imprint,omitempty"`
	Genre       string `xml:"Genre,omitempty"`
	Web         string `xml:"Web,omitempty"`

	PageCount       int       `xml:"PageCount,omitempty"`
	LanguageISO     string    `xml:"LanguageISO,omitempty"`
	Format          string    `xml:"Format,omitempty"`
	BlackAndWhite   YesNo     `xml:"BlackAndWhite,omitempty"`
	Manga           Manga     `xml:"Manga,omitempty"`
	AgeRating       AgeRating `xml:"AgeRating,omitempty"`
	ScanInformation string    `xml:"ScanInformation,omitempty"`

	Pages []PageInfo `xml:"Pages>Page,omitempty"`
}

// PageInfo is a single entry of the ComicInfo page index. Image is the
// zero-based position of the page in reading order; the image metadata
// fields mirror what was derived from the page's content.
type PageInfo struct {
	Image       int    `xml:"Image,attr"`
	Type        string `xml:"Type,attr,omitempty"`
	DoublePage  bool   `xml:"DoublePage,attr,omitempty"`
	ImageSize   int    `xml:"ImageSize,attr,omitempty"`
	Key         string `xml:"Key,attr,omitempty"`
	Bookmark    string `xml:"Bookmark,attr,omitempty"`
	ImageWidth  int    `xml:"ImageWidth,attr,omitempty"`
	ImageHeight int    `xml:"ImageHeight,attr,omitempty"`
}

// Marshal serializes the document as a standalone ComicInfo.xml payload,
// XML declaration included.
func Marshal(info *ComicInfo) ([]byte, error) {
	body, err := xml.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("comicinfo: marshalling: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Parse reads a ComicInfo.xml document.
func Parse(data []byte) (*ComicInfo, error) {
	var info ComicInfo
	if err := xml.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &info, nil
}
