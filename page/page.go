package page

// Type classifies a page's role within a comic book, following the
// ComicInfo page type vocabulary.
type Type int

const (
	// Story is a regular story page, the default.
	Story Type = iota
	// FrontCover is the front cover.
	FrontCover
	// InnerCover is an inner cover page.
	InnerCover
	// Roundup is a recap of previous issues.
	Roundup
	// Advertisement is an advertisement page.
	Advertisement
	// Editorial is an editorial page.
	Editorial
	// Letters is a letters-to-the-editor page.
	Letters
	// Preview is a preview of another comic.
	Preview
	// BackCover is the back cover.
	BackCover
	// Other is a page that fits no other category.
	Other
	// Deleted marks a page excluded from reading order.
	Deleted
)

// String returns the ComicInfo name for the page type.
func (t Type) String() string {
	switch t {
	case FrontCover:
		return "FrontCover"
	case InnerCover:
		return "InnerCover"
	case Roundup:
		return "Roundup"
	case Advertisement:
		return "Advertisement"
	case Editorial:
		return "Editorial"
	case Letters:
		return "Letters"
	case Preview:
		return "Preview"
	case BackCover:
		return "BackCover"
	case Other:
		return "Other"
	case Deleted:
		return "Deleted"
	default:
		return "Story"
	}
}

// TypeFromString parses a ComicInfo page type name. Unrecognized names
// map to Story, the schema default.
func TypeFromString(s string) Type {
	switch s {
	case "FrontCover":
		return FrontCover
	case "InnerCover":
		return InnerCover
	case "Roundup":
		return Roundup
	case "Advertisement":
		return Advertisement
	case "Editorial":
		return Editorial
	case "Letters":
		return Letters
	case "Preview":
		return Preview
	case "BackCover":
		return BackCover
	case "Other":
		return Other
	case "Deleted":
		return Deleted
	default:
		return Story
	}
}

// Page is a comic page: validated image content plus descriptive metadata
// supplied by the caller. The descriptive fields carry no validation
// logic; only the embedded Content is derived from the image bytes.
type Page struct {
	*Content

	// Type classifies the page's role (cover, story, ...).
	Type Type
	// DoublePage marks a two-page spread stored as a single image.
	DoublePage bool
	// Bookmark is an optional label shown in reader bookmark lists.
	Bookmark string
	// Key is an optional free-form key used by some reader applications.
	Key string
}

// New wraps validated content in a Page with default metadata.
func New(c *Content) *Page {
	return &Page{Content: c}
}
