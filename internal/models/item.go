package models

// Kind is the content type of a board item. It is fixed at creation.
type Kind string

const (
	KindImage    Kind = "image"
	KindQuote    Kind = "quote"
	KindProgress Kind = "progress"
	KindGoal     Kind = "goal"
)

// Kinds lists every item kind in add-menu order
var Kinds = []Kind{KindImage, KindQuote, KindProgress, KindGoal}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindImage, KindQuote, KindProgress, KindGoal:
		return true
	}
	return false
}

// Position is an offset in board-local coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by delta
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Size is the footprint of an item in board-local units
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoardItem is a positioned, sized, typed unit of content on the dream board.
// Content is kind-dependent: a URL for images, free text for quotes, and a
// "label:value" or "label:target" composite for progress and goal items.
type BoardItem struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"kind"`
	Content  string   `json:"content"`
	Position Position `json:"position"`
	Size     Size     `json:"size"`
}

// Contains reports whether the board-local point p falls inside the item
func (i BoardItem) Contains(p Position) bool {
	return p.X >= i.Position.X && p.X < i.Position.X+i.Size.Width &&
		p.Y >= i.Position.Y && p.Y < i.Position.Y+i.Size.Height
}

// ============================================================================
// DEFAULTS
// ============================================================================

const (
	// DefaultImageURL is used when an image is added without a search result
	DefaultImageURL = "https://images.unsplash.com/photo-1518020382113-a7e8fc38eac9?w=600&q=80"
	DefaultQuote    = "Add your inspirational quote here"
	DefaultProgress = "New Progress:0"
	DefaultGoal     = "New Goal:2024"

	DefaultItemWidth  = 250
	DefaultItemHeight = 200
	QuoteItemHeight   = 150
)

// SpawnPosition is where newly added items appear
var SpawnPosition = Position{X: 250, Y: 250}

// DefaultContent returns the content a freshly added item of kind k starts with
func DefaultContent(k Kind) string {
	switch k {
	case KindImage:
		return DefaultImageURL
	case KindQuote:
		return DefaultQuote
	case KindGoal:
		return DefaultGoal
	default:
		return DefaultProgress
	}
}

// DefaultSize returns the creation-time size for kind k.
// Quotes are shorter than everything else.
func DefaultSize(k Kind) Size {
	if k == KindQuote {
		return Size{Width: DefaultItemWidth, Height: QuoteItemHeight}
	}
	return Size{Width: DefaultItemWidth, Height: DefaultItemHeight}
}
