// Package content provides the marketing content domain types: the items
// eligible to be returned as search results and the in-memory corpus that
// owns their lazily computed embeddings.
package content

// Category classifies a content item. The set is closed; ranking never
// inspects it.
type Category string

// Category values.
const (
	CategoryHotTopic  Category = "hot_topic"
	CategoryVisionary Category = "visionary"
	CategoryConcept   Category = "concept"
	CategoryReport    Category = "report"
)

// Item is a single piece of promotional content. The body text is both the
// embedding source and the keyword-fallback match target. Items are immutable;
// the corpus tracks embeddings separately.
type Item struct {
	id          string
	title       string
	description string
	body        string
	category    Category
	image       string
	video       string
	podcast     string
}

// ItemOption is a functional option for Item.
type ItemOption func(*Item)

// WithImage sets the display image reference.
func WithImage(ref string) ItemOption {
	return func(i *Item) { i.image = ref }
}

// WithVideo sets the video URL placeholder.
func WithVideo(url string) ItemOption {
	return func(i *Item) { i.video = url }
}

// WithPodcast sets the podcast URL placeholder.
func WithPodcast(url string) ItemOption {
	return func(i *Item) { i.podcast = url }
}

// NewItem creates a new Item.
func NewItem(id, title, description, body string, category Category, opts ...ItemOption) Item {
	item := Item{
		id:          id,
		title:       title,
		description: description,
		body:        body,
		category:    category,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// ID returns the stable item identifier.
func (i Item) ID() string { return i.id }

// Title returns the display title.
func (i Item) Title() string { return i.title }

// Description returns the short display description.
func (i Item) Description() string { return i.description }

// Body returns the long-form text.
func (i Item) Body() string { return i.body }

// Category returns the content category.
func (i Item) Category() Category { return i.category }

// Image returns the display image reference.
func (i Item) Image() string { return i.image }

// Video returns the video URL placeholder.
func (i Item) Video() string { return i.video }

// Podcast returns the podcast URL placeholder.
func (i Item) Podcast() string { return i.podcast }
