package models

// ImageFormat is one resolution variant of a post image.
type ImageFormat struct {
	Name   string  `json:"name"`
	URL    string  `json:"url"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Size   float64 `json:"size"`
}

// PostImage is the optional cover image of a post, with its resolution
// variants keyed by name (thumbnail, small, medium, large).
type PostImage struct {
	ID      int                    `json:"id"`
	URL     string                 `json:"url"`
	Formats map[string]ImageFormat `json:"formats"`
}

// Post is a read-only blog entry. The client only lists and fetches posts.
// PublishedAtDisplay is the DD/MM/YYYY rendering filled by the API layer.
type Post struct {
	ID          int        `json:"id"`
	DocumentID  string     `json:"documentId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PublishedAt string     `json:"publishedAt"`
	Image       *PostImage `json:"image"`

	PublishedAtDisplay string `json:"-"`
}
