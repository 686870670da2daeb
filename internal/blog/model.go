package blog

import (
	"time"
)

type Author struct {
	ID     int
	Name   string
	Bio    *string
	Avatar *string
}

type Category struct {
	ID          int
	Title       string
	Description *string
}

type Post struct {
	ID          int
	Title       string
	Slug        string
	Excerpt     *string
	Content     *string
	AuthorID    int
	Status      string
	PublishedOn *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author     *Author
	Categories []Category
}

type Showcase struct {
	ID       int
	Text     string
	Textarea string
	RichText *string
	Number   float64
	Checkbox bool
	Date     time.Time
	Email    string
	Select   string
	Radio    string
	JSON     map[string]interface{}
}

// Stats are summary counters over a single bounded read of the posts
// collection. Posts beyond the read cap are not counted.
type Stats struct {
	Total     int
	Published int
	Draft     int
	Timestamp time.Time
}

// Page is one bounded page of posts plus the collection-wide total.
type Page struct {
	Posts []Post
	Limit int
	Total int
}

// PublishFailure records one post that could not be transitioned.
type PublishFailure struct {
	PostID int
	Err    string
}

// PublishResult carries per-record outcomes of a bulk publish pass.
type PublishResult struct {
	PublishedCount int
	Failed         []PublishFailure
}
