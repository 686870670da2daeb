package rest

import "time"

type Author struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

type Category struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type Post struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	AuthorID    int        `json:"authorId"`
	Status      string     `json:"status"`
	PublishedOn *time.Time `json:"publishedOn"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Author      *Author    `json:"author,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
}

type Showcase struct {
	ID       int                    `json:"id"`
	Text     string                 `json:"text"`
	Textarea string                 `json:"textarea"`
	RichText *string                `json:"richText,omitempty"`
	Number   float64                `json:"number"`
	Checkbox bool                   `json:"checkbox"`
	Date     time.Time              `json:"date"`
	Email    string                 `json:"email"`
	Select   string                 `json:"select"`
	Radio    string                 `json:"radio"`
	JSON     map[string]interface{} `json:"json,omitempty"`
}

type StatsResponse struct {
	Total     int       `json:"total"`
	Published int       `json:"published"`
	Draft     int       `json:"draft"`
	Timestamp time.Time `json:"timestamp"`
}

type PublishFailure struct {
	PostID int    `json:"postId"`
	Error  string `json:"error"`
}

type PublishAllResponse struct {
	Message        string           `json:"message"`
	PublishedCount int              `json:"publishedCount"`
	Failed         []PublishFailure `json:"failed,omitempty"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Payload   string    `json:"payload"`
}

type PageResponse struct {
	Docs      []Post `json:"docs"`
	Limit     int    `json:"limit"`
	TotalDocs int    `json:"totalDocs"`
}

type CustomListResponse struct {
	Source    string `json:"source"`
	Note      string `json:"note"`
	Docs      []Post `json:"docs"`
	Limit     int    `json:"limit"`
	TotalDocs int    `json:"totalDocs"`
}

type CreatePostRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	AuthorID    int    `json:"authorId"`
	CategoryIDs []int  `json:"categoryIds"`
}

type CustomCreateResponse struct {
	Source  string `json:"source"`
	Created Post   `json:"created"`
}

type CreatedResponse struct {
	Message string `json:"message"`
	Doc     Post   `json:"doc"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Slug    *string `json:"slug"`
	Excerpt *string `json:"excerpt"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}
