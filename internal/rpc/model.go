package rpc

import (
	"time"
)

type ListFilter struct {
	//limit=10 page size
	Limit *int `json:"limit,omitempty"`
}

type ByIDRequest struct {
	//id post numeric ID
	ID int `json:"id"`
}

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
	Author      *Author    `json:"author,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
}

type Stats struct {
	Total     int       `json:"total"`
	Published int       `json:"published"`
	Draft     int       `json:"draft"`
	Timestamp time.Time `json:"timestamp"`
}
