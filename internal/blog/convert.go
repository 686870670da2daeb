package blog

import (
	"github.com/hongminglow/payload-master/internal/db"
)

func NewAuthor(a *db.Author) Author {
	return Author{
		ID:     a.ID,
		Name:   a.Name,
		Bio:    a.Bio,
		Avatar: a.Avatar,
	}
}

func NewAuthors(list []db.Author) []Author {
	result := make([]Author, len(list))
	for i := range list {
		result[i] = NewAuthor(&list[i])
	}
	return result
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
	}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewPost(p *db.Post) Post {
	post := Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		AuthorID:    p.AuthorID,
		Status:      p.Status,
		PublishedOn: p.PublishedOn,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.Author != nil {
		author := NewAuthor(p.Author)
		post.Author = &author
	}

	if len(p.Categories) > 0 {
		post.Categories = NewCategories(p.Categories)
	}

	return post
}

func NewPosts(list []db.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(&list[i])
	}
	return result
}

func NewShowcase(s *db.Showcase) Showcase {
	return Showcase{
		ID:       s.ID,
		Text:     s.Text,
		Textarea: s.Textarea,
		RichText: s.RichText,
		Number:   s.Number,
		Checkbox: s.Checkbox,
		Date:     s.Date,
		Email:    s.Email,
		Select:   s.Select,
		Radio:    s.Radio,
		JSON:     s.JSON,
	}
}

func NewShowcases(list []db.Showcase) []Showcase {
	result := make([]Showcase, len(list))
	for i := range list {
		result[i] = NewShowcase(&list[i])
	}
	return result
}
