package rpc

import "github.com/hongminglow/payload-master/internal/blog"

func NewAuthor(a blog.Author) Author {
	return Author{
		ID:     a.ID,
		Name:   a.Name,
		Bio:    a.Bio,
		Avatar: a.Avatar,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
	}
}

func NewPost(p blog.Post) Post {
	post := Post{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Excerpt:     p.Excerpt,
		Content:     p.Content,
		AuthorID:    p.AuthorID,
		Status:      p.Status,
		PublishedOn: p.PublishedOn,
	}

	if p.Author != nil {
		author := NewAuthor(*p.Author)
		post.Author = &author
	}

	if len(p.Categories) > 0 {
		post.Categories = make([]Category, len(p.Categories))
		for i := range p.Categories {
			post.Categories[i] = NewCategory(p.Categories[i])
		}
	}

	return post
}

func NewPosts(list []blog.Post) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(list[i])
	}
	return result
}
