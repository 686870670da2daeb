package rest

import "github.com/hongminglow/payload-master/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.Author != nil {
		author := NewAuthor(*p.Author)
		post.Author = &author
	}

	if len(p.Categories) > 0 {
		post.Categories = Map(p.Categories, NewCategory)
	}

	return post
}

func NewShowcase(s blog.Showcase) Showcase {
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

func NewPublishFailures(list []blog.PublishFailure) []PublishFailure {
	return Map(list, func(f blog.PublishFailure) PublishFailure {
		return PublishFailure{PostID: f.PostID, Error: f.Err}
	})
}
