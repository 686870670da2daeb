// Package memory is an in-memory implementation of the blog store
// capability set, used by unit tests in place of Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hongminglow/payload-master/internal/db"
)

type Store struct {
	mu sync.RWMutex

	posts      map[int]*db.Post
	authors    map[int]*db.Author
	categories map[int]*db.Category
	showcase   map[int]*db.Showcase
	joins      []db.PostCategory

	nextPostID     int
	nextAuthorID   int
	nextCategoryID int
	nextShowcaseID int

	// FailUpdate makes UpdatePost fail for specific post ids.
	FailUpdate map[int]error
	// FailReads makes all post reads fail, simulating store unavailability.
	FailReads error
}

func New() *Store {
	return &Store{
		posts:      make(map[int]*db.Post),
		authors:    make(map[int]*db.Author),
		categories: make(map[int]*db.Category),
		showcase:   make(map[int]*db.Showcase),
		FailUpdate: make(map[int]error),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Posts(ctx context.Context, limit int, withRelations bool) ([]db.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads != nil {
		return nil, s.FailReads
	}

	all := s.sortedPosts(func(a, b *db.Post) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	if len(all) > limit {
		all = all[:limit]
	}

	result := make([]db.Post, len(all))
	for i, p := range all {
		result[i] = *p
		if withRelations {
			s.expand(&result[i])
		}
	}

	return result, nil
}

func (s *Store) PostsByStatus(ctx context.Context, status string, limit int) ([]db.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads != nil {
		return nil, s.FailReads
	}

	all := s.sortedPosts(func(a, b *db.Post) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	var result []db.Post
	for _, p := range all {
		if p.Status != status {
			continue
		}
		result = append(result, *p)
		if len(result) == limit {
			break
		}
	}

	return result, nil
}

func (s *Store) PostByID(ctx context.Context, id int) (*db.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads != nil {
		return nil, s.FailReads
	}

	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}

	post := *p
	s.expand(&post)
	return &post, nil
}

func (s *Store) PostsCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.FailReads != nil {
		return 0, s.FailReads
	}

	return len(s.posts), nil
}

func (s *Store) CreatePost(ctx context.Context, post *db.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostID++
	post.ID = s.nextPostID

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	stored := *post
	stored.Author = nil
	stored.Categories = nil
	s.posts[post.ID] = &stored

	for i := range post.Categories {
		s.joins = append(s.joins, db.PostCategory{
			PostID:     post.ID,
			CategoryID: post.Categories[i].ID,
		})
	}

	return nil
}

func (s *Store) UpdatePost(ctx context.Context, post *db.Post, columns ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.FailUpdate[post.ID]; err != nil {
		return err
	}

	stored, ok := s.posts[post.ID]
	if !ok {
		return errNotFound("post")
	}

	for _, col := range columns {
		switch col {
		case "title":
			stored.Title = post.Title
		case "slug":
			stored.Slug = post.Slug
		case "excerpt":
			stored.Excerpt = post.Excerpt
		case "content":
			stored.Content = post.Content
		case "status":
			stored.Status = post.Status
		case "published_on":
			stored.PublishedOn = post.PublishedOn
		}
	}
	stored.UpdatedAt = time.Now()

	return nil
}

func (s *Store) AuthorByName(ctx context.Context, name string) (*db.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.authors {
		if a.Name == name {
			author := *a
			return &author, nil
		}
	}

	return nil, nil
}

func (s *Store) CreateAuthor(ctx context.Context, author *db.Author) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAuthorID++
	author.ID = s.nextAuthorID

	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = now

	stored := *author
	s.authors[author.ID] = &stored

	return nil
}

func (s *Store) Authors(ctx context.Context) ([]db.Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]db.Author, 0, len(s.authors))
	for _, a := range s.authors {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

// CreateCategory is a fixture helper, not part of the store capability set.
func (s *Store) CreateCategory(category *db.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++
	category.ID = s.nextCategoryID
	stored := *category
	s.categories[category.ID] = &stored
}

func (s *Store) Categories(ctx context.Context) ([]db.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]db.Category, 0, len(s.categories))
	for _, c := range s.categories {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Title < result[j].Title })

	return result, nil
}

// CreateShowcase is a fixture helper, not part of the store capability set.
func (s *Store) CreateShowcase(item *db.Showcase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextShowcaseID++
	item.ID = s.nextShowcaseID
	stored := *item
	s.showcase[item.ID] = &stored
}

func (s *Store) Showcases(ctx context.Context, limit int) ([]db.Showcase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]db.Showcase, 0, len(s.showcase))
	for _, item := range s.showcase {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	if len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// callers must hold s.mu
func (s *Store) sortedPosts(less func(a, b *db.Post) bool) []*db.Post {
	all := make([]*db.Post, 0, len(s.posts))
	for _, p := range s.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })
	return all
}

// callers must hold s.mu
func (s *Store) expand(post *db.Post) {
	if a, ok := s.authors[post.AuthorID]; ok {
		author := *a
		post.Author = &author
	}

	for _, join := range s.joins {
		if join.PostID != post.ID {
			continue
		}
		if c, ok := s.categories[join.CategoryID]; ok {
			post.Categories = append(post.Categories, *c)
		}
	}
}

type errNotFound string

func (e errNotFound) Error() string {
	return string(e) + " not found"
}
