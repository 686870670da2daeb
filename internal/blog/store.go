package blog

import (
	"context"

	"github.com/hongminglow/payload-master/internal/db"
)

// Store is the persistent collection store capability set consumed by the
// service: bounded reads with optional relation expansion, creates and
// column-wise updates. The go-pg repository is the production
// implementation; tests substitute an in-memory one.
type Store interface {
	Posts(ctx context.Context, limit int, withRelations bool) ([]db.Post, error)
	PostsByStatus(ctx context.Context, status string, limit int) ([]db.Post, error)
	PostByID(ctx context.Context, id int) (*db.Post, error)
	PostsCount(ctx context.Context) (int, error)
	CreatePost(ctx context.Context, post *db.Post) error
	UpdatePost(ctx context.Context, post *db.Post, columns ...string) error

	AuthorByName(ctx context.Context, name string) (*db.Author, error)
	CreateAuthor(ctx context.Context, author *db.Author) error
	Authors(ctx context.Context) ([]db.Author, error)

	Categories(ctx context.Context) ([]db.Category, error)
	Showcases(ctx context.Context, limit int) ([]db.Showcase, error)

	Ping(ctx context.Context) error
}
