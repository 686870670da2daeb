package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts retrieves up to limit posts ordered by created_at DESC.
// When withRelations is true the author and categories are expanded.
func (r *Repository) Posts(ctx context.Context, limit int, withRelations bool) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts)

	if withRelations {
		query = query.
			Relation("Author").
			Relation("Categories")
	}

	err := query.
		OrderExpr(`"t"."created_at" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// PostsByStatus retrieves up to limit posts with the given status,
// oldest first, without relation expansion.
func (r *Repository) PostsByStatus(ctx context.Context, status string, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Where(`"t"."status" = ?`, status).
		OrderExpr(`"t"."created_at" ASC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts by status: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostByID(ctx context.Context, id int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Author").
		Relation("Categories").
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) PostsCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get posts count: %w", err)
	}

	return count, nil
}

// CreatePost inserts a post and its category join rows.
func (r *Repository) CreatePost(ctx context.Context, post *Post) error {
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	for i := range post.Categories {
		join := &PostCategory{PostID: post.ID, CategoryID: post.Categories[i].ID}
		if _, err := r.db.ModelContext(ctx, join).Insert(); err != nil {
			return fmt.Errorf("failed to insert post category: %w", err)
		}
	}

	return nil
}

// UpdatePost updates the given columns of the post identified by its primary key.
// The updated_at column is always stamped.
func (r *Repository) UpdatePost(ctx context.Context, post *Post, columns ...string) error {
	post.UpdatedAt = time.Now()
	columns = append(columns, "updated_at")

	result, err := r.db.ModelContext(ctx, post).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("post %d not found", post.ID)
	}

	return nil
}

// AuthorByName retrieves an author by exact name match, nil when absent.
func (r *Repository) AuthorByName(ctx context.Context, name string) (*Author, error) {
	author := &Author{}
	err := r.db.ModelContext(ctx, author).
		Where(`"t"."name" = ?`, name).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}

	return author, nil
}

func (r *Repository) CreateAuthor(ctx context.Context, author *Author) error {
	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = now

	if _, err := r.db.ModelContext(ctx, author).Insert(); err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}

	return nil
}

func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	return authors, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."title" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Showcases(ctx context.Context, limit int) ([]Showcase, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var items []Showcase
	err := r.db.ModelContext(ctx, &items).
		OrderExpr(`"t"."id" ASC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query showcase: %w", err)
	}

	return items, nil
}
