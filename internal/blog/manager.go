package blog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hongminglow/payload-master/internal/db"
)

const (
	// statsReadCap bounds the single read behind Stats; posts beyond it
	// are silently excluded from the counters.
	statsReadCap = 1000
	// publishBatchCap bounds one PublishAll pass.
	publishBatchCap = 100
	// defaultPageLimit is used when a caller supplies no usable limit.
	defaultPageLimit = 10

	botAuthorName  = "API Bot"
	defaultTitle   = "Untitled Post"
	defaultExcerpt = "Created via custom API"
)

type Manager struct {
	store Store
	hooks *Hooks
	log   *slog.Logger
}

func NewManager(store Store, hooks *Hooks, log *slog.Logger) *Manager {
	if hooks == nil {
		hooks = NewHooks(log)
	}

	return &Manager{
		store: store,
		hooks: hooks,
		log:   log,
	}
}

func (m *Manager) Hooks() *Hooks {
	return m.hooks
}

// Stats computes summary counters over one bounded read of the posts
// collection, without relation expansion.
func (m *Manager) Stats(ctx context.Context) (*Stats, error) {
	posts, err := m.store.Posts(ctx, statsReadCap, false)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	stats := &Stats{
		Total:     len(posts),
		Timestamp: time.Now(),
	}
	for i := range posts {
		switch posts[i].Status {
		case db.StatusPublished:
			stats.Published++
		case db.StatusDraft:
			stats.Draft++
		}
	}

	return stats, nil
}

// PublishAll transitions up to publishBatchCap draft posts to published,
// sequentially. Each update carries its own outcome: a failing update is
// recorded against its post and the loop continues, so one bad row cannot
// abort the batch. Repeating the call is idempotent because the read
// re-filters by status.
func (m *Manager) PublishAll(ctx context.Context) (*PublishResult, error) {
	drafts, err := m.store.PostsByStatus(ctx, db.StatusDraft, publishBatchCap)
	if err != nil {
		return nil, fmt.Errorf("db get draft posts: %w", err)
	}

	result := &PublishResult{}
	for i := range drafts {
		post := &drafts[i]
		if err := m.publish(ctx, post); err != nil {
			m.log.Error("failed to publish post", "id", post.ID, "error", err)
			result.Failed = append(result.Failed, PublishFailure{
				PostID: post.ID,
				Err:    err.Error(),
			})
			continue
		}
		result.PublishedCount++
	}

	return result, nil
}

func (m *Manager) publish(ctx context.Context, post *db.Post) error {
	post.Status = db.StatusPublished
	if post.PublishedOn == nil {
		now := time.Now()
		post.PublishedOn = &now
	}

	if err := m.hooks.runPostBefore(ctx, OpUpdate, post); err != nil {
		return err
	}

	if err := m.store.UpdatePost(ctx, post, "status", "published_on"); err != nil {
		return err
	}

	m.hooks.runPostAfter(ctx, OpUpdate, post)
	return nil
}

// PostsPage retrieves one page of posts with author and categories
// expanded, plus the collection-wide total. A non-positive limit falls
// back to the default.
func (m *Manager) PostsPage(ctx context.Context, limit int) (*Page, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}

	posts, err := m.store.Posts(ctx, limit, true)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	total, err := m.store.PostsCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get posts count: %w", err)
	}

	return &Page{
		Posts: NewPosts(posts),
		Limit: limit,
		Total: total,
	}, nil
}

func (m *Manager) PostByID(ctx context.Context, id int) (*Post, error) {
	dbPost, err := m.store.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	post := NewPost(dbPost)
	return &post, nil
}

// CreateParams is the free-form creation payload. Zero values mean
// "not supplied" and are defaulted.
type CreateParams struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Status      string
	AuthorID    int
	CategoryIDs []int
}

// CreatePost persists a new post, defaulting title, slug, excerpt and
// author. Status is coerced to published only on an exact "published"
// match; anything else becomes draft. The publish date is stamped only
// when the resolved status is published.
func (m *Manager) CreatePost(ctx context.Context, params CreateParams) (*Post, error) {
	title := params.Title
	if title == "" {
		title = defaultTitle
	}

	slug := params.Slug
	if slug == "" {
		slug = Slugify(title)
	}

	excerpt := params.Excerpt
	if excerpt == "" {
		excerpt = defaultExcerpt
	}

	status := db.StatusDraft
	if params.Status == db.StatusPublished {
		status = db.StatusPublished
	}

	authorID := params.AuthorID
	if authorID == 0 {
		id, err := m.ensureBotAuthor(ctx)
		if err != nil {
			return nil, err
		}
		authorID = id
	}

	post := &db.Post{
		Title:    title,
		Slug:     slug,
		Excerpt:  &excerpt,
		AuthorID: authorID,
		Status:   status,
	}

	if params.Content != "" {
		content := params.Content
		post.Content = &content
	}

	if status == db.StatusPublished {
		now := time.Now()
		post.PublishedOn = &now
	}

	for _, id := range params.CategoryIDs {
		post.Categories = append(post.Categories, db.Category{ID: id})
	}

	if err := m.hooks.runPostBefore(ctx, OpCreate, post); err != nil {
		return nil, fmt.Errorf("before-change hook: %w", err)
	}

	if err := m.store.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("db create post: %w", err)
	}

	m.hooks.runPostAfter(ctx, OpCreate, post)

	created := NewPost(post)
	return &created, nil
}

// ensureBotAuthor resolves the sentinel author by exact name, creating it
// when absent. Lookup-then-create: concurrent calls may race a duplicate.
func (m *Manager) ensureBotAuthor(ctx context.Context) (int, error) {
	author, err := m.store.AuthorByName(ctx, botAuthorName)
	if err != nil {
		return 0, fmt.Errorf("db get author by name: %w", err)
	}
	if author != nil {
		return author.ID, nil
	}

	bio := "Posts created through the custom API without an explicit author."
	created := &db.Author{Name: botAuthorName, Bio: &bio}
	if err := m.store.CreateAuthor(ctx, created); err != nil {
		return 0, fmt.Errorf("db create author: %w", err)
	}

	m.hooks.runAuthorAfter(ctx, OpCreate, created)
	return created.ID, nil
}

// UpdateParams carries a partial patch; nil means "leave unchanged".
type UpdateParams struct {
	Title   *string
	Slug    *string
	Excerpt *string
	Content *string
	Status  *string
}

// UpdatePost applies a partial patch to an existing post. Returns nil
// when the post does not exist.
func (m *Manager) UpdatePost(ctx context.Context, id int, params UpdateParams) (*Post, error) {
	existing, err := m.store.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if existing == nil {
		return nil, nil
	}

	var columns []string

	if params.Title != nil {
		existing.Title = *params.Title
		columns = append(columns, "title")
	}
	if params.Slug != nil {
		existing.Slug = *params.Slug
		columns = append(columns, "slug")
	}
	if params.Excerpt != nil {
		existing.Excerpt = params.Excerpt
		columns = append(columns, "excerpt")
	}
	if params.Content != nil {
		existing.Content = params.Content
		columns = append(columns, "content")
	}
	if params.Status != nil {
		status := db.StatusDraft
		if *params.Status == db.StatusPublished {
			status = db.StatusPublished
		}
		existing.Status = status
		columns = append(columns, "status")

		if status == db.StatusPublished && existing.PublishedOn == nil {
			now := time.Now()
			existing.PublishedOn = &now
			columns = append(columns, "published_on")
		}
	}

	if len(columns) == 0 {
		post := NewPost(existing)
		return &post, nil
	}

	if err := m.hooks.runPostBefore(ctx, OpUpdate, existing); err != nil {
		return nil, fmt.Errorf("before-change hook: %w", err)
	}

	if err := m.store.UpdatePost(ctx, existing, columns...); err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	}

	m.hooks.runPostAfter(ctx, OpUpdate, existing)

	post := NewPost(existing)
	return &post, nil
}

func (m *Manager) Authors(ctx context.Context) ([]Author, error) {
	list, err := m.store.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get authors: %w", err)
	}

	return NewAuthors(list), nil
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

func (m *Manager) Showcases(ctx context.Context, limit int) ([]Showcase, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}

	list, err := m.store.Showcases(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get showcase: %w", err)
	}

	return NewShowcases(list), nil
}
