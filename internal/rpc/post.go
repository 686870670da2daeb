package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/hongminglow/payload-master/internal/blog"
)

//go:generate zenrpc

// PostService provides RPC methods over the posts collection.
type PostService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewPostService(manager *blog.Manager) *PostService {
	return &PostService{manager: manager}
}

// List retrieves one page of posts with author and categories expanded.
//
//zenrpc:limit=10 page size
//zenrpc:return list of posts
//zenrpc:500 internal server error
func (s *PostService) List(ctx context.Context, filter ListFilter) ([]Post, error) {
	limit := 0
	if filter.Limit != nil {
		limit = *filter.Limit
	}

	page, err := s.manager.PostsPage(ctx, limit)
	if err != nil {
		return nil, err
	}

	return NewPosts(page.Posts), nil
}

// ByID retrieves a single post with author and categories.
//
//zenrpc:id post numeric ID
//zenrpc:return post
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) ByID(ctx context.Context, req ByIDRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.manager.PostByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Stats computes total, published and draft counts over the posts collection.
//
//zenrpc:return summary counters
//zenrpc:500 internal server error
func (s *PostService) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.manager.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Total:     stats.Total,
		Published: stats.Published,
		Draft:     stats.Draft,
		Timestamp: stats.Timestamp,
	}, nil
}
