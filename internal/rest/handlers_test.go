package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/payload-master/internal/blog"
	"github.com/hongminglow/payload-master/internal/db"
	"github.com/hongminglow/payload-master/internal/db/memory"
)

func newTestHandler(t *testing.T) (*memory.Store, *Handler, *echo.Echo) {
	t.Helper()

	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := blog.NewManager(store, nil, logger)
	handler := NewHandler(manager, store, logger)

	return store, handler, handler.RegisterRoutes()
}

func seedPosts(t *testing.T, store *memory.Store, posts ...db.Post) {
	t.Helper()

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := range posts {
		posts[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.CreatePost(context.Background(), &posts[i]))
	}
}

func doRequest(e *echo.Echo, method, target string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandler_Health(t *testing.T) {
	store, _, e := newTestHandler(t)
	// liveness must not depend on the store
	store.FailReads = errors.New("connection refused")

	rec := doRequest(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[HealthResponse](t, rec)
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "running", resp.Payload)
	require.False(t, resp.Timestamp.IsZero())
}

func TestHandler_Stats(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store,
		db.Post{Title: "One", Slug: "one", Status: db.StatusPublished},
		db.Post{Title: "Two", Slug: "two", Status: db.StatusDraft},
		db.Post{Title: "Three", Slug: "three", Status: db.StatusDraft},
	)

	rec := doRequest(e, http.MethodGet, "/api/posts/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[StatsResponse](t, rec)
	require.Equal(t, 3, resp.Total)
	require.Equal(t, 1, resp.Published)
	require.Equal(t, 2, resp.Draft)
	require.False(t, resp.Timestamp.IsZero())
}

func TestHandler_StatsStoreDown(t *testing.T) {
	store, _, e := newTestHandler(t)
	store.FailReads = errors.New("connection refused")

	rec := doRequest(e, http.MethodGet, "/api/posts/stats", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decode[map[string]string](t, rec)
	require.Equal(t, "internal error", resp["error"])
}

func TestHandler_PublishAll(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store,
		db.Post{Title: "Draft A", Slug: "draft-a", Status: db.StatusDraft},
		db.Post{Title: "Draft B", Slug: "draft-b", Status: db.StatusDraft},
		db.Post{Title: "Live", Slug: "live", Status: db.StatusPublished},
	)

	rec := doRequest(e, http.MethodPost, "/api/posts/publish-all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[PublishAllResponse](t, rec)
	require.Equal(t, "Publish pass completed", resp.Message)
	require.Equal(t, 2, resp.PublishedCount)
	require.Empty(t, resp.Failed)

	// repeating the pass finds no drafts left
	rec = doRequest(e, http.MethodPost, "/api/posts/publish-all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[PublishAllResponse](t, rec)
	require.Equal(t, 0, resp.PublishedCount)
}

func TestHandler_PublishAllReportsFailures(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store,
		db.Post{Title: "Draft A", Slug: "draft-a", Status: db.StatusDraft},
		db.Post{Title: "Draft B", Slug: "draft-b", Status: db.StatusDraft},
	)
	store.FailUpdate[1] = errors.New("row locked")

	rec := doRequest(e, http.MethodPost, "/api/posts/publish-all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[PublishAllResponse](t, rec)
	require.Equal(t, 1, resp.PublishedCount)
	require.Len(t, resp.Failed, 1)
	require.Equal(t, 1, resp.Failed[0].PostID)
	require.Contains(t, resp.Failed[0].Error, "row locked")
}

func TestHandler_ListPosts(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store,
		db.Post{Title: "Oldest", Slug: "oldest", Status: db.StatusDraft},
		db.Post{Title: "Middle", Slug: "middle", Status: db.StatusDraft},
		db.Post{Title: "Newest", Slug: "newest", Status: db.StatusPublished},
	)

	rec := doRequest(e, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[PageResponse](t, rec)
	require.Equal(t, 10, resp.Limit)
	require.Equal(t, 3, resp.TotalDocs)
	require.Len(t, resp.Docs, 3)
	require.Equal(t, "Newest", resp.Docs[0].Title)

	rec = doRequest(e, http.MethodGet, "/api/posts?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[PageResponse](t, rec)
	require.Equal(t, 2, resp.Limit)
	require.Equal(t, 3, resp.TotalDocs)
	require.Len(t, resp.Docs, 2)
}

func TestHandler_ListPostsBadLimit(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodGet, "/api/posts?limit=abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[map[string]string](t, rec)
	require.Equal(t, "invalid request parameters", resp["error"])
}

func TestHandler_GetPost(t *testing.T) {
	store, _, e := newTestHandler(t)

	author := db.Author{Name: "Jordan Reese"}
	require.NoError(t, store.CreateAuthor(context.Background(), &author))
	category := db.Category{Title: "Engineering"}
	store.CreateCategory(&category)

	seedPosts(t, store, db.Post{
		Title:      "Deep Dive",
		Slug:       "deep-dive",
		Status:     db.StatusPublished,
		AuthorID:   author.ID,
		Categories: []db.Category{category},
	})

	rec := doRequest(e, http.MethodGet, "/api/posts/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	post := decode[Post](t, rec)
	require.Equal(t, "Deep Dive", post.Title)
	require.NotNil(t, post.Author)
	require.Equal(t, "Jordan Reese", post.Author.Name)
	require.Len(t, post.Categories, 1)
	require.Equal(t, "Engineering", post.Categories[0].Title)
}

func TestHandler_GetPostMissing(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodGet, "/api/posts/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/posts/not-a-number", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreatePost(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/posts", `{"title":"From The Collection API","status":"published"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[CreatedResponse](t, rec)
	require.Equal(t, "Post successfully created.", resp.Message)
	require.Equal(t, "From The Collection API", resp.Doc.Title)
	require.Equal(t, "from-the-collection-api", resp.Doc.Slug)
	require.Equal(t, db.StatusPublished, resp.Doc.Status)
	require.NotNil(t, resp.Doc.PublishedOn)
}

func TestHandler_CreatePostUnparsableBody(t *testing.T) {
	// the interception middleware and the handler both tolerate a body
	// that is not valid JSON; creation proceeds with defaults
	_, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/posts", `{"title": not-json`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[CreatedResponse](t, rec)
	require.Equal(t, "Untitled Post", resp.Doc.Title)
	require.Equal(t, "untitled-post", resp.Doc.Slug)
	require.Equal(t, db.StatusDraft, resp.Doc.Status)
	require.Nil(t, resp.Doc.PublishedOn)
}

func TestHandler_UpdatePost(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store, db.Post{Title: "Draft", Slug: "draft", Status: db.StatusDraft})

	rec := doRequest(e, http.MethodPatch, "/api/posts/1", `{"status":"published","title":"Shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	post := decode[Post](t, rec)
	require.Equal(t, "Shipped", post.Title)
	require.Equal(t, db.StatusPublished, post.Status)
	require.NotNil(t, post.PublishedOn)
}

func TestHandler_UpdatePostMissing(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodPatch, "/api/posts/99", `{"title":"ghost"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CustomList(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store,
		db.Post{Title: "One", Slug: "one", Status: db.StatusDraft},
		db.Post{Title: "Two", Slug: "two", Status: db.StatusDraft},
	)

	rec := doRequest(e, http.MethodGet, "/api/custom/posts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[CustomListResponse](t, rec)
	require.Equal(t, customSource, resp.Source)
	require.NotEmpty(t, resp.Note)
	require.Equal(t, 10, resp.Limit)
	require.Equal(t, 2, resp.TotalDocs)
	require.Len(t, resp.Docs, 2)
}

func TestHandler_CustomListBadLimitFallsBack(t *testing.T) {
	store, _, e := newTestHandler(t)
	seedPosts(t, store, db.Post{Title: "Only", Slug: "only", Status: db.StatusDraft})

	rec := doRequest(e, http.MethodGet, "/api/custom/posts?limit=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[CustomListResponse](t, rec)
	require.Equal(t, 10, resp.Limit)
	require.Len(t, resp.Docs, 1)
}

func TestHandler_CustomCreate(t *testing.T) {
	_, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/custom/posts", `{"title":"Hello, World!  Foo","status":"published"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[CustomCreateResponse](t, rec)
	require.Equal(t, customSource, resp.Source)
	require.Equal(t, "hello-world-foo", resp.Created.Slug)
	require.Equal(t, db.StatusPublished, resp.Created.Status)
	require.NotNil(t, resp.Created.PublishedOn)
}

func TestHandler_CustomCreateDefaults(t *testing.T) {
	store, _, e := newTestHandler(t)

	rec := doRequest(e, http.MethodPost, "/api/custom/posts", `{"status":"PUBLISHED"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[CustomCreateResponse](t, rec)
	require.Equal(t, "Untitled Post", resp.Created.Title)
	require.Equal(t, "untitled-post", resp.Created.Slug)
	require.NotNil(t, resp.Created.Excerpt)
	require.Equal(t, "Created via custom API", *resp.Created.Excerpt)
	// only the exact lowercase value publishes
	require.Equal(t, db.StatusDraft, resp.Created.Status)
	require.Nil(t, resp.Created.PublishedOn)

	authors, err := store.Authors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 1)
	require.Equal(t, "API Bot", authors[0].Name)
}

func TestHandler_Authors(t *testing.T) {
	store, _, e := newTestHandler(t)
	require.NoError(t, store.CreateAuthor(context.Background(), &db.Author{Name: "Sam Ortiz"}))

	rec := doRequest(e, http.MethodGet, "/api/authors", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[[]Author](t, rec)
	require.Len(t, resp, 1)
	require.Equal(t, "Sam Ortiz", resp[0].Name)
}

func TestHandler_Categories(t *testing.T) {
	store, _, e := newTestHandler(t)
	store.CreateCategory(&db.Category{Title: "Releases"})
	store.CreateCategory(&db.Category{Title: "Culture"})

	rec := doRequest(e, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[[]Category](t, rec)
	require.Len(t, resp, 2)
	require.Equal(t, "Culture", resp[0].Title)
}

func TestHandler_Showcase(t *testing.T) {
	store, _, e := newTestHandler(t)
	store.CreateShowcase(&db.Showcase{
		Text:     "sample",
		Number:   4.5,
		Checkbox: true,
		Email:    "demo@example.com",
	})

	rec := doRequest(e, http.MethodGet, "/api/showcase", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[[]Showcase](t, rec)
	require.Len(t, resp, 1)
	require.Equal(t, "sample", resp[0].Text)
	require.True(t, resp[0].Checkbox)
}

func TestHandler_Dashboard(t *testing.T) {
	store, h, e := newTestHandler(t)
	seedPosts(t, store,
		db.Post{Title: "Front Page", Slug: "front-page", Status: db.StatusPublished},
		db.Post{Title: "Backlog", Slug: "backlog", Status: db.StatusDraft},
	)

	srv := httptest.NewServer(e)
	defer srv.Close()
	h.BaseURL = srv.URL

	resp, err := http.Get(srv.URL + "/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	require.Contains(t, page, "Direct database access")
	require.Contains(t, page, "Collection query API")
	require.Contains(t, page, "Custom route")
	require.NotContains(t, page, "Advisory")
	// every access path sees both posts
	require.Equal(t, 3, strings.Count(page, "Front Page [published]"))
	require.Equal(t, 3, strings.Count(page, "Backlog [draft]"))
}

func TestHandler_DashboardStoreDown(t *testing.T) {
	store, h, e := newTestHandler(t)
	store.FailReads = errors.New("connection refused")

	srv := httptest.NewServer(e)
	defer srv.Close()
	h.BaseURL = srv.URL

	resp, err := http.Get(srv.URL + "/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	require.Contains(t, page, "Advisory")
	require.Contains(t, page, "direct read failed")
}
