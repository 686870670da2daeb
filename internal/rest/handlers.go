package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/hongminglow/payload-master/internal/blog"
)

const customSource = "custom-api"

type ListRequest struct {
	Limit *int `query:"limit"`
}

// CustomListRequest is bound from the query string via urlstruct; a value
// that does not parse falls back to the default limit instead of a 400.
type CustomListRequest struct {
	Limit int
}

type Handler struct {
	uc    *blog.Manager
	store blog.Store
	log   *slog.Logger

	// BaseURL is where the dashboard reaches this service's own HTTP
	// surface; set by the app wiring, overridden in tests.
	BaseURL string

	client *http.Client
}

func NewHandler(uc *blog.Manager, store blog.Store, log *slog.Logger) *Handler {
	return &Handler{
		uc:     uc,
		store:  store,
		log:    log,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Stats handles GET /api/posts/stats
// @Summary Get post statistics
// @Description Computes total, published and draft counts over one bounded read of the posts collection
// @Tags posts
// @Produce json
// @Success 200 {object} rest.StatsResponse
// @Failure 500 {object} map[string]string
// @Router /api/posts/stats [get]
func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, StatsResponse{
		Total:     stats.Total,
		Published: stats.Published,
		Draft:     stats.Draft,
		Timestamp: stats.Timestamp,
	})
}

// PublishAll handles POST /api/posts/publish-all
// @Summary Publish all draft posts
// @Description Transitions up to 100 draft posts to published, reporting per-post failures
// @Tags posts
// @Produce json
// @Success 200 {object} rest.PublishAllResponse
// @Failure 500 {object} map[string]string
// @Router /api/posts/publish-all [post]
func (h *Handler) PublishAll(c echo.Context) error {
	result, err := h.uc.PublishAll(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, PublishAllResponse{
		Message:        "Publish pass completed",
		PublishedCount: result.PublishedCount,
		Failed:         NewPublishFailures(result.Failed),
	})
}

// Health handles GET /api/health
// @Summary Liveness probe
// @Description Static liveness response; does not verify store availability
// @Tags health
// @Produce json
// @Success 200 {object} rest.HealthResponse
// @Router /api/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Payload:   "running",
	})
}

// ListPosts handles GET /api/posts
// @Summary List posts
// @Description Retrieves one page of posts with author and categories expanded
// @Tags posts
// @Produce json
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.PageResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/posts [get]
func (h *Handler) ListPosts(c echo.Context) error {
	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}

	page, err := h.uc.PostsPage(c.Request().Context(), limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, PageResponse{
		Docs:      Map(page.Posts, NewPost),
		Limit:     page.Limit,
		TotalDocs: page.Total,
	})
}

// GetPost handles GET /api/posts/:id
// @Summary Get post by ID
// @Description Retrieves a single post with author and categories
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/posts/{id} [get]
func (h *Handler) GetPost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	post, err := h.uc.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Description Creates a post through the generated-style collection surface
// @Tags posts
// @Accept json
// @Produce json
// @Param request body rest.CreatePostRequest true "Post fields"
// @Success 201 {object} rest.CreatedResponse
// @Failure 500 {object} map[string]string
// @Router /api/posts [post]
func (h *Handler) CreatePost(c echo.Context) error {
	var req CreatePostRequest
	// free-form body: a parse failure binds to zero values
	_ = c.Bind(&req)

	created, err := h.uc.CreatePost(c.Request().Context(), toCreateParams(req))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, CreatedResponse{
		Message: "Post successfully created.",
		Doc:     NewPost(*created),
	})
}

// UpdatePost handles PATCH /api/posts/:id
// @Summary Update post
// @Description Applies a partial patch to an existing post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body rest.UpdatePostRequest true "Fields to change"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/posts/{id} [patch]
func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), id, blog.UpdateParams{
		Title:   req.Title,
		Slug:    req.Slug,
		Excerpt: req.Excerpt,
		Content: req.Content,
		Status:  req.Status,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if post == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// CustomList handles GET /api/custom/posts
// @Summary List posts via the custom route
// @Description Independent list surface with its own limit handling and a source tag
// @Tags custom
// @Produce json
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.CustomListResponse
// @Failure 500 {object} map[string]string
// @Router /api/custom/posts [get]
func (h *Handler) CustomList(c echo.Context) error {
	var req CustomListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		// unusable limit falls back to the default
		req.Limit = 0
	}

	page, err := h.uc.PostsPage(c.Request().Context(), req.Limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, CustomListResponse{
		Source:    customSource,
		Note:      "Fetched through the custom posts route with one level of relationship expansion",
		Docs:      Map(page.Posts, NewPost),
		Limit:     page.Limit,
		TotalDocs: page.Total,
	})
}

// CustomCreate handles POST /api/custom/posts
// @Summary Create a post via the custom route
// @Description Derives title, slug and author defaults, coerces status and stamps the publish date
// @Tags custom
// @Accept json
// @Produce json
// @Param request body rest.CreatePostRequest true "Post fields, all optional"
// @Success 201 {object} rest.CustomCreateResponse
// @Failure 500 {object} map[string]string
// @Router /api/custom/posts [post]
func (h *Handler) CustomCreate(c echo.Context) error {
	var req CreatePostRequest
	// free-form body: a parse failure binds to zero values
	_ = c.Bind(&req)

	created, err := h.uc.CreatePost(c.Request().Context(), toCreateParams(req))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, CustomCreateResponse{
		Source:  customSource,
		Created: NewPost(*created),
	})
}

// Authors handles GET /api/authors
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} rest.Author
// @Failure 500 {object} map[string]string
// @Router /api/authors [get]
func (h *Handler) Authors(c echo.Context) error {
	authors, err := h.uc.Authors(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(authors, NewAuthor))
}

// Categories handles GET /api/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// Showcase handles GET /api/showcase
// @Summary List showcase entries
// @Tags showcase
// @Produce json
// @Success 200 {array} rest.Showcase
// @Failure 500 {object} map[string]string
// @Router /api/showcase [get]
func (h *Handler) Showcase(c echo.Context) error {
	items, err := h.uc.Showcases(c.Request().Context(), 0)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(items, NewShowcase))
}

func toCreateParams(req CreatePostRequest) blog.CreateParams {
	return blog.CreateParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Status:      req.Status,
		AuthorID:    req.AuthorID,
		CategoryIDs: req.CategoryIDs,
	}
}
