package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InterceptPostCreate observes creation requests on the posts collection.
// The body is cloned and best-effort parsed to log the title; a parse
// failure is swallowed. The request and response are never altered and
// the wrapped handler always runs.
func (h *Handler) InterceptPostCreate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.Method != http.MethodPost || !strings.HasSuffix(req.URL.Path, "/api/posts") {
			return next(c)
		}

		var title string
		if req.Body != nil {
			body, err := io.ReadAll(req.Body)
			if err == nil {
				req.Body = io.NopCloser(bytes.NewReader(body))

				var payload struct {
					Title string `json:"title"`
				}
				if err := json.Unmarshal(body, &payload); err == nil {
					title = payload.Title
				}
			}
		}

		h.log.Info("intercepted post create",
			"title", title,
			"correlation_id", uuid.NewString(),
		)

		return next(c)
	}
}
