package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

const dashboardReadLimit = 5

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html>
<head><title>Posts Dashboard</title></head>
<body>
<h1>Posts Dashboard</h1>
{{if .Banner}}<div class="banner"><strong>Advisory:</strong> {{.Banner}}</div>{{end}}
{{range .Sources}}
<section>
<h2>{{.Name}}</h2>
{{if .Err}}<p class="error">{{.Err}}</p>{{else}}
<p>{{len .Posts}} post(s)</p>
<ul>
{{range .Posts}}<li>{{.Title}} [{{.Status}}]</li>
{{end}}</ul>
{{end}}</section>
{{end}}
</body>
</html>
`))

type dashboardPost struct {
	Title  string
	Status string
}

type dashboardSource struct {
	Name  string
	Err   string
	Posts []dashboardPost
}

type dashboardView struct {
	Banner  string
	Sources []dashboardSource
}

// Dashboard handles GET /dashboard
// @Summary Comparative posts dashboard
// @Description Renders the same posts fetched through three access paths: the store directly, the generated collection API and the custom route
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	view := dashboardView{}

	// Access path 1: direct store read. This is the only place a store
	// failure is caught rather than propagated; it renders as an
	// advisory banner instead of a 500.
	direct := dashboardSource{Name: "Direct database access"}
	posts, err := h.store.Posts(ctx, dashboardReadLimit, false)
	if err != nil {
		h.log.Error("dashboard direct read failed", "error", err)
		direct.Err = "direct read failed"
		view.Banner = "The content store could not be reached for the local-data view. " +
			"Check the database connection; the HTTP views below may still work if the store recovered."
	} else {
		for i := range posts {
			direct.Posts = append(direct.Posts, dashboardPost{
				Title:  posts[i].Title,
				Status: posts[i].Status,
			})
		}
	}
	view.Sources = append(view.Sources, direct)

	// Access path 2: the generated-style collection API over HTTP.
	api := dashboardSource{Name: "Collection query API"}
	var page PageResponse
	if err := h.fetchJSON(fmt.Sprintf("%s/api/posts?limit=%d", h.BaseURL, dashboardReadLimit), &page); err != nil {
		api.Err = err.Error()
	} else {
		for _, p := range page.Docs {
			api.Posts = append(api.Posts, dashboardPost{Title: p.Title, Status: p.Status})
		}
	}
	view.Sources = append(view.Sources, api)

	// Access path 3: the custom posts route over HTTP.
	custom := dashboardSource{Name: "Custom route"}
	var list CustomListResponse
	if err := h.fetchJSON(fmt.Sprintf("%s/api/custom/posts?limit=%d", h.BaseURL, dashboardReadLimit), &list); err != nil {
		custom.Err = err.Error()
	} else {
		for _, p := range list.Docs {
			custom.Posts = append(custom.Posts, dashboardPost{Title: p.Title, Status: p.Status})
		}
	}
	view.Sources = append(view.Sources, custom)

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTML(http.StatusOK, buf.String())
}

func (h *Handler) fetchJSON(url string, out interface{}) error {
	resp, err := h.client.Get(url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}

	return nil
}
