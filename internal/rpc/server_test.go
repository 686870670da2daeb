package rpc

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hongminglow/payload-master/internal/blog"
	"github.com/hongminglow/payload-master/internal/db"
	"github.com/hongminglow/payload-master/internal/db/memory"
)

type rpcEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
}

func callRPC(t *testing.T, handler http.Handler, body string) rpcEnvelope {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	raw, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	var env rpcEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestServer_Stats(t *testing.T) {
	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := blog.NewManager(store, nil, logger)

	require.NoError(t, store.CreatePost(context.Background(), &db.Post{
		Title:  "Live",
		Slug:   "live",
		Status: db.StatusPublished,
	}))
	require.NoError(t, store.CreatePost(context.Background(), &db.Post{
		Title:  "Pending",
		Slug:   "pending",
		Status: db.StatusDraft,
	}))

	server := New(logger, manager)

	env := callRPC(t, server, `{"jsonrpc":"2.0","id":1,"method":"post.stats"}`)
	require.Nil(t, env.Error)

	var stats Stats
	require.NoError(t, json.Unmarshal(env.Result, &stats))
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Published)
	require.Equal(t, 1, stats.Draft)
}

func TestServer_ByIDMissing(t *testing.T) {
	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := blog.NewManager(store, nil, logger)

	server := New(logger, manager)

	env := callRPC(t, server, `{"jsonrpc":"2.0","id":2,"method":"post.byid","params":{"req":{"id":42}}}`)
	require.NotNil(t, env.Error)
	require.Contains(t, string(env.Error), "post not found")
}
