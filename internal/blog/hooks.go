package blog

import (
	"context"
	"log/slog"

	"github.com/hongminglow/payload-master/internal/db"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
)

// PostHook is a lifecycle callback for post writes. Before-phase hooks
// receive the proposed values and may mutate them; returning an error
// aborts the write. After-phase hooks receive the persisted document.
type PostHook func(ctx context.Context, op Operation, post *db.Post) error

// AuthorHook is a lifecycle callback for author writes.
type AuthorHook func(ctx context.Context, op Operation, author *db.Author) error

// Hooks is the registry of lifecycle callbacks. All hooks of a phase run
// synchronously in registration order; the surrounding write call returns
// only after they do.
type Hooks struct {
	log *slog.Logger

	postBefore  []PostHook
	postAfter   []PostHook
	authorAfter []AuthorHook
}

func NewHooks(log *slog.Logger) *Hooks {
	return &Hooks{log: log}
}

func (h *Hooks) OnPostBeforeChange(fn PostHook) {
	h.postBefore = append(h.postBefore, fn)
}

func (h *Hooks) OnPostAfterChange(fn PostHook) {
	h.postAfter = append(h.postAfter, fn)
}

func (h *Hooks) OnAuthorAfterChange(fn AuthorHook) {
	h.authorAfter = append(h.authorAfter, fn)
}

// runPostBefore aborts on the first hook error.
func (h *Hooks) runPostBefore(ctx context.Context, op Operation, post *db.Post) error {
	for _, fn := range h.postBefore {
		if err := fn(ctx, op, post); err != nil {
			return err
		}
	}
	return nil
}

// runPostAfter logs hook errors without failing the call; the write is
// already committed at this point.
func (h *Hooks) runPostAfter(ctx context.Context, op Operation, post *db.Post) {
	for _, fn := range h.postAfter {
		if err := fn(ctx, op, post); err != nil {
			h.log.Error("post after-change hook failed", "operation", op, "id", post.ID, "error", err)
		}
	}
}

func (h *Hooks) runAuthorAfter(ctx context.Context, op Operation, author *db.Author) {
	for _, fn := range h.authorAfter {
		if err := fn(ctx, op, author); err != nil {
			h.log.Error("author after-change hook failed", "operation", op, "id", author.ID, "error", err)
		}
	}
}

// LogPostBeforeChange logs the proposed values and returns them unchanged.
func LogPostBeforeChange(log *slog.Logger) PostHook {
	return func(ctx context.Context, op Operation, post *db.Post) error {
		log.Info("post before change",
			"operation", op,
			"title", post.Title,
			"status", post.Status,
		)
		return nil
	}
}

// LogPostAfterChange logs the persisted document. The create branch is a
// placeholder for future side effects such as notification dispatch.
func LogPostAfterChange(log *slog.Logger) PostHook {
	return func(ctx context.Context, op Operation, post *db.Post) error {
		log.Info("post after change",
			"operation", op,
			"id", post.ID,
			"slug", post.Slug,
			"status", post.Status,
		)

		if op == OpCreate {
			// TODO: dispatch new-post notifications once a delivery
			// channel exists.
		}

		return nil
	}
}

func LogAuthorAfterChange(log *slog.Logger) AuthorHook {
	return func(ctx context.Context, op Operation, author *db.Author) error {
		log.Info("author after change",
			"operation", op,
			"id", author.ID,
			"name", author.Name,
		)
		return nil
	}
}
