package draft

import (
	"context"

	"github.com/ManahilHabibb/DraftAI/internal/log"
)

// Store is the remote draft store as the coordinator sees it.
type Store interface {
	ListDrafts(ctx context.Context) ([]Draft, error)
	CreateDraft(ctx context.Context, title, content string) (Draft, error)
	UpdateDraft(ctx context.Context, id, title, content string) (Draft, error)
	DeleteDraft(ctx context.Context, id string) error
}

// SaveCoordinator decides create vs. update and talks to the remote store.
// Its methods take and return plain values so they can run off the control
// thread; binding the session and replacing the cache happen back on it.
type SaveCoordinator struct {
	store Store
}

// NewSaveCoordinator returns a coordinator backed by store.
func NewSaveCoordinator(store Store) *SaveCoordinator {
	return &SaveCoordinator{store: store}
}

// SaveOutcome is the result of a successful save.
type SaveOutcome struct {
	Draft   Draft
	Created bool // true when this save created the draft
}

// Save validates snap and persists it: a create when unbound, an update to
// the bound id otherwise. Validation failure returns ValidationError with
// zero network calls. Transport/HTTP failure returns SaveError; the caller's
// session binding is untouched because nothing was mutated here.
func (c *SaveCoordinator) Save(ctx context.Context, snap Snapshot) (SaveOutcome, error) {
	if err := snap.Validate(); err != nil {
		return SaveOutcome{}, err
	}

	if snap.BoundID == "" {
		d, err := c.store.CreateDraft(ctx, snap.Title, snap.Content)
		if err != nil {
			log.Error(log.CatDraft, "create failed", "error", err)
			return SaveOutcome{}, &SaveError{Cause: err}
		}
		log.Info(log.CatDraft, "draft created", "id", d.ID)
		return SaveOutcome{Draft: d, Created: true}, nil
	}

	d, err := c.store.UpdateDraft(ctx, snap.BoundID, snap.Title, snap.Content)
	if err != nil {
		log.Error(log.CatDraft, "update failed", "id", snap.BoundID, "error", err)
		return SaveOutcome{}, &SaveError{Cause: err}
	}
	log.Info(log.CatDraft, "draft updated", "id", d.ID)
	return SaveOutcome{Draft: d}, nil
}

// Delete removes the draft with the given id from the remote store.
// Transport/HTTP failure returns DeleteError; cache and session are the
// caller's to leave untouched.
func (c *SaveCoordinator) Delete(ctx context.Context, id string) error {
	if err := c.store.DeleteDraft(ctx, id); err != nil {
		log.Error(log.CatDraft, "delete failed", "id", id, "error", err)
		return &DeleteError{Cause: err}
	}
	log.Info(log.CatDraft, "draft deleted", "id", id)
	return nil
}

// Refresh fetches the full remote list. The caller replaces the cache with
// the result on success and keeps the previous snapshot on failure.
func (c *SaveCoordinator) Refresh(ctx context.Context) ([]Draft, error) {
	drafts, err := c.store.ListDrafts(ctx)
	if err != nil {
		log.Error(log.CatDraft, "refresh failed", "error", err)
		return nil, &FetchError{Cause: err}
	}
	return drafts, nil
}
