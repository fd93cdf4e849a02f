package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeStore is the subset of the database used for résumé persistence.
type ResumeStore interface {
	CreateResume(ctx context.Context, userID uuid.UUID, doc *types.Document) (*db.Resume, error)
	GetResume(ctx context.Context, id, userID uuid.UUID) (*db.Resume, error)
	UpdateResume(ctx context.Context, id, userID uuid.UUID, doc *types.Document) (*db.Resume, error)
	DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// StoreGateway persists documents for one owner in a ResumeStore.
type StoreGateway struct {
	store ResumeStore
	owner uuid.UUID
}

// NewStoreGateway creates a gateway scoped to the given owner.
func NewStoreGateway(store ResumeStore, owner uuid.UUID) *StoreGateway {
	return &StoreGateway{store: store, owner: owner}
}

// LoadResume implements Gateway.
func (g *StoreGateway) LoadResume(ctx context.Context, id string) (*types.Document, error) {
	const op = "load resume"
	rid, err := uuid.Parse(id)
	if err != nil {
		return nil, NotFound(op, id)
	}
	r, err := g.store.GetResume(ctx, rid, g.owner)
	if err != nil {
		return nil, Network(op, id, err)
	}
	if r == nil {
		return nil, NotFound(op, id)
	}
	return r.Document, nil
}

// SaveResume implements Gateway. The whole document replaces the stored one.
func (g *StoreGateway) SaveResume(ctx context.Context, doc *types.Document) (*types.Document, error) {
	const op = "save resume"
	if doc == nil {
		return nil, Validation(op, "", "document is required", nil)
	}
	if err := schemas.ValidateDocument(doc); err != nil {
		return nil, Validation(op, doc.ID, "document failed validation", err)
	}

	if doc.ID == "" {
		r, err := g.store.CreateResume(ctx, g.owner, doc)
		if err != nil {
			return nil, Network(op, "", err)
		}
		return r.Document, nil
	}

	rid, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, NotFound(op, doc.ID)
	}
	r, err := g.store.UpdateResume(ctx, rid, g.owner, doc)
	if err != nil {
		return nil, Network(op, doc.ID, err)
	}
	if r == nil {
		return nil, NotFound(op, doc.ID)
	}
	return r.Document, nil
}

// DeleteResume implements Gateway.
func (g *StoreGateway) DeleteResume(ctx context.Context, id string) error {
	const op = "delete resume"
	rid, err := uuid.Parse(id)
	if err != nil {
		return NotFound(op, id)
	}
	deleted, err := g.store.DeleteResume(ctx, rid, g.owner)
	if err != nil {
		return Network(op, id, err)
	}
	if !deleted {
		return NotFound(op, id)
	}
	return nil
}
