package gateway

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// Memory is an in-process Gateway. Stored documents are copied on the way in and out.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]*types.Document
	// Fail, when set, is returned by every call as a network error.
	Fail error
}

// NewMemory creates an empty in-memory gateway.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]*types.Document)}
}

// LoadResume implements Gateway.
func (m *Memory) LoadResume(_ context.Context, id string) (*types.Document, error) {
	if m.Fail != nil {
		return nil, Network("load resume", id, m.Fail)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[id]
	if !ok {
		return nil, NotFound("load resume", id)
	}
	return doc.Clone(), nil
}

// SaveResume implements Gateway.
func (m *Memory) SaveResume(_ context.Context, doc *types.Document) (*types.Document, error) {
	if m.Fail != nil {
		return nil, Network("save resume", "", m.Fail)
	}
	if doc == nil {
		return nil, Validation("save resume", "", "document is required", nil)
	}
	if err := schemas.ValidateDocument(doc); err != nil {
		return nil, Validation("save resume", doc.ID, "document failed validation", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	saved := doc.Clone()
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	} else if _, ok := m.docs[saved.ID]; !ok {
		return nil, NotFound("save resume", saved.ID)
	}
	m.docs[saved.ID] = saved
	return saved.Clone(), nil
}

// DeleteResume implements Gateway.
func (m *Memory) DeleteResume(_ context.Context, id string) error {
	if m.Fail != nil {
		return Network("delete resume", id, m.Fail)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return NotFound("delete resume", id)
	}
	delete(m.docs, id)
	return nil
}

// Len returns the number of stored documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
