package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/types"
)

// Model holds the document being edited plus the active section and template.
//
// Every mutation swaps in a new *types.Document; a snapshot returned by
// Document is never modified afterwards, so callers detect changes by
// pointer comparison. Gateway calls run without holding mu. Saves are
// serialised by saveMu so a second save sees the ID assigned by the first.
// Document edits and saves are refused with ErrLoadPending while a load is
// in flight.
type Model struct {
	mu         sync.Mutex
	saveMu     sync.Mutex
	gw         gateway.Gateway
	newID      IDFunc
	doc        *types.Document
	section    types.Section
	template   types.Template
	loading    bool
	generation uint64
}

// Option configures a Model.
type Option func(*Model)

// WithIDFunc overrides entry id generation.
func WithIDFunc(fn IDFunc) Option {
	return func(m *Model) {
		m.newID = fn
	}
}

// WithTemplate sets the initial template.
func WithTemplate(t types.Template) Option {
	return func(m *Model) {
		m.template = t
	}
}

// NewModel creates a model holding the seeded default document.
func NewModel(gw gateway.Gateway, opts ...Option) *Model {
	m := &Model{
		gw:       gw,
		newID:    NewEntryID,
		doc:      NewDocument(),
		section:  types.SectionPersonal,
		template: types.DefaultTemplate,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load fetches a stored document and makes it current. A load that completes
// after a newer Load or Reset returns ErrStaleLoad and leaves the model alone.
func (m *Model) Load(ctx context.Context, id string) (*types.Document, error) {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.loading = true
	m.mu.Unlock()

	doc, err := m.gw.LoadResume(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.generation {
		return nil, ErrStaleLoad
	}
	m.loading = false
	if err != nil {
		return nil, err
	}
	m.doc = doc
	return doc, nil
}

// Loading reports whether a load is in flight.
func (m *Model) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Reset discards the current document and any in-flight load.
func (m *Model) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.loading = false
	m.doc = NewDocument()
}

// Save persists the current document. On success the saved copy, which carries
// the assigned ID, becomes current unless the document was edited meanwhile.
func (m *Model) Save(ctx context.Context) (*types.Document, error) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.Lock()
	if m.loading {
		m.mu.Unlock()
		return nil, ErrLoadPending
	}
	doc := m.doc
	m.mu.Unlock()

	saved, err := m.gw.SaveResume(ctx, doc)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == doc {
		m.doc = saved
	} else if m.doc.ID == "" {
		next := m.doc.Clone()
		next.ID = saved.ID
		m.doc = next
	}
	return saved, nil
}

// Document returns the current snapshot.
func (m *Model) Document() *types.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc
}

// Snapshot is a consistent view of a model's state.
type Snapshot struct {
	Document      *types.Document
	Template      types.Template
	ActiveSection types.Section
	Loading       bool
}

// Snapshot returns the document, template, active section and load state
// read under one lock.
func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Document:      m.doc,
		Template:      m.template,
		ActiveSection: m.section,
		Loading:       m.loading,
	}
}

// Template returns the active template.
func (m *Model) Template() types.Template {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.template
}

// SetTemplate selects the rendering template. The document is untouched.
func (m *Model) SetTemplate(t types.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.template = t
}

// ActiveSection returns the visible editor panel.
func (m *Model) ActiveSection() types.Section {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.section
}

// SetActiveSection switches the visible editor panel.
func (m *Model) SetActiveSection(s types.Section) error {
	if !s.IsPanel() {
		return fmt.Errorf("section %q has no editor panel", s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.section = s
	return nil
}

// SetField edits one field. See SetField for the addressing rules.
func (m *Model) SetField(section types.Section, field string, value any, index *int) error {
	return m.update(func(doc *types.Document) (*types.Document, error) {
		return SetField(doc, section, field, value, index)
	})
}

// AddItem appends an empty entry to a list section.
func (m *Model) AddItem(section types.Section) error {
	return m.update(func(doc *types.Document) (*types.Document, error) {
		return AddItem(doc, section, m.newID)
	})
}

// RemoveItem removes an entry without the last-entry guard.
func (m *Model) RemoveItem(section types.Section, index int) error {
	return m.update(func(doc *types.Document) (*types.Document, error) {
		return RemoveItem(doc, section, index)
	})
}

// GuardedRemove removes an entry unless it is the last one in its list.
func (m *Model) GuardedRemove(section types.Section, index int) error {
	return m.update(func(doc *types.Document) (*types.Document, error) {
		return GuardedRemove(doc, section, index)
	})
}

// ApplySuggestion merges suggestion text into the document.
func (m *Model) ApplySuggestion(section types.Section, text string) error {
	return m.update(func(doc *types.Document) (*types.Document, error) {
		return ApplySuggestion(doc, section, text), nil
	})
}

func (m *Model) update(fn func(*types.Document) (*types.Document, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loading {
		return ErrLoadPending
	}
	next, err := fn(m.doc)
	if err != nil {
		return err
	}
	m.doc = next
	return nil
}
