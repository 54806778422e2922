// Package manager implements the entity-list management pattern behind the
// admin console screens: one full list per entity kind, a derived category
// filter, at most one inline edit session, and reconciliation by refetch
// after every successful mutation.
package manager

import (
	"context"
	"fmt"
	"mindful/media-admin/internal/domain"
	"sync"

	"go.uber.org/zap"
)

// Entity is any record the manager can list and filter.
type Entity interface {
	EntityID() string
	EntityCategory() string
}

// Fields is a staged copy of an entity's editable attributes.
type Fields interface {
	MissingFields() []string
}

// Repository is the backend contract for one entity kind. All operations
// are single-shot; failures come back as errors, never as panics.
type Repository[E Entity, F Fields] interface {
	List(ctx context.Context) ([]E, error)
	Create(ctx context.Context, fields F, media domain.MediaFile) (string, error)
	Update(ctx context.Context, id string, fields F) (string, error)
	Remove(ctx context.Context, id string) (string, error)
}

// Severity of a user-facing notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Notice is a user-visible notification emitted by the manager. Diagnostic
// detail goes to the logger instead; notices carry only what the user
// should see.
type Notice struct {
	Severity Severity
	Message  string
}

// Notifier receives user-facing notices.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Manager owns the full entity list, the active category filter, the edit
// session, and the pending delete confirmation for one entity kind.
//
// A mutex serializes every mutation together with its follow-up reload, so
// two overlapping mutations cannot interleave stale refetches.
type Manager[E Entity, F Fields] struct {
	repo   Repository[E, F]
	stage  func(E) F
	label  string
	notify Notifier
	log    *zap.Logger

	mu            sync.Mutex
	entities      []E
	selected      string
	session       EditSession[F]
	pendingDelete string
	loaded        bool
}

// New creates a manager for one entity kind. stage copies an entity's
// editable attributes into form state; label names the kind in fallback
// notices ("exercise", "music").
func New[E Entity, F Fields](repo Repository[E, F], stage func(E) F, label string, notify Notifier, logger *zap.Logger) *Manager[E, F] {
	if notify == nil {
		notify = NotifierFunc(func(Notice) {})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager[E, F]{
		repo:     repo,
		stage:    stage,
		label:    label,
		notify:   notify,
		log:      logger,
		selected: AllCategories,
	}
}

// Load fetches the full list from the repository. On failure the current
// list is left untouched; the error is logged and a notice is emitted.
// The filter selection survives reloads.
func (m *Manager[E, F]) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reload(ctx)
}

// reload must be called with the mutex held.
func (m *Manager[E, F]) reload(ctx context.Context) error {
	list, err := m.repo.List(ctx)
	if err != nil {
		m.log.Error("failed to load list",
			zap.String("kind", m.label),
			zap.Error(err))
		m.notify.Notify(Notice{Severity: SeverityError, Message: "Failed to fetch " + m.label + " list"})
		return err
	}
	m.entities = list
	m.loaded = true
	return nil
}

// Entities returns the full loaded list.
func (m *Manager[E, F]) Entities() []E {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entities
}

// Loaded reports whether an initial load has succeeded.
func (m *Manager[E, F]) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// Visible returns the filtered view of the list.
func (m *Manager[E, F]) Visible() []E {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Visible(m.entities, m.selected)
}

// Categories returns the derived filter options for the current list.
func (m *Manager[E, F]) Categories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Categories(m.entities)
}

// Selected returns the active filter category.
func (m *Manager[E, F]) Selected() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selected
}

// Select changes the active filter. Purely local: no request is made and
// the full list is untouched.
func (m *Manager[E, F]) Select(category string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if category == "" {
		category = AllCategories
	}
	m.selected = category
}

// Create validates the form locally, then uploads. A validation failure
// notifies the user and performs no network call. On success the form
// owner should reset its inputs; the list is reconciled by refetch. On
// failure the caller keeps its form populated for retry.
func (m *Manager[E, F]) Create(ctx context.Context, fields F, media domain.MediaFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	missing := fields.MissingFields()
	if media.Content == nil || media.FileName == "" {
		missing = append(missing, "media file")
	}
	if len(missing) > 0 {
		m.notify.Notify(Notice{Severity: SeverityError, Message: "Please fill all required fields."})
		return fmt.Errorf("missing required fields: %v", missing)
	}

	msg, err := m.repo.Create(ctx, fields, media)
	if err != nil {
		m.log.Error("create failed",
			zap.String("kind", m.label),
			zap.Error(err))
		m.notify.Notify(Notice{Severity: SeverityError, Message: err.Error()})
		return err
	}

	if msg == "" {
		msg = "Uploaded " + m.label + " successfully"
	}
	m.notify.Notify(Notice{Severity: SeverityInfo, Message: msg})

	// Refetch so the list reflects the backend-assigned identifier and any
	// server-side normalization. Errors here are already notified.
	_ = m.reload(ctx)
	return nil
}

// StartEdit opens an edit session for the given entity, staging a copy of
// its current field values. If another session is active it is replaced
// and its staged edits are discarded (last writer wins).
func (m *Manager[E, F]) StartEdit(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entities {
		if e.EntityID() == id {
			m.session = EditSession[F]{id: id, staged: m.stage(e), active: true}
			return nil
		}
	}
	return fmt.Errorf("no %s with id %q", m.label, id)
}

// Session returns the current edit session value.
func (m *Manager[E, F]) Session() EditSession[F] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// SetStaged replaces the staged fields of the active session. It is a
// no-op when no session is active.
func (m *Manager[E, F]) SetStaged(fields F) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.active {
		m.session.staged = fields
	}
}

// CancelEdit discards the staged fields and returns to idle. No request is
// made and the underlying entity is untouched.
func (m *Manager[E, F]) CancelEdit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = EditSession[F]{}
}

// SaveEdit validates the staged fields and submits the update. On success
// the session closes and the list is reconciled by refetch; on any failure
// the session stays open so the user can correct and retry.
func (m *Manager[E, F]) SaveEdit(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.session.active {
		return fmt.Errorf("no %s edit in progress", m.label)
	}

	if missing := m.session.staged.MissingFields(); len(missing) > 0 {
		m.notify.Notify(Notice{Severity: SeverityError, Message: "Please fill all required fields."})
		return fmt.Errorf("missing required fields: %v", missing)
	}

	msg, err := m.repo.Update(ctx, m.session.id, m.session.staged)
	if err != nil {
		m.log.Error("update failed",
			zap.String("kind", m.label),
			zap.String("id", m.session.id),
			zap.Error(err))
		m.notify.Notify(Notice{Severity: SeverityError, Message: err.Error()})
		return err
	}

	if msg == "" {
		msg = "Updated " + m.label + " successfully"
	}
	m.notify.Notify(Notice{Severity: SeverityInfo, Message: msg})

	m.session = EditSession[F]{}
	_ = m.reload(ctx)
	return nil
}

// RequestDelete marks an entity for deletion pending explicit
// confirmation. Nothing is sent until ConfirmDelete.
func (m *Manager[E, F]) RequestDelete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDelete = id
}

// PendingDelete returns the id awaiting confirmation, if any.
func (m *Manager[E, F]) PendingDelete() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingDelete, m.pendingDelete != ""
}

// CancelDelete clears the pending confirmation without any request.
func (m *Manager[E, F]) CancelDelete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDelete = ""
}

// ConfirmDelete performs the pending deletion. On failure the list is left
// unchanged and the error is surfaced as a notice.
func (m *Manager[E, F]) ConfirmDelete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.pendingDelete
	if id == "" {
		return fmt.Errorf("no %s delete pending", m.label)
	}
	m.pendingDelete = ""

	msg, err := m.repo.Remove(ctx, id)
	if err != nil {
		m.log.Error("delete failed",
			zap.String("kind", m.label),
			zap.String("id", id),
			zap.Error(err))
		m.notify.Notify(Notice{Severity: SeverityError, Message: err.Error()})
		return err
	}

	if msg == "" {
		msg = "Deleted " + m.label + " successfully"
	}
	m.notify.Notify(Notice{Severity: SeverityInfo, Message: msg})

	_ = m.reload(ctx)
	return nil
}
