package manager

// EditSession tracks which entity, if any, is under inline edit, together
// with a staged copy of its editable fields. The zero value is idle.
//
// The staged copy is independent of the source entity: cancelling a
// session can never mutate the record it was staged from. At most one
// session exists per manager; starting a new one replaces the old.
type EditSession[F Fields] struct {
	id     string
	staged F
	active bool
}

// Active reports whether an edit is in progress.
func (s EditSession[F]) Active() bool { return s.active }

// ID returns the entity id under edit, or "" when idle.
func (s EditSession[F]) ID() string { return s.id }

// Staged returns the staged field values.
func (s EditSession[F]) Staged() F { return s.staged }

// Editing reports whether the given entity is the one under edit. Rows use
// this to decide between read-only and input rendering.
func (s EditSession[F]) Editing(id string) bool {
	return s.active && s.id == id
}
