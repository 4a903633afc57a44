// Package store implements the generic in-memory record collection: insertion
// ordered, numeric ids assigned max+1, with change notification for
// subscribers (persistence, event feeds, presentation).
package store

import (
	"errors"
	"sync"
)

// ErrNotFound signals an update/remove/modify against an unknown id. The
// collection is left unchanged; callers observe a result, never a panic.
var ErrNotFound = errors.New("record not found")

// Op is the kind of mutation reported in a change event.
type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Event describes a completed store mutation.
type Event struct {
	Kind  string
	Op    Op
	ID    int64
	Label string
}

// Record is the contract a stored type satisfies. WithID returns a copy with
// the identity set; ids are immutable once assigned.
type Record[T any] interface {
	RecordID() int64
	WithID(id int64) T
	Validate() error
	Label() string
}

// Store is an ordered collection of one record kind.
type Store[T Record[T]] struct {
	mu    sync.Mutex
	kind  string
	items []T
	subs  []func(Event)
}

// New creates an empty store for the named record kind.
func New[T Record[T]](kind string) *Store[T] {
	return &Store[T]{kind: kind}
}

// Kind returns the record kind name.
func (s *Store[T]) Kind() string { return s.kind }

// Subscribe registers a callback invoked synchronously after every mutation.
func (s *Store[T]) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store[T]) notify(ev Event) {
	for _, fn := range s.subs {
		fn(ev)
	}
}

// nextID is max(existing ids)+1; an empty collection starts at 1.
func (s *Store[T]) nextID() int64 {
	var max int64
	for _, item := range s.items {
		if id := item.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}

// Add validates and appends the record, returning its assigned id. The
// collection is unchanged when validation fails.
func (s *Store[T]) Add(item T) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	id := s.nextID()
	item = item.WithID(id)
	s.items = append(s.items, item)
	s.mu.Unlock()

	s.notify(Event{Kind: s.kind, Op: OpCreated, ID: id, Label: item.Label()})
	return id, nil
}

// Update replaces the record with the given id, preserving its identity. The
// replacement is validated first; an unknown id reports ErrNotFound with no
// mutation.
func (s *Store[T]) Update(id int64, item T) error {
	item = item.WithID(id)
	if err := item.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.items[idx] = item
	s.mu.Unlock()

	s.notify(Event{Kind: s.kind, Op: OpUpdated, ID: id, Label: item.Label()})
	return nil
}

// Modify applies fn to the record with the given id and stores the result,
// keeping the identity. Used for partial mutations such as pin toggling.
func (s *Store[T]) Modify(id int64, fn func(T) T) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	item := fn(s.items[idx]).WithID(id)
	if err := item.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.items[idx] = item
	s.mu.Unlock()

	s.notify(Event{Kind: s.kind, Op: OpUpdated, ID: id, Label: item.Label()})
	return nil
}

// Remove deletes the record with the given id; the collection shrinks by
// exactly one. Removing an already-removed id reports ErrNotFound and leaves
// the collection unchanged.
func (s *Store[T]) Remove(id int64) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	label := s.items[idx].Label()
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.mu.Unlock()

	s.notify(Event{Kind: s.kind, Op: OpDeleted, ID: id, Label: label})
	return nil
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	idx := s.indexOf(id)
	if idx < 0 {
		return zero, false
	}
	return s.items[idx], true
}

// List returns a copy of the collection in insertion order.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Replace swaps in a previously persisted collection, keeping existing ids.
// No change events are emitted; this is a load, not a mutation.
func (s *Store[T]) Replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T(nil), items...)
}

func (s *Store[T]) indexOf(id int64) int {
	for i, item := range s.items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}
