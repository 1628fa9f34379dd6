// Package store holds the canonical project collection and broadcasts a
// full snapshot to subscribed views whenever it changes.
package store

import (
	"time"

	"github.com/davidmoss/plank/internal/domain"
	"github.com/google/uuid"
)

// Listener receives the entire current collection on every change.
// The snapshot is a defensive copy; mutating it has no effect on the store.
type Listener func(snapshot []domain.Project)

// Store is the single source of truth for the project collection.
// Construct one per application with New and pass it to whichever views
// need it; all access happens on the event-dispatch goroutine, so no
// locking is required.
type Store struct {
	projects  []domain.Project
	listeners []Listener
}

func New() *Store {
	return &Store{}
}

// Subscribe registers a listener. There is no de-duplication: registering
// the same func twice produces two invocations per notification. Listeners
// are never removed.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

// Add constructs a new active project, appends it to the collection and
// notifies every listener synchronously, in registration order, before
// returning. The returned project is a copy.
func (s *Store) Add(title, description string, people int) domain.Project {
	p := domain.Project{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      domain.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	s.projects = append(s.projects, p)
	s.notify()
	return p
}

// Move transitions the project with the given ID to status. An unknown ID
// is a silent no-op. Moving a project to the status it already has is also
// a no-op and fires no notification, so views are spared a redundant
// re-render.
func (s *Store) Move(id string, status domain.Status) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status != status {
			s.projects[i].Status = status
			s.notify()
		}
		return
	}
}

// Snapshot returns a defensive copy of the collection in insertion order.
func (s *Store) Snapshot() []domain.Project {
	snap := make([]domain.Project, len(s.projects))
	copy(snap, s.projects)
	return snap
}

// Len returns the number of projects in the store.
func (s *Store) Len() int {
	return len(s.projects)
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn(s.Snapshot())
	}
}
