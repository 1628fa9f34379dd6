package domain

import (
	"fmt"
	"time"
)

// Status determines which board column displays a project.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Label returns the column heading for this status.
func (s Status) Label() string {
	switch s {
	case StatusFinished:
		return "Finished"
	default:
		return "Active"
	}
}

type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
	CreatedAt   time.Time
}

// DisplayID returns a short identifier for display, truncating the UUID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// PeopleLabel returns the assigned-people summary, e.g. "1 person" or "3 people".
func (p *Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", p.People)
}
