package models

import (
	"time"

	id "contacts/pkg/domain"
)

type PersonEventType string

const (
	PersonAdded   PersonEventType = "person.added"
	PersonUpdated PersonEventType = "person.updated"
	PersonDeleted PersonEventType = "person.deleted"
)

// Op is the short operation label used for metrics.
func (t PersonEventType) Op() string {
	switch t {
	case PersonAdded:
		return "add"
	case PersonUpdated:
		return "update"
	case PersonDeleted:
		return "delete"
	}
	return string(t)
}

// PersonEvent is published after a person mutation commits.
type PersonEvent struct {
	Type       PersonEventType `json:"type"`
	PersonID   string          `json:"person_id"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func NewPersonEvent(t PersonEventType, personID id.PersonID, now time.Time) PersonEvent {
	return PersonEvent{Type: t, PersonID: personID.String(), OccurredAt: now.UTC()}
}
