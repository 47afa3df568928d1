package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Status domain dipakai Session, Process, Event, dan Project.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in_progress"
	StatusClosed     = "closed"
	StatusCancelled  = "cancelled"
)

// OwnerType: pemilik sebuah session (polymorphic, tapi eksplisit — bukan
// refleksi runtime).
const (
	OwnerTypeProcess = "process"
	OwnerTypeEvent   = "event"
)

// OwnerRef: tagged reference ke Process atau Event (tidak pernah dua-duanya).
type OwnerRef struct {
	Type string    `json:"owner_type"`
	ID   uuid.UUID `json:"owner_id"`
}

func (r OwnerRef) Validate() error {
	if r.Type != OwnerTypeProcess && r.Type != OwnerTypeEvent {
		return fmt.Errorf("owner_type tidak dikenal: %q", r.Type)
	}
	if r.ID == uuid.Nil {
		return fmt.Errorf("owner_id kosong")
	}
	return nil
}

func (r OwnerRef) String() string {
	return fmt.Sprintf("%s/%s", r.Type, r.ID)
}
