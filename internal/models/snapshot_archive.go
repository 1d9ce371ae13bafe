package model

import (
	"time"

	"github.com/google/uuid"
)

// ArchivedSnapshot snapshot historisé en base
type ArchivedSnapshot struct {
	ID          uuid.UUID `json:"id"`
	Year        int       `json:"year"`
	BoardID     int       `json:"boardId"`
	FetchedAt   time.Time `json:"fetchedAt"`
	MemberCount int       `json:"memberCount"`
	Payload     []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
