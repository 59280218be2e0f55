package model

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    float64
	CreatedAt time.Time
}
