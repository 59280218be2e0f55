package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	ReferralCode string
	Credits      int
	ReferredBy   *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName is what other users see, e.g. as the referrer
// of an applied code.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
