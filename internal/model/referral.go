package model

import (
	"time"

	"github.com/google/uuid"
)

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralConverted ReferralStatus = "converted"
)

type Referral struct {
	ID          uuid.UUID
	ReferrerID  uuid.UUID
	ReferredID  uuid.UUID
	Status      ReferralStatus
	CreatedAt   time.Time
	ConvertedAt *time.Time
}

// ReferralEntry is one referred user as listed for the referrer.
type ReferralEntry struct {
	Name      string
	Email     string
	Status    ReferralStatus
	CreatedAt time.Time
}

type ReferralOverview struct {
	TotalReferrals int
	Credits        int
	Referrals      []*ReferralEntry
}

type DashboardSummary struct {
	Name               string
	Email              string
	ReferralCode       string
	TotalReferrals     int
	ConvertedReferrals int
	Credits            int
}
