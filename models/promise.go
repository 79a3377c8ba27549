package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PromiseStatus string

const (
	PromiseStatusPending            PromiseStatus = "pending"
	PromiseStatusInProgress         PromiseStatus = "in_progress"
	PromiseStatusFulfilled          PromiseStatus = "fulfilled"
	PromiseStatusBroken             PromiseStatus = "broken"
	PromiseStatusPartiallyFulfilled PromiseStatus = "partially_fulfilled"
)

func (s PromiseStatus) Valid() bool {
	switch s {
	case PromiseStatusPending, PromiseStatusInProgress, PromiseStatusFulfilled, PromiseStatusBroken, PromiseStatusPartiallyFulfilled:
		return true
	}
	return false
}

type Promise struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PoliticianID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"politician_id"`
	Title                 string         `gorm:"size:500;not null" json:"title"`
	Description           string         `gorm:"type:text;not null" json:"description"`
	DateMade              time.Time      `gorm:"type:date;not null" json:"date_made"`
	Deadline              *time.Time     `gorm:"type:date" json:"deadline"`
	Status                PromiseStatus  `gorm:"size:30;not null;default:'pending';index;check:status IN ('pending','in_progress','fulfilled','broken','partially_fulfilled')" json:"status"`
	Category              *string        `gorm:"size:100" json:"category"`
	Evidence              datatypes.JSON `gorm:"type:jsonb" json:"evidence"`
	FulfillmentPercentage int            `gorm:"not null;default:0;check:fulfillment_percentage BETWEEN 0 AND 100" json:"fulfillment_percentage"`
	VerificationSources   pq.StringArray `gorm:"type:text[]" json:"verification_sources"`
	ImpactArea            *string        `gorm:"size:100" json:"impact_area"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func (p *Promise) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
