package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CaseStatus string

const (
	CaseStatusPending   CaseStatus = "pending"
	CaseStatusOngoing   CaseStatus = "ongoing"
	CaseStatusResolved  CaseStatus = "resolved"
	CaseStatusDismissed CaseStatus = "dismissed"
	CaseStatusAppealed  CaseStatus = "appealed"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusPending, CaseStatusOngoing, CaseStatusResolved, CaseStatusDismissed, CaseStatusAppealed:
		return true
	}
	return false
}

type CaseSeverity string

const (
	CaseSeverityLow      CaseSeverity = "low"
	CaseSeverityMedium   CaseSeverity = "medium"
	CaseSeverityHigh     CaseSeverity = "high"
	CaseSeverityCritical CaseSeverity = "critical"
)

func (s CaseSeverity) Valid() bool {
	switch s {
	case CaseSeverityLow, CaseSeverityMedium, CaseSeverityHigh, CaseSeverityCritical:
		return true
	}
	return false
}

type LegalCase struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PoliticianID uuid.UUID      `gorm:"type:uuid;not null;index" json:"politician_id"`
	CaseNumber   *string        `gorm:"size:100;uniqueIndex" json:"case_number"`
	Title        string         `gorm:"size:500;not null" json:"title"`
	Court        *string        `gorm:"size:255" json:"court"`
	Status       CaseStatus     `gorm:"size:20;not null;default:'pending';index;check:status IN ('pending','ongoing','resolved','dismissed','appealed')" json:"status"`
	DateFiled    *time.Time     `gorm:"type:date" json:"date_filed"`
	DateResolved *time.Time     `gorm:"type:date" json:"date_resolved"`
	Severity     *CaseSeverity  `gorm:"size:20;check:severity IN ('low','medium','high','critical')" json:"severity"`
	Category     *string        `gorm:"size:100" json:"category"`
	Description  *string        `gorm:"type:text" json:"description"`
	Outcome      *string        `gorm:"type:text" json:"outcome"`
	SourceURLs   pq.StringArray `gorm:"type:text[]" json:"source_urls"`
	ImpactScore  *float64       `gorm:"type:decimal(5,2)" json:"impact_score"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (lc *LegalCase) BeforeCreate(tx *gorm.DB) error {
	if lc.ID == uuid.Nil {
		lc.ID = uuid.New()
	}
	return nil
}
