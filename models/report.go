package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportStatusUnderReview   ReportStatus = "under_review"
	ReportStatusInvestigating ReportStatus = "investigating"
	ReportStatusVerified      ReportStatus = "verified"
	ReportStatusDismissed     ReportStatus = "dismissed"
	ReportStatusResolved      ReportStatus = "resolved"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusUnderReview, ReportStatusInvestigating, ReportStatusVerified, ReportStatusDismissed, ReportStatusResolved:
		return true
	}
	return false
}

type ReportPriority string

const (
	ReportPriorityLow      ReportPriority = "low"
	ReportPriorityMedium   ReportPriority = "medium"
	ReportPriorityHigh     ReportPriority = "high"
	ReportPriorityCritical ReportPriority = "critical"
)

func (p ReportPriority) Valid() bool {
	switch p {
	case ReportPriorityLow, ReportPriorityMedium, ReportPriorityHigh, ReportPriorityCritical:
		return true
	}
	return false
}

// FlaggedReport is a citizen-submitted accountability complaint. The reporter
// reference survives account deletion: the row is kept and ReporterID is
// cleared (SET NULL), unlike the politician-owned collections which cascade.
type FlaggedReport struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PoliticianID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"politician_id"`
	ReporterID            *uuid.UUID     `gorm:"type:uuid" json:"reporter_id"`
	Reporter              *User          `gorm:"foreignKey:ReporterID;constraint:OnDelete:SET NULL" json:"-"`
	IssueType             string         `gorm:"size:100;not null" json:"issue_type"`
	Title                 string         `gorm:"size:500;not null" json:"title"`
	Description           string         `gorm:"type:text;not null" json:"description"`
	Status                ReportStatus   `gorm:"size:20;not null;default:'under_review';index;check:status IN ('under_review','investigating','verified','dismissed','resolved')" json:"status"`
	Priority              ReportPriority `gorm:"size:20;not null;default:'medium';index;check:priority IN ('low','medium','high','critical')" json:"priority"`
	EvidenceFiles         pq.StringArray `gorm:"type:text[]" json:"evidence_files"`
	Location              *string        `gorm:"size:255" json:"location"`
	IncidentDate          *time.Time     `gorm:"type:date" json:"incident_date"`
	IsAnonymous           bool           `gorm:"default:false;not null" json:"is_anonymous"`
	DateReported          time.Time      `gorm:"not null;index" json:"date_reported"`
	InvestigationTimeline datatypes.JSON `gorm:"type:jsonb" json:"investigation_timeline"`
	Resolution            *string        `gorm:"type:text" json:"resolution"`
	AdminNotes            *string        `gorm:"type:text" json:"admin_notes"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func (fr *FlaggedReport) BeforeCreate(tx *gorm.DB) error {
	if fr.ID == uuid.Nil {
		fr.ID = uuid.New()
	}
	if fr.DateReported.IsZero() {
		fr.DateReported = time.Now().UTC()
	}
	return nil
}
