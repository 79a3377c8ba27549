package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoreHistory is an append-only snapshot of a politician's transparency score.
// Rows are never updated after creation.
type ScoreHistory struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PoliticianID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"politician_id"`
	TransparencyScore float64        `gorm:"type:decimal(5,2);not null" json:"transparency_score"`
	ScoreBreakdown    datatypes.JSON `gorm:"type:jsonb;not null" json:"score_breakdown"`
	FactorsAnalyzed   datatypes.JSON `gorm:"type:jsonb" json:"factors_analyzed"`
	CalculationMethod *string        `gorm:"size:50" json:"calculation_method"`
	CalculatedAt      time.Time      `gorm:"not null;index" json:"calculated_at"`
}

func (sh *ScoreHistory) BeforeCreate(tx *gorm.DB) error {
	if sh.ID == uuid.Nil {
		sh.ID = uuid.New()
	}
	if sh.CalculatedAt.IsZero() {
		sh.CalculatedAt = time.Now().UTC()
	}
	return nil
}
