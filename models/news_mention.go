package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsMention tracks media coverage of a politician. Rows are written by the
// external scraping pipeline and by staff; they are append-only.
type NewsMention struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PoliticianID   uuid.UUID `gorm:"type:uuid;not null;index" json:"politician_id"`
	Title          string    `gorm:"size:500;not null" json:"title"`
	Source         string    `gorm:"size:255;not null" json:"source"`
	URL            string    `gorm:"type:text;not null" json:"url"`
	ContentSummary *string   `gorm:"type:text" json:"content_summary"`
	Sentiment      *float64  `gorm:"type:decimal(3,2)" json:"sentiment"`
	RelevanceScore *float64  `gorm:"type:decimal(3,2)" json:"relevance_score"`
	PublishedAt    time.Time `gorm:"not null;index" json:"published_at"`
	ScrapedAt      time.Time `gorm:"not null" json:"scraped_at"`
}

func (nm *NewsMention) BeforeCreate(tx *gorm.DB) error {
	if nm.ID == uuid.Nil {
		nm.ID = uuid.New()
	}
	if nm.ScrapedAt.IsZero() {
		nm.ScrapedAt = time.Now().UTC()
	}
	return nil
}
