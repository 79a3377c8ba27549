package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Politician struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string         `gorm:"size:255;not null;index" json:"name"`
	Position          string         `gorm:"size:255;not null" json:"position"`
	Party             *string        `gorm:"size:100;index" json:"party"`
	County            *string        `gorm:"size:100;index" json:"county"`
	PhotoURL          *string        `gorm:"type:text" json:"photo_url"`
	Bio               *string        `gorm:"type:text" json:"bio"`
	DateOfBirth       *time.Time     `gorm:"type:date" json:"date_of_birth"`
	Education         datatypes.JSON `gorm:"type:jsonb" json:"education"`
	ContactInfo       datatypes.JSON `gorm:"type:jsonb" json:"contact_info"`
	SocialMedia       datatypes.JSON `gorm:"type:jsonb" json:"social_media"`
	TransparencyScore float64        `gorm:"type:decimal(5,2);not null;default:0" json:"transparency_score"`
	ConfidenceLevel   float64        `gorm:"type:decimal(5,2);not null;default:0" json:"confidence_level"`
	IsActive          bool           `gorm:"default:true;not null" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`

	Cases        []LegalCase        `gorm:"foreignKey:PoliticianID;constraint:OnDelete:CASCADE" json:"cases,omitempty"`
	Promises     []Promise          `gorm:"foreignKey:PoliticianID;constraint:OnDelete:CASCADE" json:"promises,omitempty"`
	Linkages     []PoliticalLinkage `gorm:"foreignKey:PoliticianID;constraint:OnDelete:CASCADE" json:"linkages,omitempty"`
	Reports      []FlaggedReport    `gorm:"foreignKey:PoliticianID;constraint:OnDelete:CASCADE" json:"reports,omitempty"`
	ScoreHistory []ScoreHistory     `gorm:"foreignKey:PoliticianID;constraint:OnDelete:CASCADE" json:"score_history,omitempty"`
	NewsMentions []NewsMention      `gorm:"foreignKey:PoliticianID;constraint:OnDelete:CASCADE" json:"news_mentions,omitempty"`
}

func (p *Politician) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
