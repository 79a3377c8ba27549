package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LinkedEntityType string

const (
	LinkedEntityPerson           LinkedEntityType = "person"
	LinkedEntityCompany          LinkedEntityType = "company"
	LinkedEntityOrganization     LinkedEntityType = "organization"
	LinkedEntityGovernmentEntity LinkedEntityType = "government_entity"
)

func (t LinkedEntityType) Valid() bool {
	switch t {
	case LinkedEntityPerson, LinkedEntityCompany, LinkedEntityOrganization, LinkedEntityGovernmentEntity:
		return true
	}
	return false
}

// PoliticalLinkage ties a politician to an outside entity. LinkedEntityID is a
// cross-table reference by convention only; no foreign key is enforced.
type PoliticalLinkage struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	PoliticianID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"politician_id"`
	LinkedEntityType LinkedEntityType `gorm:"size:30;not null;index;check:linked_entity_type IN ('person','company','organization','government_entity')" json:"linked_entity_type"`
	LinkedEntityID   *uuid.UUID       `gorm:"type:uuid" json:"linked_entity_id"`
	LinkedEntityName string           `gorm:"size:255;not null" json:"linked_entity_name"`
	RelationshipType string           `gorm:"size:100;not null" json:"relationship_type"`
	Description      *string          `gorm:"type:text" json:"description"`
	Strength         float64          `gorm:"type:decimal(3,2);not null;default:0.50;check:strength BETWEEN 0 AND 1" json:"strength"`
	Evidence         datatypes.JSON   `gorm:"type:jsonb" json:"evidence"`
	IsVerified       bool             `gorm:"default:false;not null" json:"is_verified"`
	DateEstablished  *time.Time       `gorm:"type:date" json:"date_established"`
	CreatedAt        time.Time        `json:"created_at"`
}

func (pl *PoliticalLinkage) BeforeCreate(tx *gorm.DB) error {
	if pl.ID == uuid.Nil {
		pl.ID = uuid.New()
	}
	return nil
}
