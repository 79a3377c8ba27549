package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kenya-ni-yetu/api-go/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LinkageController struct {
	DB *gorm.DB
}

func NewLinkageController(db *gorm.DB) *LinkageController {
	return &LinkageController{DB: db}
}

func (lc *LinkageController) ListLinkages(c *gin.Context) {
	var politician models.Politician
	if err := lc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	page, pageSize := getPagination(c)

	query := lc.DB.Model(&models.PoliticalLinkage{}).Where("politician_id = ?", politician.ID)
	if entityType := c.Query("entity_type"); entityType != "" {
		if !models.LinkedEntityType(entityType).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid linked entity type", "success": false})
			return
		}
		query = query.Where("linked_entity_type = ?", entityType)
	}
	if verified := c.Query("verified"); verified != "" {
		query = query.Where("is_verified = ?", verified == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch linkages", "success": false})
		return
	}

	var linkages []models.PoliticalLinkage
	if err := query.Order("strength DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&linkages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch linkages", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       linkages,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

type linkageInput struct {
	LinkedEntityType string         `json:"linked_entity_type" binding:"required"`
	LinkedEntityID   *uuid.UUID     `json:"linked_entity_id"`
	LinkedEntityName string         `json:"linked_entity_name" binding:"required"`
	RelationshipType string         `json:"relationship_type" binding:"required"`
	Description      *string        `json:"description"`
	Strength         *float64       `json:"strength"`
	Evidence         datatypes.JSON `json:"evidence"`
	IsVerified       *bool          `json:"is_verified"`
	DateEstablished  string         `json:"date_established"`
}

func (in *linkageInput) validate() (models.LinkedEntityType, float64, string) {
	entityType := models.LinkedEntityType(in.LinkedEntityType)
	if !entityType.Valid() {
		return "", 0, "Invalid linked entity type"
	}

	strength := 0.50
	if in.Strength != nil {
		strength = *in.Strength
		if strength < 0 || strength > 1 {
			return "", 0, "strength must be between 0.00 and 1.00"
		}
	}

	return entityType, strength, ""
}

func (lc *LinkageController) CreateLinkage(c *gin.Context) {
	var politician models.Politician
	if err := lc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input linkageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	entityType, strength, msg := input.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	dateEstablished, err := parseDate(input.DateEstablished)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_established, expected YYYY-MM-DD", "success": false})
		return
	}

	isVerified := false
	if input.IsVerified != nil {
		isVerified = *input.IsVerified
	}

	linkage := models.PoliticalLinkage{
		PoliticianID:     politician.ID,
		LinkedEntityType: entityType,
		LinkedEntityID:   input.LinkedEntityID,
		LinkedEntityName: input.LinkedEntityName,
		RelationshipType: input.RelationshipType,
		Description:      input.Description,
		Strength:         strength,
		Evidence:         input.Evidence,
		IsVerified:       isVerified,
		DateEstablished:  dateEstablished,
	}

	if err := lc.DB.Create(&linkage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create linkage", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: linkage})
}

func (lc *LinkageController) UpdateLinkage(c *gin.Context) {
	var linkage models.PoliticalLinkage
	if err := lc.DB.WithContext(c.Request.Context()).First(&linkage, "id = ?", c.Param("linkageId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Linkage not found", "success": false})
		return
	}

	var input linkageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	entityType, strength, msg := input.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	dateEstablished, err := parseDate(input.DateEstablished)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_established, expected YYYY-MM-DD", "success": false})
		return
	}

	linkage.LinkedEntityType = entityType
	linkage.LinkedEntityID = input.LinkedEntityID
	linkage.LinkedEntityName = input.LinkedEntityName
	linkage.RelationshipType = input.RelationshipType
	linkage.Description = input.Description
	linkage.Strength = strength
	if input.Evidence != nil {
		linkage.Evidence = input.Evidence
	}
	if input.IsVerified != nil {
		linkage.IsVerified = *input.IsVerified
	}
	if dateEstablished != nil {
		linkage.DateEstablished = dateEstablished
	}

	if err := lc.DB.Save(&linkage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update linkage", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: linkage})
}

func (lc *LinkageController) DeleteLinkage(c *gin.Context) {
	result := lc.DB.WithContext(c.Request.Context()).Delete(&models.PoliticalLinkage{}, "id = ?", c.Param("linkageId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete linkage", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Linkage not found", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Linkage deleted successfully"})
}
