package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoreController exposes the transparency score history. Snapshots are
// append-only: there is no update or delete path.
type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

func (sc *ScoreController) ListScoreHistory(c *gin.Context) {
	var politician models.Politician
	if err := sc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	page, pageSize := getPagination(c)

	query := sc.DB.Model(&models.ScoreHistory{}).Where("politician_id = ?", politician.ID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch score history", "success": false})
		return
	}

	var history []models.ScoreHistory
	if err := query.Order("calculated_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch score history", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       history,
		Meta:       gin.H{"current_score": politician.TransparencyScore, "confidence_level": politician.ConfidenceLevel},
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

// CreateScoreSnapshot appends a snapshot and rolls the politician's current
// score forward to it. Used by the external scoring pipeline.
func (sc *ScoreController) CreateScoreSnapshot(c *gin.Context) {
	var politician models.Politician
	if err := sc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input struct {
		TransparencyScore *float64       `json:"transparency_score" binding:"required"`
		ScoreBreakdown    datatypes.JSON `json:"score_breakdown" binding:"required"`
		FactorsAnalyzed   datatypes.JSON `json:"factors_analyzed"`
		CalculationMethod *string        `json:"calculation_method"`
		ConfidenceLevel   *float64       `json:"confidence_level"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	snapshot := models.ScoreHistory{
		PoliticianID:      politician.ID,
		TransparencyScore: *input.TransparencyScore,
		ScoreBreakdown:    input.ScoreBreakdown,
		FactorsAnalyzed:   input.FactorsAnalyzed,
		CalculationMethod: input.CalculationMethod,
	}

	err := sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{"transparency_score": *input.TransparencyScore}
		if input.ConfidenceLevel != nil {
			updates["confidence_level"] = *input.ConfidenceLevel
		}
		return tx.Model(&politician).Updates(updates).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record score snapshot", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: snapshot})
}
