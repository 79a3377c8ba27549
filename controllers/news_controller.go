package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"gorm.io/gorm"
)

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

func (nc *NewsController) ListNewsMentions(c *gin.Context) {
	var politician models.Politician
	if err := nc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	page, pageSize := getPagination(c)

	query := nc.DB.Model(&models.NewsMention{}).Where("politician_id = ?", politician.ID)
	if source := c.Query("source"); source != "" {
		query = query.Where("source = ?", source)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news mentions", "success": false})
		return
	}

	var mentions []models.NewsMention
	if err := query.Order("published_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&mentions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news mentions", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       mentions,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

// CreateNewsMention appends a mention on behalf of the scraping pipeline.
func (nc *NewsController) CreateNewsMention(c *gin.Context) {
	var politician models.Politician
	if err := nc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input struct {
		Title          string    `json:"title" binding:"required"`
		Source         string    `json:"source" binding:"required"`
		URL            string    `json:"url" binding:"required,url"`
		ContentSummary *string   `json:"content_summary"`
		Sentiment      *float64  `json:"sentiment"`
		RelevanceScore *float64  `json:"relevance_score"`
		PublishedAt    time.Time `json:"published_at" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	mention := models.NewsMention{
		PoliticianID:   politician.ID,
		Title:          input.Title,
		Source:         input.Source,
		URL:            input.URL,
		ContentSummary: input.ContentSummary,
		Sentiment:      input.Sentiment,
		RelevanceScore: input.RelevanceScore,
		PublishedAt:    input.PublishedAt,
	}

	if err := nc.DB.Create(&mention).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news mention", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: mention})
}
