package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PromiseController struct {
	DB *gorm.DB
}

func NewPromiseController(db *gorm.DB) *PromiseController {
	return &PromiseController{DB: db}
}

func (pc *PromiseController) ListPromises(c *gin.Context) {
	var politician models.Politician
	if err := pc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	page, pageSize := getPagination(c)

	query := pc.DB.Model(&models.Promise{}).Where("politician_id = ?", politician.ID)
	if status := c.Query("status"); status != "" {
		if !models.PromiseStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promise status", "success": false})
			return
		}
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promises", "success": false})
		return
	}

	var promises []models.Promise
	if err := query.Order("date_made DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&promises).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promises", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       promises,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

type promiseInput struct {
	Title                 string         `json:"title" binding:"required"`
	Description           string         `json:"description" binding:"required"`
	DateMade              string         `json:"date_made" binding:"required"`
	Deadline              string         `json:"deadline"`
	Status                string         `json:"status"`
	Category              *string        `json:"category"`
	Evidence              datatypes.JSON `json:"evidence"`
	FulfillmentPercentage *int           `json:"fulfillment_percentage"`
	VerificationSources   []string       `json:"verification_sources"`
	ImpactArea            *string        `json:"impact_area"`
}

func (in *promiseInput) validate() (models.PromiseStatus, int, string) {
	status := models.PromiseStatusPending
	if in.Status != "" {
		status = models.PromiseStatus(in.Status)
		if !status.Valid() {
			return "", 0, "Invalid promise status"
		}
	}

	percentage := 0
	if in.FulfillmentPercentage != nil {
		percentage = *in.FulfillmentPercentage
		if percentage < 0 || percentage > 100 {
			return "", 0, "fulfillment_percentage must be between 0 and 100"
		}
	}

	return status, percentage, ""
}

func (pc *PromiseController) CreatePromise(c *gin.Context) {
	var politician models.Politician
	if err := pc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input promiseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	status, percentage, msg := input.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	dateMade, err := parseDate(input.DateMade)
	if err != nil || dateMade == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_made, expected YYYY-MM-DD", "success": false})
		return
	}
	deadline, err := parseDate(input.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD", "success": false})
		return
	}

	promise := models.Promise{
		PoliticianID:          politician.ID,
		Title:                 input.Title,
		Description:           input.Description,
		DateMade:              *dateMade,
		Deadline:              deadline,
		Status:                status,
		Category:              input.Category,
		Evidence:              input.Evidence,
		FulfillmentPercentage: percentage,
		VerificationSources:   pq.StringArray(input.VerificationSources),
		ImpactArea:            input.ImpactArea,
	}

	if err := pc.DB.Create(&promise).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promise", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: promise})
}

func (pc *PromiseController) UpdatePromise(c *gin.Context) {
	var promise models.Promise
	if err := pc.DB.WithContext(c.Request.Context()).First(&promise, "id = ?", c.Param("promiseId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promise not found", "success": false})
		return
	}

	var input promiseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	status, percentage, msg := input.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	dateMade, err := parseDate(input.DateMade)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_made, expected YYYY-MM-DD", "success": false})
		return
	}
	deadline, err := parseDate(input.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD", "success": false})
		return
	}

	promise.Title = input.Title
	promise.Description = input.Description
	promise.Status = status
	promise.Category = input.Category
	promise.FulfillmentPercentage = percentage
	promise.ImpactArea = input.ImpactArea
	if dateMade != nil {
		promise.DateMade = *dateMade
	}
	if deadline != nil {
		promise.Deadline = deadline
	}
	if input.Evidence != nil {
		promise.Evidence = input.Evidence
	}
	if input.VerificationSources != nil {
		promise.VerificationSources = pq.StringArray(input.VerificationSources)
	}

	if err := pc.DB.Save(&promise).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promise", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: promise})
}

func (pc *PromiseController) DeletePromise(c *gin.Context) {
	result := pc.DB.WithContext(c.Request.Context()).Delete(&models.Promise{}, "id = ?", c.Param("promiseId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promise", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promise not found", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Promise deleted successfully"})
}
