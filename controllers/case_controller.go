package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CaseController struct {
	DB *gorm.DB
}

func NewCaseController(db *gorm.DB) *CaseController {
	return &CaseController{DB: db}
}

func (cc *CaseController) ListCases(c *gin.Context) {
	var politician models.Politician
	if err := cc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	page, pageSize := getPagination(c)

	query := cc.DB.Model(&models.LegalCase{}).Where("politician_id = ?", politician.ID)
	if status := c.Query("status"); status != "" {
		if !models.CaseStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid case status", "success": false})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cases", "success": false})
		return
	}

	var cases []models.LegalCase
	if err := query.Order("date_filed DESC NULLS LAST, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&cases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cases", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       cases,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

type caseInput struct {
	CaseNumber   *string  `json:"case_number"`
	Title        string   `json:"title" binding:"required"`
	Court        *string  `json:"court"`
	Status       string   `json:"status"`
	DateFiled    string   `json:"date_filed"`
	DateResolved string   `json:"date_resolved"`
	Severity     *string  `json:"severity"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Outcome      *string  `json:"outcome"`
	SourceURLs   []string `json:"source_urls"`
	ImpactScore  *float64 `json:"impact_score"`
}

func (in *caseInput) validate() (models.CaseStatus, *models.CaseSeverity, string) {
	status := models.CaseStatusPending
	if in.Status != "" {
		status = models.CaseStatus(in.Status)
		if !status.Valid() {
			return "", nil, "Invalid case status"
		}
	}

	var severity *models.CaseSeverity
	if in.Severity != nil && *in.Severity != "" {
		s := models.CaseSeverity(*in.Severity)
		if !s.Valid() {
			return "", nil, "Invalid case severity"
		}
		severity = &s
	}

	return status, severity, ""
}

func (cc *CaseController) CreateCase(c *gin.Context) {
	var politician models.Politician
	if err := cc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input caseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	status, severity, msg := input.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	dateFiled, err := parseDate(input.DateFiled)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_filed, expected YYYY-MM-DD", "success": false})
		return
	}
	dateResolved, err := parseDate(input.DateResolved)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_resolved, expected YYYY-MM-DD", "success": false})
		return
	}

	legalCase := models.LegalCase{
		PoliticianID: politician.ID,
		CaseNumber:   input.CaseNumber,
		Title:        input.Title,
		Court:        input.Court,
		Status:       status,
		DateFiled:    dateFiled,
		DateResolved: dateResolved,
		Severity:     severity,
		Category:     input.Category,
		Description:  input.Description,
		Outcome:      input.Outcome,
		SourceURLs:   pq.StringArray(input.SourceURLs),
		ImpactScore:  input.ImpactScore,
	}

	if err := cc.DB.Create(&legalCase).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Case number already exists", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: legalCase})
}

func (cc *CaseController) UpdateCase(c *gin.Context) {
	var legalCase models.LegalCase
	if err := cc.DB.WithContext(c.Request.Context()).First(&legalCase, "id = ?", c.Param("caseId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found", "success": false})
		return
	}

	var input caseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	status, severity, msg := input.validate()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "success": false})
		return
	}

	dateFiled, err := parseDate(input.DateFiled)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_filed, expected YYYY-MM-DD", "success": false})
		return
	}
	dateResolved, err := parseDate(input.DateResolved)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_resolved, expected YYYY-MM-DD", "success": false})
		return
	}

	legalCase.CaseNumber = input.CaseNumber
	legalCase.Title = input.Title
	legalCase.Court = input.Court
	legalCase.Status = status
	legalCase.Severity = severity
	legalCase.Category = input.Category
	legalCase.Description = input.Description
	legalCase.Outcome = input.Outcome
	legalCase.ImpactScore = input.ImpactScore
	if dateFiled != nil {
		legalCase.DateFiled = dateFiled
	}
	if dateResolved != nil {
		legalCase.DateResolved = dateResolved
	}
	if input.SourceURLs != nil {
		legalCase.SourceURLs = pq.StringArray(input.SourceURLs)
	}

	if err := cc.DB.Save(&legalCase).Error; err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Case number already exists", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: legalCase})
}

func (cc *CaseController) DeleteCase(c *gin.Context) {
	result := cc.DB.WithContext(c.Request.Context()).Delete(&models.LegalCase{}, "id = ?", c.Param("caseId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete case", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Case deleted successfully"})
}
