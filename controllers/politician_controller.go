package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PoliticianController struct {
	DB *gorm.DB
}

func NewPoliticianController(db *gorm.DB) *PoliticianController {
	return &PoliticianController{DB: db}
}

func (pc *PoliticianController) ListPoliticians(c *gin.Context) {
	page, pageSize := getPagination(c)

	query := pc.DB.WithContext(c.Request.Context()).Model(&models.Politician{})

	if party := c.Query("party"); party != "" {
		query = query.Where("party = ?", party)
	}
	if county := c.Query("county"); county != "" {
		query = query.Where("county = ?", county)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if search := c.Query("q"); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch politicians", "success": false})
		return
	}

	var politicians []models.Politician
	if err := query.Order("transparency_score DESC, name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&politicians).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch politicians", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       politicians,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

func (pc *PoliticianController) GetPolitician(c *gin.Context) {
	var politician models.Politician
	if err := pc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var stats struct {
		CasesCount    int64 `json:"casesCount"`
		PromisesCount int64 `json:"promisesCount"`
		LinkagesCount int64 `json:"linkagesCount"`
		ReportsCount  int64 `json:"reportsCount"`
		NewsCount     int64 `json:"newsCount"`
	}

	pc.DB.Model(&models.LegalCase{}).Where("politician_id = ?", politician.ID).Count(&stats.CasesCount)
	pc.DB.Model(&models.Promise{}).Where("politician_id = ?", politician.ID).Count(&stats.PromisesCount)
	pc.DB.Model(&models.PoliticalLinkage{}).Where("politician_id = ?", politician.ID).Count(&stats.LinkagesCount)
	pc.DB.Model(&models.FlaggedReport{}).Where("politician_id = ?", politician.ID).Count(&stats.ReportsCount)
	pc.DB.Model(&models.NewsMention{}).Where("politician_id = ?", politician.ID).Count(&stats.NewsCount)

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    politician,
		Meta:    stats,
	})
}

type politicianInput struct {
	Name        string         `json:"name" binding:"required"`
	Position    string         `json:"position" binding:"required"`
	Party       *string        `json:"party"`
	County      *string        `json:"county"`
	PhotoURL    *string        `json:"photo_url"`
	Bio         *string        `json:"bio"`
	DateOfBirth string         `json:"date_of_birth"`
	Education   datatypes.JSON `json:"education"`
	ContactInfo datatypes.JSON `json:"contact_info"`
	SocialMedia datatypes.JSON `json:"social_media"`
}

func (pc *PoliticianController) CreatePolitician(c *gin.Context) {
	var input politicianInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_of_birth, expected YYYY-MM-DD", "success": false})
		return
	}

	politician := models.Politician{
		Name:        input.Name,
		Position:    input.Position,
		Party:       input.Party,
		County:      input.County,
		PhotoURL:    input.PhotoURL,
		Bio:         input.Bio,
		DateOfBirth: dateOfBirth,
		Education:   input.Education,
		ContactInfo: input.ContactInfo,
		SocialMedia: input.SocialMedia,
		IsActive:    true,
	}

	if err := pc.DB.WithContext(c.Request.Context()).Create(&politician).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create politician", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: politician})
}

func (pc *PoliticianController) UpdatePolitician(c *gin.Context) {
	var politician models.Politician
	if err := pc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input struct {
		politicianInput
		IsActive *bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	dateOfBirth, err := parseDate(input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_of_birth, expected YYYY-MM-DD", "success": false})
		return
	}

	politician.Name = input.Name
	politician.Position = input.Position
	politician.Party = input.Party
	politician.County = input.County
	politician.PhotoURL = input.PhotoURL
	politician.Bio = input.Bio
	if dateOfBirth != nil {
		politician.DateOfBirth = dateOfBirth
	}
	if input.Education != nil {
		politician.Education = input.Education
	}
	if input.ContactInfo != nil {
		politician.ContactInfo = input.ContactInfo
	}
	if input.SocialMedia != nil {
		politician.SocialMedia = input.SocialMedia
	}
	if input.IsActive != nil {
		politician.IsActive = *input.IsActive
	}

	if err := pc.DB.Save(&politician).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update politician", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: politician})
}

// DeletePolitician removes the politician and, through the cascade
// constraints, every row in its six child collections.
func (pc *PoliticianController) DeletePolitician(c *gin.Context) {
	var politician models.Politician
	if err := pc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	if err := pc.DB.Delete(&politician).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete politician", "success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Politician deleted successfully"})
}
