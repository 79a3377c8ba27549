package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/models"
	"github.com/kenya-ni-yetu/api-go/utils"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// reportView hides the reporter reference on anonymous reports.
type reportView struct {
	models.FlaggedReport
	ReporterID *string `json:"reporter_id"`
}

func viewOf(report models.FlaggedReport) reportView {
	view := reportView{FlaggedReport: report}
	if !report.IsAnonymous && report.ReporterID != nil {
		id := report.ReporterID.String()
		view.ReporterID = &id
	}
	return view
}

func (rc *ReportController) ListReports(c *gin.Context) {
	var politician models.Politician
	if err := rc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	page, pageSize := getPagination(c)

	query := rc.DB.Model(&models.FlaggedReport{}).Where("politician_id = ?", politician.ID)
	if status := c.Query("status"); status != "" {
		if !models.ReportStatus(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report status", "success": false})
			return
		}
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		if !models.ReportPriority(priority).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report priority", "success": false})
			return
		}
		query = query.Where("priority = ?", priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports", "success": false})
		return
	}

	var reports []models.FlaggedReport
	if err := query.Order("date_reported DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports", "success": false})
		return
	}

	views := make([]reportView, len(reports))
	for i, report := range reports {
		views[i] = viewOf(report)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success:    true,
		Data:       views,
		Pagination: newPaginationMeta(page, pageSize, total),
	})
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "success": false})
		return
	}

	var politician models.Politician
	if err := rc.DB.WithContext(c.Request.Context()).First(&politician, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Politician not found", "success": false})
		return
	}

	var input struct {
		IssueType     string   `json:"issue_type" binding:"required"`
		Title         string   `json:"title" binding:"required"`
		Description   string   `json:"description" binding:"required"`
		Priority      string   `json:"priority"`
		EvidenceFiles []string `json:"evidence_files"`
		Location      *string  `json:"location"`
		IncidentDate  string   `json:"incident_date"`
		IsAnonymous   bool     `json:"is_anonymous"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	priority := models.ReportPriorityMedium
	if input.Priority != "" {
		priority = models.ReportPriority(input.Priority)
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report priority", "success": false})
			return
		}
	}

	incidentDate, err := parseDate(input.IncidentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid incident_date, expected YYYY-MM-DD", "success": false})
		return
	}

	reporterID := user.UserID
	report := models.FlaggedReport{
		PoliticianID:  politician.ID,
		ReporterID:    &reporterID,
		IssueType:     input.IssueType,
		Title:         input.Title,
		Description:   input.Description,
		Status:        models.ReportStatusUnderReview,
		Priority:      priority,
		EvidenceFiles: pq.StringArray(input.EvidenceFiles),
		Location:      input.Location,
		IncidentDate:  incidentDate,
		IsAnonymous:   input.IsAnonymous,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: viewOf(report)})
}

// UpdateReport is the moderation path: status, priority, resolution, admin
// notes and the investigation timeline.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	var report models.FlaggedReport
	if err := rc.DB.WithContext(c.Request.Context()).First(&report, "id = ?", c.Param("reportId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found", "success": false})
		return
	}

	var input struct {
		Status                string         `json:"status"`
		Priority              string         `json:"priority"`
		InvestigationTimeline datatypes.JSON `json:"investigation_timeline"`
		Resolution            *string        `json:"resolution"`
		AdminNotes            *string        `json:"admin_notes"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if input.Status != "" {
		status := models.ReportStatus(input.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report status", "success": false})
			return
		}
		report.Status = status
	}
	if input.Priority != "" {
		priority := models.ReportPriority(input.Priority)
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report priority", "success": false})
			return
		}
		report.Priority = priority
	}
	if input.InvestigationTimeline != nil {
		report.InvestigationTimeline = input.InvestigationTimeline
	}
	if input.Resolution != nil {
		report.Resolution = input.Resolution
	}
	if input.AdminNotes != nil {
		report.AdminNotes = input.AdminNotes
	}

	if err := rc.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: viewOf(report)})
}
