package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/controllers"
)

func SetupReportRoutes(public, protected, staff *gin.RouterGroup, reportController *controllers.ReportController) {
	public.GET("/politicians/:id/reports", reportController.ListReports)
	protected.POST("/politicians/:id/reports", reportController.CreateReport)
	staff.PUT("/reports/:reportId", reportController.UpdateReport)
}
