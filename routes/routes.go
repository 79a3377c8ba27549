package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/controllers"
	"github.com/kenya-ni-yetu/api-go/middleware"
	"github.com/kenya-ni-yetu/api-go/models"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	politicianController := controllers.NewPoliticianController(db)
	caseController := controllers.NewCaseController(db)
	promiseController := controllers.NewPromiseController(db)
	linkageController := controllers.NewLinkageController(db)
	reportController := controllers.NewReportController(db)
	scoreController := controllers.NewScoreController(db)
	newsController := controllers.NewNewsController(db)
	uploadController := controllers.NewUploadController()

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/refresh", authController.Refresh)
		public.POST("/auth/verify-email", authController.VerifyEmail)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)
		protected.POST("/uploads/evidence", uploadController.GetEvidenceUploadURL)
	}

	// Staff routes: content moderation and curation
	staff := r.Group("/api")
	staff.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleModerator, models.RoleAdmin))

	// Admin routes: politician lifecycle and score snapshots
	admin := r.Group("/api")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))

	SetupPoliticianRoutes(public, staff, admin, politicianController, caseController, promiseController, linkageController, scoreController, newsController)
	SetupReportRoutes(public, protected, staff, reportController)
}
