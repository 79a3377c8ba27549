package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kenya-ni-yetu/api-go/controllers"
)

func SetupPoliticianRoutes(
	public, staff, admin *gin.RouterGroup,
	politicianController *controllers.PoliticianController,
	caseController *controllers.CaseController,
	promiseController *controllers.PromiseController,
	linkageController *controllers.LinkageController,
	scoreController *controllers.ScoreController,
	newsController *controllers.NewsController,
) {
	// Public read endpoints
	politicians := public.Group("/politicians")
	{
		politicians.GET("", politicianController.ListPoliticians)
		politicians.GET("/:id", politicianController.GetPolitician)
		politicians.GET("/:id/cases", caseController.ListCases)
		politicians.GET("/:id/promises", promiseController.ListPromises)
		politicians.GET("/:id/linkages", linkageController.ListLinkages)
		politicians.GET("/:id/score-history", scoreController.ListScoreHistory)
		politicians.GET("/:id/news", newsController.ListNewsMentions)
	}

	// Curation endpoints
	{
		staff.POST("/politicians/:id/cases", caseController.CreateCase)
		staff.PUT("/cases/:caseId", caseController.UpdateCase)
		staff.DELETE("/cases/:caseId", caseController.DeleteCase)

		staff.POST("/politicians/:id/promises", promiseController.CreatePromise)
		staff.PUT("/promises/:promiseId", promiseController.UpdatePromise)
		staff.DELETE("/promises/:promiseId", promiseController.DeletePromise)

		staff.POST("/politicians/:id/linkages", linkageController.CreateLinkage)
		staff.PUT("/linkages/:linkageId", linkageController.UpdateLinkage)
		staff.DELETE("/linkages/:linkageId", linkageController.DeleteLinkage)

		staff.POST("/politicians/:id/news", newsController.CreateNewsMention)
	}

	// Politician lifecycle and score snapshots
	{
		admin.POST("/politicians", politicianController.CreatePolitician)
		admin.PUT("/politicians/:id", politicianController.UpdatePolitician)
		admin.DELETE("/politicians/:id", politicianController.DeletePolitician)
		admin.POST("/politicians/:id/score-history", scoreController.CreateScoreSnapshot)
	}
}
