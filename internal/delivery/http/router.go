package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sejongbiz/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, recSvc *service.RecommendationService, commSvc *service.CommunityService, narrSvc *service.NarrativeService) {
	handler := NewHandler(recSvc, commSvc, narrSvc)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Catalogs
		api.Get("/districts", handler.GetDistricts)
		api.Get("/districts/nearest", handler.GetNearestDistrict)
		api.Get("/business-types", handler.GetBusinessTypes)

		// Recommendation engine
		api.Get("/recommendations", handler.GetRecommendations)

		// Community impact analyses
		api.Get("/community/impact", handler.GetCommunityImpact)
		api.Get("/community/impact/:name", handler.GetDistrictImpact)
		api.Get("/community/infrastructure", handler.GetInfrastructureNeeds)
		api.Get("/community/priority", handler.GetPriorityScores)

		// Narrative enrichment (best-effort, never fails the numeric path)
		api.Post("/narrative", handler.GenerateNarrative)
	}
}
