package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sejongbiz/backend/internal/community"
	"github.com/sejongbiz/backend/internal/domain"
	"github.com/sejongbiz/backend/internal/scoring"
	"github.com/sejongbiz/backend/internal/service"
	"github.com/sejongbiz/backend/pkg/utils"
)

// Handler contains all HTTP handlers
type Handler struct {
	recSvc  *service.RecommendationService
	commSvc *service.CommunityService
	narrSvc *service.NarrativeService
}

// NewHandler creates a new handler
func NewHandler(recSvc *service.RecommendationService, commSvc *service.CommunityService, narrSvc *service.NarrativeService) *Handler {
	return &Handler{
		recSvc:  recSvc,
		commSvc: commSvc,
		narrSvc: narrSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "sejongbiz-backend",
		"version": "1.0.0",
	})
}

// GetDistricts returns the district catalog
func (h *Handler) GetDistricts(c *fiber.Ctx) error {
	ctx := c.Context()

	districts, err := h.recSvc.Districts(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load districts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    districts,
		"count":   len(districts),
	})
}

// GetNearestDistrict resolves the district closest to a coordinate
func (h *Handler) GetNearestDistrict(c *fiber.Ctx) error {
	ctx := c.Context()

	lat := c.QueryFloat("lat", domain.SejongCenterLat)
	lon := c.QueryFloat("lon", domain.SejongCenterLon)

	districts, err := h.recSvc.Districts(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load districts")
	}
	if len(districts) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No districts available")
	}

	nearest := districts[0]
	best := utils.Haversine(lat, lon, nearest.Coordinates.Lat, nearest.Coordinates.Lon)
	for _, d := range districts[1:] {
		dist := utils.Haversine(lat, lon, d.Coordinates.Lat, d.Coordinates.Lon)
		if dist < best {
			best = dist
			nearest = d
		}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        nearest,
		"distance_km": utils.RoundTo(best, 2),
	})
}

// GetBusinessTypes returns the business profile catalog
func (h *Handler) GetBusinessTypes(c *fiber.Ctx) error {
	ctx := c.Context()

	profiles, err := h.recSvc.BusinessProfiles(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load business types")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profiles,
		"count":   len(profiles),
	})
}

// rankedItem pairs one recommendation with its display grade
type rankedItem struct {
	domain.RecommendationResult
	Grade        domain.Grade       `json:"grade"`
	Risk         domain.VacancyRisk `json:"vacancy_risk"`
	ExpectedJobs int                `json:"expected_jobs"`
}

// GetRecommendations returns the ranked site recommendations for one
// business type
func (h *Handler) GetRecommendations(c *fiber.Ctx) error {
	ctx := c.Context()

	businessID := c.Query("business")
	if businessID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing business query parameter")
	}

	results, err := h.recSvc.Recommend(ctx, businessID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Unknown business type")
	}

	items := make([]rankedItem, 0, len(results))
	for _, res := range results {
		items = append(items, rankedItem{
			RecommendationResult: res,
			Grade:                scoring.ScoreGrade(res.Score),
			Risk:                 community.VacancyRiskLevel(res.District.VacancyRate),
			ExpectedJobs:         community.JobCreationByBusiness[businessID],
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}

// GetCommunityImpact returns the aggregate vacancy-reduction projection
func (h *Handler) GetCommunityImpact(c *fiber.Ctx) error {
	ctx := c.Context()

	reduction := c.QueryFloat("reduction", 5)
	if reduction < 0 || reduction > 50 {
		reduction = 5
	}

	summary, err := h.commSvc.Impact(ctx, reduction)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute community impact")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// GetDistrictImpact simulates a vacancy reduction for one district
func (h *Handler) GetDistrictImpact(c *fiber.Ctx) error {
	ctx := c.Context()

	name := c.Params("name")
	target := c.QueryFloat("target", 10)

	impact, err := h.commSvc.DistrictImpact(ctx, name, target)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "District not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    impact,
	})
}

// GetInfrastructureNeeds returns underserved infrastructure categories
func (h *Handler) GetInfrastructureNeeds(c *fiber.Ctx) error {
	ctx := c.Context()

	needs, err := h.commSvc.InfrastructureNeeds(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to analyze infrastructure needs")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    needs,
		"count":   len(needs),
	})
}

// GetPriorityScores returns the policy priority ranking of all districts
func (h *Handler) GetPriorityScores(c *fiber.Ctx) error {
	ctx := c.Context()

	results, err := h.commSvc.PriorityScores(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute priority scores")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
		"count":   len(results),
	})
}

// GenerateNarrative produces an analysis comment. The inference endpoint is
// best-effort; this handler always succeeds, falling back to a templated
// comment when the endpoint is unavailable.
func (h *Handler) GenerateNarrative(c *fiber.Ctx) error {
	ctx := c.Context()

	var req domain.NarrativeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	narrative := h.narrSvc.TryGenerate(ctx, req)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    narrative,
	})
}
