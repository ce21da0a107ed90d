package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/sejongbiz/backend/internal/community"
	"github.com/sejongbiz/backend/internal/domain"
)

// CommunityService exposes the vacancy-reduction simulation and the
// infrastructure/priority analyses over the district catalog.
type CommunityService struct {
	repo CatalogRepository
}

// NewCommunityService creates a new community analysis service
func NewCommunityService(repo CatalogRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

// Impact aggregates the vacancy-reduction simulation across all qualifying
// districts.
func (s *CommunityService) Impact(ctx context.Context, reductionPercent float64) (domain.ImpactSummary, error) {
	districts, err := s.repo.GetDistricts(ctx)
	if err != nil {
		return domain.ImpactSummary{}, fmt.Errorf("community: failed to load districts: %w", err)
	}
	return community.TotalCommunityImpact(districts, reductionPercent), nil
}

// DistrictImpact simulates a vacancy reduction for one named district.
func (s *CommunityService) DistrictImpact(ctx context.Context, name string, targetRate float64) (domain.CommunityImpact, error) {
	districts, err := s.repo.GetDistricts(ctx)
	if err != nil {
		return domain.CommunityImpact{}, fmt.Errorf("community: failed to load districts: %w", err)
	}
	for _, d := range districts {
		if d.Name == name {
			return community.SimulateVacancyReduction(d, targetRate), nil
		}
	}
	return domain.CommunityImpact{}, fmt.Errorf("community: district %q not found", name)
}

// InfrastructureNeeds reports underserved living-infrastructure categories.
func (s *CommunityService) InfrastructureNeeds(ctx context.Context) ([]domain.InfrastructureNeed, error) {
	districts, err := s.repo.GetDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("community: failed to load districts: %w", err)
	}
	return community.AnalyzeInfrastructureNeeds(districts), nil
}

// PriorityScores computes the policy priority score for every district,
// highest first.
func (s *CommunityService) PriorityScores(ctx context.Context) ([]domain.PriorityResult, error) {
	districts, err := s.repo.GetDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("community: failed to load districts: %w", err)
	}

	results := make([]domain.PriorityResult, 0, len(districts))
	for _, d := range districts {
		results = append(results, community.PriorityScore(d))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}
