package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/sejongbiz/backend/internal/domain"
	"github.com/sejongbiz/backend/internal/scoring"
)

// RecommendationService runs the scoring engine over the catalogs and logs
// each analysis run.
type RecommendationService struct {
	repo CatalogRepository

	wgBg sync.WaitGroup // tracks background goroutines for graceful shutdown
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(repo CatalogRepository) *RecommendationService {
	return &RecommendationService{repo: repo}
}

// WaitBackground blocks until all background log goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (s *RecommendationService) WaitBackground() {
	s.wgBg.Wait()
}

// Recommend scores all districts against the profile identified by
// businessID and returns the ranked result set. The run is logged
// asynchronously; a logging failure never affects the response.
func (s *RecommendationService) Recommend(ctx context.Context, businessID string) ([]domain.RecommendationResult, error) {
	profile, err := s.repo.GetBusinessProfile(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("recommendation: unknown business type %q: %w", businessID, err)
	}

	districts, err := s.repo.GetDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommendation: failed to load districts: %w", err)
	}

	results := scoring.ComputeRecommendations(districts, profile)

	// Persist the run asynchronously (tracked for graceful shutdown)
	s.wgBg.Add(1)
	go func() {
		defer s.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entry := domain.AnalysisLog{
			BusinessID:   profile.ID,
			BusinessName: profile.Name,
			DistrictN:    len(results),
			Timestamp:    time.Now(),
		}
		if len(results) > 0 {
			entry.TopDistrict = results[0].District.Name
			entry.TopScore = results[0].Score
		}
		if err := s.repo.SaveAnalysisLog(bgCtx, entry); err != nil {
			log.Printf("Failed to save analysis log: %v", err)
		}
	}()

	return results, nil
}

// Districts returns the full district catalog
func (s *RecommendationService) Districts(ctx context.Context) ([]domain.District, error) {
	return s.repo.GetDistricts(ctx)
}

// BusinessProfiles returns the business profile catalog
func (s *RecommendationService) BusinessProfiles(ctx context.Context) ([]domain.BusinessProfile, error) {
	return s.repo.GetBusinessProfiles(ctx)
}
