package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sejongbiz/backend/internal/domain"
)

// fakeRepo implements CatalogRepository in memory for service tests
type fakeRepo struct {
	districts []domain.District
	profiles  []domain.BusinessProfile

	mu   sync.Mutex
	logs []domain.AnalysisLog
}

func (r *fakeRepo) GetDistricts(ctx context.Context) ([]domain.District, error) {
	return r.districts, nil
}

func (r *fakeRepo) GetBusinessProfiles(ctx context.Context) ([]domain.BusinessProfile, error) {
	return r.profiles, nil
}

func (r *fakeRepo) GetBusinessProfile(ctx context.Context, id string) (domain.BusinessProfile, error) {
	for _, p := range r.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.BusinessProfile{}, fmt.Errorf("fake: profile %q not found", id)
}

func (r *fakeRepo) SaveAnalysisLog(ctx context.Context, entry domain.AnalysisLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, entry)
	return nil
}

func (r *fakeRepo) Health(ctx context.Context) error {
	return nil
}

func testRepo() *fakeRepo {
	return &fakeRepo{
		districts: []domain.District{
			{
				Name: "갑동", DemandIndex: 0.9, CompetitionIndex: 0.2,
				AccessibilityIndex: 0.8, SafetyIndex: 0.9,
				VacancyRate: 12, MarketActivationIndex: 75,
			},
			{
				Name: "을동", DemandIndex: 0.3, CompetitionIndex: 0.7,
				AccessibilityIndex: 0.4, SafetyIndex: 0.5,
				VacancyRate: 32, MarketActivationIndex: 35,
			},
		},
		profiles: []domain.BusinessProfile{
			{ID: "cafe", Name: "카페", DemandWeight: 0.35, CompetitionWeight: 0.25, AccessibilityWeight: 0.25, SafetyWeight: 0.15},
		},
	}
}

func TestRecommendRanksAndLogs(t *testing.T) {
	repo := testRepo()
	svc := NewRecommendationService(repo)

	results, err := svc.Recommend(context.Background(), "cafe")
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	if results[0].District.Name != "갑동" {
		t.Errorf("top district = %q, want 갑동", results[0].District.Name)
	}
	if results[0].Rank != 1 || results[1].Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", results[0].Rank, results[1].Rank)
	}

	svc.WaitBackground()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.logs) != 1 {
		t.Fatalf("log count = %d, want 1", len(repo.logs))
	}
	entry := repo.logs[0]
	if entry.BusinessID != "cafe" || entry.TopDistrict != "갑동" || entry.DistrictN != 2 {
		t.Errorf("log entry = %+v, want cafe/갑동/2", entry)
	}
	if entry.TopScore != results[0].Score {
		t.Errorf("log top score = %v, want %v", entry.TopScore, results[0].Score)
	}
}

func TestRecommendUnknownBusiness(t *testing.T) {
	svc := NewRecommendationService(testRepo())

	if _, err := svc.Recommend(context.Background(), "spaceport"); err == nil {
		t.Error("Recommend(spaceport) = nil error, want unknown-business error")
	}
}

func TestCommunityServicePrioritySorted(t *testing.T) {
	svc := NewCommunityService(testRepo())

	results, err := svc.PriorityScores(context.Background())
	if err != nil {
		t.Fatalf("PriorityScores failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("result count = %d, want 2", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("priority scores not descending at %d", i)
		}
	}
	// 을동: vacancy 32 (+30), safety 0.5 (+20), no transit data (+15) = highest
	if results[0].District != "을동" {
		t.Errorf("top priority district = %q, want 을동", results[0].District)
	}
}

func TestCommunityServiceDistrictImpact(t *testing.T) {
	svc := NewCommunityService(testRepo())

	impact, err := svc.DistrictImpact(context.Background(), "을동", 20)
	if err != nil {
		t.Fatalf("DistrictImpact failed: %v", err)
	}
	if impact.EconomicEffect != 30.0 { // 12%p * 2.5
		t.Errorf("economicEffect = %v, want 30.0", impact.EconomicEffect)
	}

	if _, err := svc.DistrictImpact(context.Background(), "없는동", 10); err == nil {
		t.Error("DistrictImpact(없는동) = nil error, want not-found")
	}
}
