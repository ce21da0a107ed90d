package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/sejongbiz/backend/internal/domain"
)

func sampleDistrict() domain.District {
	return domain.District{
		Name:                  "테스트동",
		DemandIndex:           0.8,
		CompetitionIndex:      0.3,
		AccessibilityIndex:    0.6,
		SafetyIndex:           0.9,
		VacancyRate:           12,
		MarketActivationIndex: 75,
		Population:            25000,
		CardSales:             18e9,
		BikeStations:          20,
		BRTStations:           3,
	}
}

func sampleProfile() domain.BusinessProfile {
	return domain.BusinessProfile{
		ID:                  "cafe",
		Name:                "카페",
		DemandWeight:        0.3,
		CompetitionWeight:   0.2,
		AccessibilityWeight: 0.25,
		SafetyWeight:        0.25,
	}
}

func TestComputeRecommendationsKnownInputs(t *testing.T) {
	results := ComputeRecommendations([]domain.District{sampleDistrict()}, sampleProfile())

	if len(results) != 1 {
		t.Fatalf("result count = %d, want 1", len(results))
	}

	res := results[0]
	if res.Score != 83.5 {
		t.Errorf("score = %v, want 83.5", res.Score)
	}
	if res.Rank != 1 {
		t.Errorf("rank = %d, want 1", res.Rank)
	}
	if len(res.Reasons) != 6 {
		t.Fatalf("reasons count = %d, want 6", len(res.Reasons))
	}

	// Per-factor raw values for the sample district
	values := map[string]float64{}
	for _, r := range res.Reasons {
		values[r.Category] = r.Value
	}
	want := map[string]float64{
		"수요 지표":  80,
		"경쟁 현황":  70,
		"교통 접근성": 60,
		"안전 환경":  90,
		"공실 기회":  85,
		"상권 활성화": 75,
	}
	for cat, v := range want {
		if got, ok := values[cat]; !ok || math.Abs(got-v) > 1e-9 {
			t.Errorf("factor %q value = %v, want %v", cat, values[cat], v)
		}
	}

	// Reasons must be ordered by descending contribution
	for i := 1; i < len(res.Reasons); i++ {
		if res.Reasons[i].Contribution > res.Reasons[i-1].Contribution {
			t.Errorf("reasons not sorted: %v before %v",
				res.Reasons[i-1].Contribution, res.Reasons[i].Contribution)
		}
	}

	// Demand carries the largest weighted contribution (80 * 0.3 = 24),
	// ahead of safety (90 * 0.25 = 22.5)
	if res.Reasons[0].Category != "수요 지표" {
		t.Errorf("top reason = %q, want 수요 지표", res.Reasons[0].Category)
	}
	if math.Abs(res.Reasons[0].Contribution-24) > 1e-9 {
		t.Errorf("top contribution = %v, want 24", res.Reasons[0].Contribution)
	}
	if res.Reasons[1].Category != "안전 환경" || math.Abs(res.Reasons[1].Contribution-22.5) > 1e-9 {
		t.Errorf("second reason = %q (%v), want 안전 환경 (22.5)",
			res.Reasons[1].Category, res.Reasons[1].Contribution)
	}
}

func TestComputeRecommendationsDeterminism(t *testing.T) {
	districts := []domain.District{sampleDistrict()}
	d2 := sampleDistrict()
	d2.Name = "둘째동"
	d2.DemandIndex = 0.5
	districts = append(districts, d2)

	first := ComputeRecommendations(districts, sampleProfile())
	for i := 0; i < 10; i++ {
		again := ComputeRecommendations(districts, sampleProfile())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestComputeRecommendationsEmptyInput(t *testing.T) {
	results := ComputeRecommendations(nil, sampleProfile())
	if len(results) != 0 {
		t.Errorf("result count = %d, want 0", len(results))
	}
}

func TestComputeRecommendationsInputNotMutated(t *testing.T) {
	districts := []domain.District{sampleDistrict()}
	snapshot := make([]domain.District, len(districts))
	copy(snapshot, districts)

	ComputeRecommendations(districts, sampleProfile())

	if !reflect.DeepEqual(districts, snapshot) {
		t.Error("districts slice was mutated")
	}
}

func TestRankCompleteness(t *testing.T) {
	var districts []domain.District
	for i := 0; i < 8; i++ {
		d := sampleDistrict()
		d.Name = string(rune('A' + i))
		d.DemandIndex = 0.1 * float64(i+1)
		districts = append(districts, d)
	}

	results := ComputeRecommendations(districts, sampleProfile())
	if len(results) != len(districts) {
		t.Fatalf("result count = %d, want %d", len(results), len(districts))
	}

	seen := make(map[int]bool)
	for i, res := range results {
		if res.Rank != i+1 {
			t.Errorf("results[%d].Rank = %d, want %d", i, res.Rank, i+1)
		}
		if seen[res.Rank] {
			t.Errorf("duplicate rank %d", res.Rank)
		}
		seen[res.Rank] = true
		if i > 0 && res.Score > results[i-1].Score {
			t.Errorf("scores not descending at index %d: %v > %v", i, res.Score, results[i-1].Score)
		}
	}
}

func TestTieBreakKeepsCatalogOrder(t *testing.T) {
	a := sampleDistrict()
	a.Name = "먼저동"
	b := sampleDistrict()
	b.Name = "나중동"

	results := ComputeRecommendations([]domain.District{a, b}, sampleProfile())
	if results[0].District.Name != "먼저동" || results[1].District.Name != "나중동" {
		t.Errorf("tie-break order = [%s, %s], want catalog order",
			results[0].District.Name, results[1].District.Name)
	}
}

func TestScoreBound(t *testing.T) {
	profile := sampleProfile()
	weightSum := profile.DemandWeight + profile.CompetitionWeight +
		profile.AccessibilityWeight + profile.SafetyWeight
	bound := 100*weightSum + 10

	// Extremes of the in-domain input space
	var districts []domain.District
	for _, idx := range []float64{0, 0.5, 1} {
		for _, vac := range []float64{0, 12, 50, 100} {
			districts = append(districts, domain.District{
				Name:                  "경계동",
				DemandIndex:           idx,
				CompetitionIndex:      1 - idx,
				AccessibilityIndex:    idx,
				SafetyIndex:           idx,
				VacancyRate:           vac,
				MarketActivationIndex: 100,
			})
		}
	}

	for _, res := range ComputeRecommendations(districts, profile) {
		if res.Score > bound {
			t.Errorf("score %v exceeds bound %v", res.Score, bound)
		}
	}
}

func TestWeightMonotonicity(t *testing.T) {
	lo := sampleDistrict()
	lo.Name = "저수요동"
	lo.DemandIndex = 0.3
	hi := sampleDistrict()
	hi.Name = "고수요동"
	hi.DemandIndex = 0.9

	rankOf := func(results []domain.RecommendationResult, name string) int {
		for _, r := range results {
			if r.District.Name == name {
				return r.Rank
			}
		}
		t.Fatalf("district %q missing from results", name)
		return 0
	}

	profile := sampleProfile()
	prevGap := 0
	for _, w := range []float64{0.1, 0.3, 0.5, 0.7} {
		profile.DemandWeight = w
		results := ComputeRecommendations([]domain.District{lo, hi}, profile)
		gap := rankOf(results, "저수요동") - rankOf(results, "고수요동")
		if gap < prevGap {
			t.Errorf("demandWeight=%v: higher-demand district lost relative rank", w)
		}
		prevGap = gap
	}
}

func TestVacancyOpportunityScore(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{4, 40},
		{5, 60},
		{9, 60},
		{10, 85},
		{14, 85},
		{15, 80},
		{19, 80},
		{20, 70},
		{24, 70},
		{25, 50},
		{29, 50},
		{30, 30},
		{40, 30},
	}

	for _, tt := range tests {
		if got := VacancyOpportunityScore(tt.rate); got != tt.want {
			t.Errorf("VacancyOpportunityScore(%v) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestScoreGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "S"},
		{80, "S"},
		{79.9, "A"},
		{70, "A"},
		{69.9, "B"},
		{60, "B"},
		{59.9, "C"},
		{50, "C"},
		{49.9, "D"},
		{0, "D"},
	}

	for _, tt := range tests {
		if got := ScoreGrade(tt.score); got.Grade != tt.want {
			t.Errorf("ScoreGrade(%v) = %q, want %q", tt.score, got.Grade, tt.want)
		}
	}
}
