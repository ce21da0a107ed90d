package scoring

import (
	"sort"

	"github.com/sejongbiz/backend/internal/domain"
	"github.com/sejongbiz/backend/pkg/utils"
)

// Bonus multipliers for the vacancy-opportunity and market-activation terms.
// Both factors are on a 0-100 scale, so each contributes at most 5 points.
const (
	vacancyBonusWeight = 0.05
	marketBonusWeight  = 0.05
)

// ComputeRecommendations scores every district against one business profile
// and returns the full result set sorted by descending score, ranks assigned
// 1..N. Equal scores keep catalog order (stable sort). An empty district
// slice yields an empty result slice.
//
// Inputs are not mutated and not validated: the catalogs are trusted,
// statically curated data, and out-of-range indices produce out-of-range
// scores rather than errors.
func ComputeRecommendations(districts []domain.District, profile domain.BusinessProfile) []domain.RecommendationResult {
	results := make([]domain.RecommendationResult, 0, len(districts))

	for _, d := range districts {
		// Per-factor scores on a 0-100 scale. Competition is inverted:
		// a low-saturation market scores high.
		demandScore := d.DemandIndex * 100
		competitionScore := (1 - d.CompetitionIndex) * 100
		accessibilityScore := d.AccessibilityIndex * 100
		safetyScore := d.SafetyIndex * 100

		vacancyScore := VacancyOpportunityScore(d.VacancyRate)
		marketScore := d.MarketActivationIndex

		baseScore := demandScore*profile.DemandWeight +
			competitionScore*profile.CompetitionWeight +
			accessibilityScore*profile.AccessibilityWeight +
			safetyScore*profile.SafetyWeight

		bonusScore := vacancyScore*vacancyBonusWeight + marketScore*marketBonusWeight

		reasons := []domain.Reason{
			{
				Category:     "수요 지표",
				Description:  demandDescription(d),
				Value:        demandScore,
				Contribution: demandScore * profile.DemandWeight,
			},
			{
				Category:     "경쟁 현황",
				Description:  competitionDescription(d),
				Value:        competitionScore,
				Contribution: competitionScore * profile.CompetitionWeight,
			},
			{
				Category:     "교통 접근성",
				Description:  accessibilityDescription(d),
				Value:        accessibilityScore,
				Contribution: accessibilityScore * profile.AccessibilityWeight,
			},
			{
				Category:     "안전 환경",
				Description:  safetyDescription(d),
				Value:        safetyScore,
				Contribution: safetyScore * profile.SafetyWeight,
			},
			{
				Category:     "공실 기회",
				Description:  vacancyDescription(d),
				Value:        vacancyScore,
				Contribution: vacancyScore * vacancyBonusWeight,
			},
			{
				Category:     "상권 활성화",
				Description:  marketDescription(d),
				Value:        marketScore,
				Contribution: marketScore * marketBonusWeight,
			},
		}

		sort.SliceStable(reasons, func(i, j int) bool {
			return reasons[i].Contribution > reasons[j].Contribution
		})

		results = append(results, domain.RecommendationResult{
			District: d,
			Score:    utils.RoundTo(baseScore+bonusScore, 1),
			Reasons:  reasons,
		})
	}

	// Stable: catalog order is the tie-break for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return results
}

// VacancyOpportunityScore maps a vacancy rate (percent) to a 0-100
// opportunity score. The curve is non-monotonic: too little vacancy means no
// available space, too much means a declining market, with the optimum in the
// 10-15% band. Band boundaries are inclusive on the lower bound.
func VacancyOpportunityScore(vacancyRate float64) float64 {
	switch {
	case vacancyRate < 5:
		return 40
	case vacancyRate < 10:
		return 60
	case vacancyRate < 15:
		return 85
	case vacancyRate < 20:
		return 80
	case vacancyRate < 25:
		return 70
	case vacancyRate < 30:
		return 50
	default:
		return 30
	}
}

// ScoreGrade maps a final score to a letter grade and display color.
func ScoreGrade(score float64) domain.Grade {
	switch {
	case score >= 80:
		return domain.Grade{Grade: "S", Color: "#10b981"}
	case score >= 70:
		return domain.Grade{Grade: "A", Color: "#3b82f6"}
	case score >= 60:
		return domain.Grade{Grade: "B", Color: "#f59e0b"}
	case score >= 50:
		return domain.Grade{Grade: "C", Color: "#f97316"}
	default:
		return domain.Grade{Grade: "D", Color: "#ef4444"}
	}
}
