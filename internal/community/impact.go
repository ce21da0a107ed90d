package community

import (
	"math"
	"sort"

	"github.com/sejongbiz/backend/internal/domain"
	"github.com/sejongbiz/backend/pkg/utils"
)

// Estimated effects per 1%p of vacancy reduction (research-based policy
// constants carried over from the municipal study, not re-derivable).
const (
	economicEffectPerPercent    = 2.5 // hundred-million KRW
	jobsPerPercent              = 15  // persons
	safetyImprovementPerPercent = 1.2 // percentage points
)

// vacancyFloor is the lowest target rate the aggregate simulation will push
// a district toward.
const vacancyFloor = 5.0

// SimulateVacancyReduction projects the community effect of bringing one
// district's vacancy rate down to targetRate. The target is not validated:
// a target above the current rate yields a negative reduction and therefore
// negative effects.
func SimulateVacancyReduction(d domain.District, targetRate float64) domain.CommunityImpact {
	reduction := d.VacancyRate - targetRate

	return domain.CommunityImpact{
		District:            d.Name,
		CurrentVacancy:      d.VacancyRate,
		TargetVacancy:       targetRate,
		EconomicEffect:      utils.RoundTo(reduction*economicEffectPerPercent, 1),
		JobCreation:         int(math.Round(reduction * jobsPerPercent)),
		SafetyImprovement:   utils.RoundTo(reduction*safetyImprovementPerPercent, 1),
		InfrastructureScore: d.MarketActivationIndex,
		DiversityIndex:      DiversityIndex(d),
	}
}

// DiversityIndex is a 0-100 composite of population, card sales, transport
// density, and market activation. Each sub-term is capped so the sum stays
// bounded.
func DiversityIndex(d domain.District) int {
	populationFactor := math.Min(float64(d.Population)/30000, 1) * 30
	salesFactor := math.Min(d.CardSales/2e10, 1) * 25
	transportFactor := utils.Clamp(float64(d.BRTStations*5+d.BikeStations*2)/2, 0, 15)
	activationFactor := d.MarketActivationIndex * 0.3

	return int(math.Round(populationFactor + salesFactor + transportFactor + activationFactor))
}

// TotalCommunityImpact aggregates the reduction simulation over every
// district with vacancyRate > 10, targeting currentRate - reductionPercent
// with a 5% floor. When no district qualifies it returns a zero-valued
// summary rather than dividing by zero.
func TotalCommunityImpact(districts []domain.District, reductionPercent float64) domain.ImpactSummary {
	var impacts []domain.CommunityImpact
	for _, d := range districts {
		if d.VacancyRate > 10 {
			target := math.Max(d.VacancyRate-reductionPercent, vacancyFloor)
			impacts = append(impacts, SimulateVacancyReduction(d, target))
		}
	}

	if len(impacts) == 0 {
		return domain.ImpactSummary{}
	}

	var economic, safety float64
	var jobs int
	for _, imp := range impacts {
		economic += imp.EconomicEffect
		jobs += imp.JobCreation
		safety += imp.SafetyImprovement
	}

	return domain.ImpactSummary{
		TotalEconomicEffect:  math.Round(economic),
		TotalJobCreation:     jobs,
		AvgSafetyImprovement: utils.RoundTo(safety/float64(len(impacts)), 1),
		AffectedDistricts:    len(impacts),
	}
}

// AnalyzeInfrastructureNeeds applies four static rule sets over the district
// catalog and reports each living-infrastructure category with at least one
// matching district, sorted by descending shortage score.
func AnalyzeInfrastructureNeeds(districts []domain.District) []domain.InfrastructureNeed {
	var needs []domain.InfrastructureNeed

	// Medical: rural townships and barely activated markets
	medical := filterNames(districts, func(d domain.District) bool {
		return isRuralArea(d.LivingArea) || d.MarketActivationIndex < 50
	})
	if len(medical) > 0 {
		needs = append(needs, domain.InfrastructureNeed{
			Category: "의료/건강", Icon: "🏥", Shortage: 75, Districts: medical,
		})
	}

	// Education: large population with underperforming commerce
	education := filterNames(districts, func(d domain.District) bool {
		return d.Population > 15000 && d.MarketActivationIndex < 65
	})
	if len(education) > 0 {
		needs = append(needs, domain.InfrastructureNeed{
			Category: "교육/문화", Icon: "📚", Shortage: 60, Districts: education,
		})
	}

	// Daily services: high vacancy or very low activation
	services := filterNames(districts, func(d domain.District) bool {
		return d.VacancyRate > 25 || d.MarketActivationIndex < 45
	})
	if len(services) > 0 {
		needs = append(needs, domain.InfrastructureNeed{
			Category: "생활서비스", Icon: "✂️", Shortage: 55, Districts: services,
		})
	}

	// Fitness/leisure: populous planned living zones without active commerce
	fitness := filterNames(districts, func(d domain.District) bool {
		return d.Population > 20000 && isPlannedZone(d.LivingArea) && d.MarketActivationIndex < 70
	})
	if len(fitness) > 0 {
		needs = append(needs, domain.InfrastructureNeed{
			Category: "운동/레저", Icon: "🏋️", Shortage: 45, Districts: fitness,
		})
	}

	sort.SliceStable(needs, func(i, j int) bool {
		return needs[i].Shortage > needs[j].Shortage
	})
	return needs
}

// PriorityScore computes the additive rule-based policy priority of one
// district. Each triggered rule appends a reason string; the maximum
// theoretical score is the sum of all rule contributions.
func PriorityScore(d domain.District) domain.PriorityResult {
	res := domain.PriorityResult{District: d.Name}

	switch {
	case d.VacancyRate > 30:
		res.Score += 30
		res.Reasons = append(res.Reasons, "심각한 공실률 (30% 이상)")
	case d.VacancyRate > 20:
		res.Score += 20
		res.Reasons = append(res.Reasons, "높은 공실률 (20-30%)")
	}

	if d.Population > 15000 && d.MarketActivationIndex < 60 {
		res.Score += 25
		res.Reasons = append(res.Reasons, "인구 대비 상권 저활성화")
	}

	if d.BRTStations == 0 && d.BikeStations < 5 {
		res.Score += 15
		res.Reasons = append(res.Reasons, "교통 인프라 부족")
	}

	if d.SafetyIndex < 0.6 {
		res.Score += 20
		res.Reasons = append(res.Reasons, "안전 환경 개선 필요")
	}

	if isRuralArea(d.LivingArea) || d.LivingArea == "구도심" {
		res.Score += 10
		res.Reasons = append(res.Reasons, "균형 발전 대상 지역")
	}

	return res
}

func filterNames(districts []domain.District, keep func(domain.District) bool) []string {
	var names []string
	for _, d := range districts {
		if keep(d) {
			names = append(names, d.Name)
		}
	}
	return names
}
