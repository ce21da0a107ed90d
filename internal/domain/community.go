package domain

// CommunityImpact is the projected effect of reducing one district's vacancy
// rate to a target percentage.
type CommunityImpact struct {
	District            string  `json:"district"`
	CurrentVacancy      float64 `json:"current_vacancy"`
	TargetVacancy       float64 `json:"target_vacancy"`
	EconomicEffect      float64 `json:"economic_effect"`      // hundred-million KRW
	JobCreation         int     `json:"job_creation"`         // persons
	SafetyImprovement   float64 `json:"safety_improvement"`   // percentage points
	InfrastructureScore float64 `json:"infrastructure_score"` // market activation index
	DiversityIndex      int     `json:"diversity_index"`      // 0-100 composite
}

// ImpactSummary aggregates vacancy-reduction effects across all qualifying
// districts.
type ImpactSummary struct {
	TotalEconomicEffect  float64 `json:"total_economic_effect"`
	TotalJobCreation     int     `json:"total_job_creation"`
	AvgSafetyImprovement float64 `json:"avg_safety_improvement"`
	AffectedDistricts    int     `json:"affected_districts"`
}

// InfrastructureNeed names one underserved living-infrastructure category and
// the districts where the shortage applies.
type InfrastructureNeed struct {
	Category  string   `json:"category"`
	Icon      string   `json:"icon"`
	Shortage  int      `json:"shortage"` // 0-100
	Districts []string `json:"districts"`
}

// PriorityResult is the rule-based policy priority score for one district,
// with one reason string per triggered rule.
type PriorityResult struct {
	District string   `json:"district"`
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
}

// VacancyRisk is the four-band risk classification of a vacancy rate.
type VacancyRisk struct {
	Level       string `json:"level"`
	Color       string `json:"color"`
	Description string `json:"description"`
}
