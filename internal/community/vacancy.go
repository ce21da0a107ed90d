package community

import (
	"math"
	"strings"

	"github.com/sejongbiz/backend/internal/domain"
)

// Living-area label markers. The catalog encodes zone type in the label
// itself: planned zones carry "생활권", rural townships "읍면".
func isRuralArea(livingArea string) bool {
	return strings.Contains(livingArea, "읍면")
}

func isPlannedZone(livingArea string) bool {
	return strings.Contains(livingArea, "생활권")
}

// VacancyRiskLevel classifies a vacancy rate into one of four risk bands
// with a display color.
func VacancyRiskLevel(vacancyRate float64) domain.VacancyRisk {
	switch {
	case vacancyRate < 10:
		return domain.VacancyRisk{Level: "양호", Color: "#10b981", Description: "상권 활성화 양호"}
	case vacancyRate < 20:
		return domain.VacancyRisk{Level: "주의", Color: "#f59e0b", Description: "모니터링 필요"}
	case vacancyRate < 30:
		return domain.VacancyRisk{Level: "경고", Color: "#f97316", Description: "공실 위험 증가"}
	default:
		return domain.VacancyRisk{Level: "위험", Color: "#ef4444", Description: "적극적 대응 필요"}
	}
}

// MarketActivationIndex recomputes the 0-100 composite vibrancy score from
// raw metrics. transportScore is normalized [0,1]; vacancyRate is percent.
func MarketActivationIndex(population int, cardSales, transportScore, vacancyRate float64) int {
	popScore := math.Min(float64(population)/40000, 1) * 25
	salesScore := math.Min(cardSales/5e10, 1) * 25
	transport := transportScore * 25
	vacancyScore := (1 - vacancyRate/50) * 25

	return int(math.Round(popScore + salesScore + transport + vacancyScore))
}

// OptimalCommercialArea estimates the commercial floor area (m²) a plot can
// sustain given its size, the maximum floor-area ratio (percent), and the
// local vacancy rate.
func OptimalCommercialArea(plotArea, maxFAR, vacancyRate float64) float64 {
	return plotArea * (maxFAR / 100) * ((100 - vacancyRate) / 100)
}

// JobCreationByBusiness estimates jobs created per new establishment of a
// business category.
var JobCreationByBusiness = map[string]int{
	"cafe":        3,
	"restaurant":  5,
	"convenience": 2,
	"beauty":      3,
	"gym":         4,
	"pharmacy":    3,
	"retail":      2,
	"education":   4,
}
