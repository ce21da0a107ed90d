package domain

// Coordinates is a latitude/longitude pair. Consumed only by map rendering
// and nearest-district lookup, never by scoring.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// District represents one administrative sub-area with the demographic,
// economic, and infrastructure metrics used as scoring input.
//
// The four *Index fields are normalized to [0,1]; vacancy rates and the
// market activation index are percent/point scales (0-100). The scoring
// engine combines them with fixed constants tuned against these scales,
// so the mixed scales must be preserved as-is.
type District struct {
	Name         string      `json:"name"`
	Code         string      `json:"code"`
	LivingArea   string      `json:"living_area"`
	Population   int         `json:"population"`
	CardSales    float64     `json:"card_sales"`
	BikeStations int         `json:"bike_stations"`
	BRTStations  int         `json:"brt_stations"`
	Coordinates  Coordinates `json:"coordinates"`

	CompetitionIndex   float64 `json:"competition_index"`
	DemandIndex        float64 `json:"demand_index"`
	AccessibilityIndex float64 `json:"accessibility_index"`
	SafetyIndex        float64 `json:"safety_index"`

	VacancyRate           float64 `json:"vacancy_rate"`
	ResidentialVacancy    float64 `json:"residential_vacancy"`
	CollectiveVacancy     float64 `json:"collective_vacancy"`
	OfficetelVacancy      float64 `json:"officetel_vacancy"`
	MarketActivationIndex float64 `json:"market_activation_index"`
	PredictedVacancy2025  float64 `json:"predicted_vacancy_2025"`
}

// BusinessProfile is a sellable business category with a four-factor weight
// vector expressing its sensitivity to demand, competition, accessibility,
// and safety. Weights are linear multipliers; each should lie in [0,1] and
// conventionally sum near 1.0 (not enforced).
type BusinessProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`

	DemandWeight        float64 `json:"demand_weight"`
	CompetitionWeight   float64 `json:"competition_weight"`
	AccessibilityWeight float64 `json:"accessibility_weight"`
	SafetyWeight        float64 `json:"safety_weight"`
}

// Sejong city-center coordinates
const (
	SejongCenterLat = 36.4800
	SejongCenterLon = 127.2890
)
