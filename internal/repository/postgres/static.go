package postgres

import (
	"context"
	"fmt"

	"github.com/sejongbiz/backend/internal/domain"
)

// StaticRepository implements domain.CatalogRepository from the bundled
// Sejong dataset. Used when no database is configured; the catalogs are
// immutable and analysis logs are dropped.
type StaticRepository struct{}

// NewStaticRepository creates a new static catalog repository
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{}
}

// GetDistricts returns the bundled district catalog
func (r *StaticRepository) GetDistricts(ctx context.Context) ([]domain.District, error) {
	out := make([]domain.District, len(sejongDistricts))
	copy(out, sejongDistricts)
	return out, nil
}

// GetBusinessProfiles returns the bundled business profile catalog
func (r *StaticRepository) GetBusinessProfiles(ctx context.Context) ([]domain.BusinessProfile, error) {
	out := make([]domain.BusinessProfile, len(businessProfiles))
	copy(out, businessProfiles)
	return out, nil
}

// GetBusinessProfile returns one bundled profile by id
func (r *StaticRepository) GetBusinessProfile(ctx context.Context, id string) (domain.BusinessProfile, error) {
	for _, p := range businessProfiles {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.BusinessProfile{}, fmt.Errorf("static: business profile %q not found", id)
}

// SaveAnalysisLog is a no-op without a database
func (r *StaticRepository) SaveAnalysisLog(ctx context.Context, entry domain.AnalysisLog) error {
	return nil
}

// Health always returns nil in static mode
func (r *StaticRepository) Health(ctx context.Context) error {
	return nil
}

// Sejong living-area catalog. Vacancy metrics follow the municipal vacancy
// study; demand/competition/accessibility/safety indices are normalized
// [0,1], vacancy and activation figures are percent/point scales (0-100).
var sejongDistricts = []domain.District{
	{
		Name: "한솔동", Code: "SJ01", LivingArea: "1-1생활권",
		Population: 21500, CardSales: 16.2e9, BikeStations: 18, BRTStations: 3,
		Coordinates: domain.Coordinates{Lat: 36.4780, Lon: 127.2620},
		CompetitionIndex: 0.55, DemandIndex: 0.72, AccessibilityIndex: 0.78, SafetyIndex: 0.82,
		VacancyRate: 15.3, ResidentialVacancy: 8.5, CollectiveVacancy: 22.3, OfficetelVacancy: 15.2,
		MarketActivationIndex: 72, PredictedVacancy2025: 14.1,
	},
	{
		Name: "새롬동", Code: "SJ02", LivingArea: "1-2생활권",
		Population: 28400, CardSales: 21.5e9, BikeStations: 22, BRTStations: 4,
		Coordinates: domain.Coordinates{Lat: 36.4790, Lon: 127.2520},
		CompetitionIndex: 0.62, DemandIndex: 0.85, AccessibilityIndex: 0.85, SafetyIndex: 0.88,
		VacancyRate: 12.8, ResidentialVacancy: 7.2, CollectiveVacancy: 18.5, OfficetelVacancy: 12.8,
		MarketActivationIndex: 78, PredictedVacancy2025: 11.5,
	},
	{
		Name: "나성동", Code: "SJ03", LivingArea: "1-3생활권",
		Population: 14200, CardSales: 19.8e9, BikeStations: 16, BRTStations: 3,
		Coordinates: domain.Coordinates{Lat: 36.4830, Lon: 127.2570},
		CompetitionIndex: 0.68, DemandIndex: 0.78, AccessibilityIndex: 0.82, SafetyIndex: 0.80,
		VacancyRate: 16.7, ResidentialVacancy: 9.1, CollectiveVacancy: 24.6, OfficetelVacancy: 16.3,
		MarketActivationIndex: 68, PredictedVacancy2025: 15.2,
	},
	{
		Name: "도담동", Code: "SJ04", LivingArea: "1-4생활권",
		Population: 25300, CardSales: 18.4e9, BikeStations: 20, BRTStations: 3,
		Coordinates: domain.Coordinates{Lat: 36.5180, Lon: 127.2610},
		CompetitionIndex: 0.65, DemandIndex: 0.80, AccessibilityIndex: 0.80, SafetyIndex: 0.85,
		VacancyRate: 13.8, ResidentialVacancy: 6.8, CollectiveVacancy: 20.1, OfficetelVacancy: 14.5,
		MarketActivationIndex: 75, PredictedVacancy2025: 12.3,
	},
	{
		Name: "어진동", Code: "SJ05", LivingArea: "1-5생활권",
		Population: 9800, CardSales: 14.6e9, BikeStations: 14, BRTStations: 2,
		Coordinates: domain.Coordinates{Lat: 36.5030, Lon: 127.2590},
		CompetitionIndex: 0.58, DemandIndex: 0.68, AccessibilityIndex: 0.75, SafetyIndex: 0.78,
		VacancyRate: 18.6, ResidentialVacancy: 10.2, CollectiveVacancy: 26.8, OfficetelVacancy: 18.9,
		MarketActivationIndex: 65, PredictedVacancy2025: 17.1,
	},
	{
		Name: "종촌동", Code: "SJ06", LivingArea: "2-1생활권",
		Population: 24600, CardSales: 13.2e9, BikeStations: 15, BRTStations: 2,
		Coordinates: domain.Coordinates{Lat: 36.5110, Lon: 127.2460},
		CompetitionIndex: 0.52, DemandIndex: 0.70, AccessibilityIndex: 0.72, SafetyIndex: 0.80,
		VacancyRate: 19.7, ResidentialVacancy: 11.5, CollectiveVacancy: 28.3, OfficetelVacancy: 19.2,
		MarketActivationIndex: 62, PredictedVacancy2025: 18.5,
	},
	{
		Name: "아름동", Code: "SJ07", LivingArea: "2-2생활권",
		Population: 23900, CardSales: 12.5e9, BikeStations: 13, BRTStations: 2,
		Coordinates: domain.Coordinates{Lat: 36.5230, Lon: 127.2460},
		CompetitionIndex: 0.50, DemandIndex: 0.68, AccessibilityIndex: 0.70, SafetyIndex: 0.82,
		VacancyRate: 20.1, ResidentialVacancy: 11.2, CollectiveVacancy: 29.7, OfficetelVacancy: 19.5,
		MarketActivationIndex: 60, PredictedVacancy2025: 18.8,
	},
	{
		Name: "대평동", Code: "SJ08", LivingArea: "2-3생활권",
		Population: 16800, CardSales: 12.9e9, BikeStations: 12, BRTStations: 2,
		Coordinates: domain.Coordinates{Lat: 36.4690, Lon: 127.2710},
		CompetitionIndex: 0.48, DemandIndex: 0.66, AccessibilityIndex: 0.70, SafetyIndex: 0.76,
		VacancyRate: 18.8, ResidentialVacancy: 10.8, CollectiveVacancy: 27.5, OfficetelVacancy: 18.1,
		MarketActivationIndex: 64, PredictedVacancy2025: 17.3,
	},
	{
		Name: "고운동", Code: "SJ09", LivingArea: "2-4생활권",
		Population: 26700, CardSales: 11.8e9, BikeStations: 11, BRTStations: 1,
		Coordinates: domain.Coordinates{Lat: 36.5290, Lon: 127.2330},
		CompetitionIndex: 0.45, DemandIndex: 0.64, AccessibilityIndex: 0.62, SafetyIndex: 0.78,
		VacancyRate: 21.7, ResidentialVacancy: 12.3, CollectiveVacancy: 31.2, OfficetelVacancy: 21.5,
		MarketActivationIndex: 58, PredictedVacancy2025: 20.2,
	},
	{
		Name: "소담동", Code: "SJ10", LivingArea: "3-1생활권",
		Population: 19500, CardSales: 14.8e9, BikeStations: 14, BRTStations: 2,
		Coordinates: domain.Coordinates{Lat: 36.4710, Lon: 127.2930},
		CompetitionIndex: 0.55, DemandIndex: 0.72, AccessibilityIndex: 0.74, SafetyIndex: 0.84,
		VacancyRate: 16.0, ResidentialVacancy: 8.9, CollectiveVacancy: 23.4, OfficetelVacancy: 15.8,
		MarketActivationIndex: 70, PredictedVacancy2025: 14.5,
	},
	{
		Name: "반곡동", Code: "SJ11", LivingArea: "3-2생활권",
		Population: 17900, CardSales: 15.6e9, BikeStations: 16, BRTStations: 3,
		Coordinates: domain.Coordinates{Lat: 36.4660, Lon: 127.3050},
		CompetitionIndex: 0.50, DemandIndex: 0.75, AccessibilityIndex: 0.78, SafetyIndex: 0.86,
		VacancyRate: 13.6, ResidentialVacancy: 7.5, CollectiveVacancy: 19.8, OfficetelVacancy: 13.6,
		MarketActivationIndex: 76, PredictedVacancy2025: 12.1,
	},
	{
		Name: "조치원읍", Code: "SJ12", LivingArea: "구도심",
		Population: 42300, CardSales: 16.8e9, BikeStations: 8, BRTStations: 1,
		Coordinates: domain.Coordinates{Lat: 36.6010, Lon: 127.2970},
		CompetitionIndex: 0.60, DemandIndex: 0.62, AccessibilityIndex: 0.58, SafetyIndex: 0.55,
		VacancyRate: 25.4, ResidentialVacancy: 15.8, CollectiveVacancy: 35.2, OfficetelVacancy: 25.3,
		MarketActivationIndex: 48, PredictedVacancy2025: 24.1,
	},
	{
		Name: "보람동", Code: "SJ13", LivingArea: "4-1생활권",
		Population: 20800, CardSales: 11.2e9, BikeStations: 10, BRTStations: 2,
		Coordinates: domain.Coordinates{Lat: 36.4630, Lon: 127.2830},
		CompetitionIndex: 0.42, DemandIndex: 0.60, AccessibilityIndex: 0.66, SafetyIndex: 0.74,
		VacancyRate: 22.7, ResidentialVacancy: 13.2, CollectiveVacancy: 32.8, OfficetelVacancy: 22.1,
		MarketActivationIndex: 55, PredictedVacancy2025: 21.5,
	},
	{
		Name: "금남면", Code: "SJ14", LivingArea: "읍면지역",
		Population: 8900, CardSales: 3.8e9, BikeStations: 3, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.4430, Lon: 127.2650},
		CompetitionIndex: 0.35, DemandIndex: 0.42, AccessibilityIndex: 0.35, SafetyIndex: 0.58,
		VacancyRate: 28.4, ResidentialVacancy: 18.5, CollectiveVacancy: 38.2, OfficetelVacancy: 28.6,
		MarketActivationIndex: 42, PredictedVacancy2025: 27.8,
	},
	{
		Name: "부강면", Code: "SJ15", LivingArea: "읍면지역",
		Population: 6200, CardSales: 2.9e9, BikeStations: 2, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.5220, Lon: 127.3670},
		CompetitionIndex: 0.30, DemandIndex: 0.38, AccessibilityIndex: 0.30, SafetyIndex: 0.55,
		VacancyRate: 31.3, ResidentialVacancy: 20.1, CollectiveVacancy: 42.5, OfficetelVacancy: 31.2,
		MarketActivationIndex: 38, PredictedVacancy2025: 30.5,
	},
	{
		Name: "연기면", Code: "SJ16", LivingArea: "읍면지역",
		Population: 3400, CardSales: 1.8e9, BikeStations: 1, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.5170, Lon: 127.2320},
		CompetitionIndex: 0.28, DemandIndex: 0.32, AccessibilityIndex: 0.28, SafetyIndex: 0.52,
		VacancyRate: 29.7, ResidentialVacancy: 19.2, CollectiveVacancy: 40.1, OfficetelVacancy: 29.8,
		MarketActivationIndex: 40, PredictedVacancy2025: 28.9,
	},
	{
		Name: "연서면", Code: "SJ17", LivingArea: "읍면지역",
		Population: 7800, CardSales: 2.4e9, BikeStations: 2, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.5550, Lon: 127.2510},
		CompetitionIndex: 0.32, DemandIndex: 0.36, AccessibilityIndex: 0.32, SafetyIndex: 0.54,
		VacancyRate: 32.9, ResidentialVacancy: 21.5, CollectiveVacancy: 44.2, OfficetelVacancy: 33.1,
		MarketActivationIndex: 35, PredictedVacancy2025: 32.1,
	},
	{
		Name: "장군면", Code: "SJ18", LivingArea: "읍면지역",
		Population: 6700, CardSales: 2.1e9, BikeStations: 1, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.5180, Lon: 127.1970},
		CompetitionIndex: 0.25, DemandIndex: 0.30, AccessibilityIndex: 0.25, SafetyIndex: 0.50,
		VacancyRate: 36.2, ResidentialVacancy: 23.8, CollectiveVacancy: 48.5, OfficetelVacancy: 36.2,
		MarketActivationIndex: 30, PredictedVacancy2025: 35.5,
	},
	{
		Name: "전의면", Code: "SJ19", LivingArea: "읍면지역",
		Population: 5900, CardSales: 1.9e9, BikeStations: 2, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.6830, Lon: 127.1920},
		CompetitionIndex: 0.22, DemandIndex: 0.28, AccessibilityIndex: 0.22, SafetyIndex: 0.48,
		VacancyRate: 38.6, ResidentialVacancy: 25.2, CollectiveVacancy: 52.1, OfficetelVacancy: 38.5,
		MarketActivationIndex: 28, PredictedVacancy2025: 37.8,
	},
	{
		Name: "전동면", Code: "SJ20", LivingArea: "읍면지역",
		Population: 3800, CardSales: 1.5e9, BikeStations: 1, BRTStations: 0,
		Coordinates: domain.Coordinates{Lat: 36.6420, Lon: 127.2360},
		CompetitionIndex: 0.20, DemandIndex: 0.26, AccessibilityIndex: 0.20, SafetyIndex: 0.46,
		VacancyRate: 37.3, ResidentialVacancy: 24.5, CollectiveVacancy: 50.3, OfficetelVacancy: 37.1,
		MarketActivationIndex: 29, PredictedVacancy2025: 36.5,
	},
}

// Business categories with their factor weight vectors. Each weight vector
// sums to 1.0.
var businessProfiles = []domain.BusinessProfile{
	{ID: "cafe", Name: "카페", Icon: "☕", DemandWeight: 0.35, CompetitionWeight: 0.25, AccessibilityWeight: 0.25, SafetyWeight: 0.15},
	{ID: "restaurant", Name: "음식점", Icon: "🍽️", DemandWeight: 0.40, CompetitionWeight: 0.30, AccessibilityWeight: 0.20, SafetyWeight: 0.10},
	{ID: "convenience", Name: "편의점", Icon: "🏪", DemandWeight: 0.30, CompetitionWeight: 0.20, AccessibilityWeight: 0.30, SafetyWeight: 0.20},
	{ID: "beauty", Name: "미용실", Icon: "💇", DemandWeight: 0.30, CompetitionWeight: 0.30, AccessibilityWeight: 0.20, SafetyWeight: 0.20},
	{ID: "gym", Name: "헬스장", Icon: "🏋️", DemandWeight: 0.35, CompetitionWeight: 0.20, AccessibilityWeight: 0.25, SafetyWeight: 0.20},
	{ID: "pharmacy", Name: "약국", Icon: "💊", DemandWeight: 0.25, CompetitionWeight: 0.15, AccessibilityWeight: 0.30, SafetyWeight: 0.30},
	{ID: "retail", Name: "소매점", Icon: "🛍️", DemandWeight: 0.35, CompetitionWeight: 0.25, AccessibilityWeight: 0.25, SafetyWeight: 0.15},
	{ID: "education", Name: "학원", Icon: "📚", DemandWeight: 0.25, CompetitionWeight: 0.15, AccessibilityWeight: 0.25, SafetyWeight: 0.35},
}
