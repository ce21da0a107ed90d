package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sejongbiz/backend/internal/domain"
)

// PostgresRepository implements domain.CatalogRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetDistricts loads the district catalog from PostgreSQL
func (r *PostgresRepository) GetDistricts(ctx context.Context) ([]domain.District, error) {
	query := `
		SELECT name, code, living_area, population, card_sales,
			   bike_stations, brt_stations, lat, lon,
			   competition_index, demand_index, accessibility_index, safety_index,
			   vacancy_rate, residential_vacancy, collective_vacancy, officetel_vacancy,
			   market_activation_index, predicted_vacancy_2025
		FROM districts
		ORDER BY code
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query districts: %w", err)
	}
	defer rows.Close()

	var results []domain.District
	for rows.Next() {
		var d domain.District
		err := rows.Scan(
			&d.Name, &d.Code, &d.LivingArea, &d.Population, &d.CardSales,
			&d.BikeStations, &d.BRTStations, &d.Coordinates.Lat, &d.Coordinates.Lon,
			&d.CompetitionIndex, &d.DemandIndex, &d.AccessibilityIndex, &d.SafetyIndex,
			&d.VacancyRate, &d.ResidentialVacancy, &d.CollectiveVacancy, &d.OfficetelVacancy,
			&d.MarketActivationIndex, &d.PredictedVacancy2025,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan district row: %w", err)
		}
		results = append(results, d)
	}

	if err := validateDistricts(results); err != nil {
		return nil, err
	}

	return results, nil
}

// GetBusinessProfiles loads the business profile catalog from PostgreSQL
func (r *PostgresRepository) GetBusinessProfiles(ctx context.Context) ([]domain.BusinessProfile, error) {
	query := `
		SELECT id, name, icon,
			   demand_weight, competition_weight, accessibility_weight, safety_weight
		FROM business_profiles
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query business profiles: %w", err)
	}
	defer rows.Close()

	var results []domain.BusinessProfile
	for rows.Next() {
		var p domain.BusinessProfile
		err := rows.Scan(
			&p.ID, &p.Name, &p.Icon,
			&p.DemandWeight, &p.CompetitionWeight, &p.AccessibilityWeight, &p.SafetyWeight,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan business profile row: %w", err)
		}
		results = append(results, p)
	}

	return results, nil
}

// GetBusinessProfile loads one profile by id
func (r *PostgresRepository) GetBusinessProfile(ctx context.Context, id string) (domain.BusinessProfile, error) {
	query := `
		SELECT id, name, icon,
			   demand_weight, competition_weight, accessibility_weight, safety_weight
		FROM business_profiles
		WHERE id = $1
	`

	var p domain.BusinessProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Icon,
		&p.DemandWeight, &p.CompetitionWeight, &p.AccessibilityWeight, &p.SafetyWeight,
	)
	if err != nil {
		return domain.BusinessProfile{}, fmt.Errorf("postgres: failed to load business profile %q: %w", id, err)
	}

	return p, nil
}

// SaveAnalysisLog persists a recommendation run to PostgreSQL
func (r *PostgresRepository) SaveAnalysisLog(ctx context.Context, entry domain.AnalysisLog) error {
	query := `
		INSERT INTO analysis_logs (
			business_id, business_name, top_district, top_score, district_count, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.BusinessID, entry.BusinessName, entry.TopDistrict,
		entry.TopScore, entry.DistrictN, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save analysis log: %w", err)
	}

	return nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// validateDistricts fails fast on out-of-range catalog values instead of
// letting them silently distort scores. Normalized indices must be in [0,1],
// percent scales in [0,100].
func validateDistricts(districts []domain.District) error {
	for _, d := range districts {
		for _, idx := range []struct {
			name  string
			value float64
		}{
			{"competition_index", d.CompetitionIndex},
			{"demand_index", d.DemandIndex},
			{"accessibility_index", d.AccessibilityIndex},
			{"safety_index", d.SafetyIndex},
		} {
			if idx.value < 0 || idx.value > 1 {
				return fmt.Errorf("postgres: district %q: %s = %v out of range [0,1]", d.Name, idx.name, idx.value)
			}
		}
		for _, pct := range []struct {
			name  string
			value float64
		}{
			{"vacancy_rate", d.VacancyRate},
			{"market_activation_index", d.MarketActivationIndex},
		} {
			if pct.value < 0 || pct.value > 100 {
				return fmt.Errorf("postgres: district %q: %s = %v out of range [0,100]", d.Name, pct.name, pct.value)
			}
		}
	}
	return nil
}
