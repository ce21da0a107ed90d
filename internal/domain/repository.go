package domain

import "context"

// CatalogRepository defines the interface for catalog access and analysis
// persistence. This follows the Dependency Inversion Principle - domain
// defines the interface, adapters implement it.
type CatalogRepository interface {
	// GetDistricts returns the full district catalog
	GetDistricts(ctx context.Context) ([]District, error)

	// GetBusinessProfiles returns the business profile catalog
	GetBusinessProfiles(ctx context.Context) ([]BusinessProfile, error)

	// GetBusinessProfile returns one profile by id
	GetBusinessProfile(ctx context.Context, id string) (BusinessProfile, error)

	// SaveAnalysisLog persists a recommendation run
	SaveAnalysisLog(ctx context.Context, entry AnalysisLog) error

	// Health checks backing-store connectivity
	Health(ctx context.Context) error
}
