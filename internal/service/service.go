package service

import (
	"github.com/sejongbiz/backend/internal/domain"
)

// CatalogRepository is re-exported from domain for convenience
type CatalogRepository = domain.CatalogRepository
