package repository

import (
	"context"
	"time"

	"catalog-query/internal/models"
)

//go:generate mockgen -destination=mock_repository.go -package=repository . CatalogRepository

const queryTimeout = 10 * time.Second

// CatalogRepository expone las dos lecturas filtradas que usa el pipeline de consultas.
// Cada llamada abre y libera su propia sesión.
type CatalogRepository interface {
	// ProductsByCategory devuelve los productos cuya Category es exactamente igual a category.
	ProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	// SuppliersByCategory devuelve los proveedores cuyo ProductCategoriesOffered contiene category
	// (comparación sensible a mayúsculas).
	SuppliersByCategory(ctx context.Context, category string) ([]models.Supplier, error)
}
