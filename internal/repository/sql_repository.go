package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog-query/internal/models"
)

type SQLRepository struct {
	db *gorm.DB
}

func NewSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// ProductsByCategory filtra por igualdad exacta sobre "Category"
func (r *SQLRepository) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	products := make([]models.Product, 0)
	err := r.withConnection(ctx, func(conn *gorm.DB) error {
		return conn.
			Where(clause.Eq{Column: clause.Column{Name: "Category"}, Value: category}).
			Find(&products).Error
	})
	if err != nil {
		return nil, fmt.Errorf("fetch products by category: %w", err)
	}
	return products, nil
}

// SuppliersByCategory filtra por subcadena sobre "ProductCategoriesOffered"
func (r *SQLRepository) SuppliersByCategory(ctx context.Context, category string) ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	suppliers := make([]models.Supplier, 0)
	err := r.withConnection(ctx, func(conn *gorm.DB) error {
		return conn.
			Where(r.containsExpr("ProductCategoriesOffered", category)).
			Find(&suppliers).Error
	})
	if err != nil {
		return nil, fmt.Errorf("fetch suppliers by category: %w", err)
	}
	return suppliers, nil
}

// withConnection toma una conexión dedicada del pool y la devuelve al salir, haya error o no.
func (r *SQLRepository) withConnection(ctx context.Context, fn func(conn *gorm.DB) error) error {
	return r.db.WithContext(ctx).Connection(fn)
}

// containsExpr arma un "contains" sensible a mayúsculas. LIKE no sirve porque en
// sqlite ignora mayúsculas y además interpreta % y _ dentro del valor.
func (r *SQLRepository) containsExpr(column, value string) clause.Expression {
	fn := "strpos"
	if r.db.Dialector.Name() == "sqlite" {
		fn = "instr"
	}
	return clause.Expr{
		SQL:  fn + "(?, ?) > 0",
		Vars: []interface{}{clause.Column{Name: column}, value},
	}
}
