package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL. Works with a
// pool or a tx (Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, purchase_price, selling_price, stock, unit, unit_weight_grams, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.PurchasePrice, product.SellingPrice,
		product.Stock, string(product.Unit), product.UnitWeightGrams,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, purchase_price = $3, selling_price = $4, stock = $5, unit = $6, unit_weight_grams = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.PurchasePrice, product.SellingPrice,
		product.Stock, string(product.Unit), product.UnitWeightGrams, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, purchase_price, selling_price, stock, unit, unit_weight_grams, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	var unit string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.PurchasePrice, &p.SellingPrice, &p.Stock,
		&unit, &p.UnitWeightGrams, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Unit = entity.Unit(unit)
	return &p, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, purchase_price, selling_price, stock, unit, unit_weight_grams, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var unit string
		if err := rows.Scan(&p.ID, &p.Name, &p.PurchasePrice, &p.SellingPrice, &p.Stock,
			&unit, &p.UnitWeightGrams, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Unit = entity.Unit(unit)
		list = append(list, &p)
	}
	return list, rows.Err()
}
