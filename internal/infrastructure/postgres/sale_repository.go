package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements SaleRepository over PostgreSQL. Product name and unit
// are resolved with a join; they are never stored on the sale row.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the persistence adapter for sales.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `
	s.id, s.product_id, p.name, p.unit, s.quantity,
	s.selling_price, s.purchase_price, s.total, s.profit, s.weight_grams, s.created_at`

func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, selling_price, purchase_price, total, profit, weight_grams, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Quantity, sale.SellingPrice, sale.PurchasePrice,
		sale.Total, sale.Profit, sale.WeightGrams, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s JOIN products p ON p.id = s.product_id
		WHERE s.id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// GetByIDs resolves the given sale ids in the order they were passed, using
// unnest WITH ORDINALITY. Unknown ids are simply absent from the result;
// callers compare lengths to detect them.
func (r *SaleRepo) GetByIDs(ids []string) ([]*entity.Sale, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + saleColumns + `
		FROM unnest($1::text[]) WITH ORDINALITY AS want(id, ord)
		JOIN sales s ON s.id = want.id
		JOIN products p ON p.id = s.product_id
		ORDER BY want.ord`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get sales by ids: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales s JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return collectSales(rows)
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var unit string
	err := row.Scan(&s.ID, &s.ProductID, &s.ProductName, &unit, &s.Quantity,
		&s.SellingPrice, &s.PurchasePrice, &s.Total, &s.Profit, &s.WeightGrams, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.ProductUnit = entity.Unit(unit)
	return &s, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
