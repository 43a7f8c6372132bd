package repository

import "github.com/jawharapos/pos-api/internal/domain/entity"

// SaleRepository is the persistence port for recorded sales.
// Sales are append-only; there is no update or delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// GetByIDs returns the sales for the given ids, resolved with product
	// name and unit, in the order the ids were passed.
	GetByIDs(ids []string) ([]*entity.Sale, error)
	// List returns all sales resolved with product data, newest first.
	List() ([]*entity.Sale, error)
}
