package repository

import "github.com/jawharapos/pos-api/internal/domain/entity"

// ProductRepository is the persistence port for the product catalog.
type ProductRepository interface {
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
