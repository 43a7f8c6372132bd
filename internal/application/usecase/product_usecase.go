package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

// ProductUseCase catalog CRUD.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// validate enforces the tagged unit variant: WEIGHT products carry a
// positive unit weight, PIECE products carry none.
func validate(in dto.CreateProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SellingPrice.IsNegative() || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	unit := entity.Unit(in.Unit)
	if !unit.Valid() {
		return domain.ErrInvalidInput
	}
	if unit == entity.UnitWeight && in.UnitWeightGrams <= 0 {
		return domain.ErrInvalidInput
	}
	if unit == entity.UnitPiece && in.UnitWeightGrams != 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create adds a product to the catalog.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		PurchasePrice:   in.PurchasePrice,
		SellingPrice:    in.SellingPrice,
		Stock:           in.Stock,
		Unit:            entity.Unit(in.Unit),
		UnitWeightGrams: in.UnitWeightGrams,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Update replaces a product's fields, keeping its id.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = strings.TrimSpace(in.Name)
	p.PurchasePrice = in.PurchasePrice
	p.SellingPrice = in.SellingPrice
	p.Stock = in.Stock
	p.Unit = entity.Unit(in.Unit)
	p.UnitWeightGrams = in.UnitWeightGrams
	p.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Delete removes a product.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// List returns the full catalog.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		PurchasePrice:   p.PurchasePrice,
		SellingPrice:    p.SellingPrice,
		Stock:           p.Stock,
		Unit:            string(p.Unit),
		UnitWeightGrams: p.UnitWeightGrams,
		CreatedAt:       p.CreatedAt,
	}
}
