package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/pricing"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

// Invalidator drops cached dashboard aggregates after a sale mutation.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// SaleUseCase records and lists sales.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	invalidator Invalidator
}

// NewSaleUseCase builds the use case. invalidator may be nil.
func NewSaleUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, invalidator Invalidator) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, productRepo: productRepo, invalidator: invalidator}
}

// Record validates and persists one sale. Prices in the request are
// snapshots: they are stored on the sale row so later price changes on the
// product never affect recorded history. For WEIGHT products the total
// weight in grams is derived from the product's per-unit weight.
func (uc *SaleUseCase) Record(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	product, err := uc.productRepo.GetByID(in.Product)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	totals, err := pricing.ComputeLineTotals(in.PurchasePrice, in.SellingPrice, in.Quantity)
	if err != nil {
		return nil, err
	}

	weight := 0
	if product.Unit == entity.UnitWeight {
		weight = in.Quantity * product.UnitWeightGrams
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductUnit:   product.Unit,
		Quantity:      in.Quantity,
		SellingPrice:  in.SellingPrice,
		PurchasePrice: in.PurchasePrice,
		Total:         totals.GrossTotal,
		Profit:        totals.Profit,
		WeightGrams:   weight,
		CreatedAt:     time.Now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}

	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx)
	}

	resp := dto.FromSale(sale)
	return &resp, nil
}

// List returns all sales, newest first, with product data resolved.
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return dto.FromSales(sales), nil
}
