package dto

import "github.com/jawharapos/pos-api/internal/domain/entity"

// FromSale maps a resolved sale to its wire form.
func FromSale(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID: s.ID,
		Product: SaleProductRef{
			ID:   s.ProductID,
			Name: s.ProductName,
			Unit: string(s.ProductUnit),
		},
		Quantity:     s.Quantity,
		SellingPrice: s.SellingPrice,
		Total:        s.Total,
		Profit:       s.Profit,
		Weight:       s.WeightGrams,
		CreatedAt:    s.CreatedAt,
	}
}

// FromSales maps a slice of resolved sales, preserving order.
func FromSales(sales []*entity.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s))
	}
	return out
}
