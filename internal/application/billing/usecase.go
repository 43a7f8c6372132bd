package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/application/sales"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
	"github.com/jawharapos/pos-api/internal/domain/tax"
	"github.com/jawharapos/pos-api/internal/domain/zatca"
	"github.com/jawharapos/pos-api/pkg/logger"
)

// InvoiceUseCase issues, amends and deletes numbered tax invoices.
//
// An invoice is never stored partially derived: sale references are resolved
// and validated first, then totals and the compliance payload are computed,
// and only then is anything written. An invalid sale reference therefore
// blocks the whole operation.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	invalidator  sales.Invalidator
	log          *logger.Logger
}

// NewInvoiceUseCase builds the use case. invalidator may be nil.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	invalidator sales.Invalidator,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		invalidator:  invalidator,
		log:          log,
	}
}

// resolveSales fetches the referenced sales in request order and rejects the
// request when any id is unknown or duplicated.
func (uc *InvoiceUseCase) resolveSales(ids []string) ([]*entity.Sale, error) {
	if len(ids) == 0 {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, domain.ErrInvalidInput
		}
		seen[id] = struct{}{}
	}
	resolved, err := uc.saleRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(resolved) != len(ids) {
		return nil, domain.ErrInvalidInput
	}
	return resolved, nil
}

// derive computes the invoice totals from resolved sales. Each sale
// contributes quantity × unit selling price; the VAT derivation rounds once
// per field.
func derive(resolved []*entity.Sale) tax.Totals {
	lines := make([]tax.Line, 0, len(resolved))
	for _, s := range resolved {
		lines = append(lines, tax.Line{Quantity: int64(s.Quantity), UnitPrice: s.SellingPrice})
	}
	return tax.Aggregate(lines)
}

// qrPayload encodes the compliance payload for the invoice. issuedAt is the
// invoice creation time, which updates never change.
func (uc *InvoiceUseCase) qrPayload(totals tax.Totals, issuedAt time.Time) (string, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return "", err
	}
	if settings == nil {
		return "", domain.ErrNotFound
	}
	return zatca.Encode(&zatca.Params{
		SellerName: settings.ShopName,
		TRN:        settings.TRN,
		Timestamp:  issuedAt,
		Total:      totals.Total,
		VAT:        totals.VAT,
	})
}

// Create issues a new invoice over the referenced sales.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.ResolvedInvoiceResponse, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, domain.ErrInvalidInput
	}
	resolved, err := uc.resolveSales(in.Sales)
	if err != nil {
		return nil, err
	}
	totals := derive(resolved)

	now := time.Now()
	payload, err := uc.qrPayload(totals, now)
	if err != nil {
		return nil, err
	}

	number, err := uc.invoiceRepo.NextInvoiceNumber()
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: number,
		CustomerName:  customerName,
		SaleIDs:       in.Sales,
		NetAmount:     totals.Net,
		VATAmount:     totals.VAT,
		TotalAmount:   totals.Total,
		QRPayload:     payload,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoiceRepo.Create(invoice); err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("invoice_number", number).
		Int("sales", len(resolved)).
		Str("total", totals.Total.StringFixed(2)).
		Msg("invoice issued")

	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx)
	}
	return toResolvedResponse(invoice, resolved), nil
}

// Update replaces the customer name and sale references of an existing
// invoice and recomputes everything derived. The invoice number and
// creation time are preserved.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.CreateInvoiceRequest) (*dto.ResolvedInvoiceResponse, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	if customerName == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	resolved, err := uc.resolveSales(in.Sales)
	if err != nil {
		return nil, err
	}
	totals := derive(resolved)

	payload, err := uc.qrPayload(totals, invoice.CreatedAt)
	if err != nil {
		return nil, err
	}

	invoice.CustomerName = customerName
	invoice.SaleIDs = in.Sales
	invoice.NetAmount = totals.Net
	invoice.VATAmount = totals.VAT
	invoice.TotalAmount = totals.Total
	invoice.QRPayload = payload
	invoice.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(invoice); err != nil {
		return nil, err
	}

	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx)
	}
	return toResolvedResponse(invoice, resolved), nil
}

// Delete removes an invoice. Deleting an already deleted invoice reports
// not-found rather than succeeding silently.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	rows, err := uc.invoiceRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(ctx)
	}
	return nil
}

// GetByID returns one invoice with its sales resolved for display.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.ResolvedInvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	resolved, err := uc.saleRepo.GetByIDs(invoice.SaleIDs)
	if err != nil {
		return nil, err
	}
	return toResolvedResponse(invoice, resolved), nil
}

// List returns all invoices in list form, newest first.
func (uc *InvoiceUseCase) List() ([]dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, dto.InvoiceResponse{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  inv.CustomerName,
			SaleIDs:       inv.SaleIDs,
			TotalAmount:   inv.TotalAmount,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return out, nil
}

func toResolvedResponse(inv *entity.Invoice, resolved []*entity.Sale) *dto.ResolvedInvoiceResponse {
	return &dto.ResolvedInvoiceResponse{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		CustomerName:   inv.CustomerName,
		Sales:          dto.FromSales(resolved),
		TotalNetAmount: inv.NetAmount,
		TotalVatAmount: inv.VATAmount,
		TotalAmount:    inv.TotalAmount,
		QRCode:         inv.QRPayload,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
}
