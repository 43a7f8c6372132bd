package billing

import (
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

// ReceiptUseCase projects a stored invoice into a printable receipt.
type ReceiptUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	generator    ReceiptGenerator
}

// NewReceiptUseCase builds the use case.
func NewReceiptUseCase(
	invoiceRepo repository.InvoiceRepository,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		invoiceRepo:  invoiceRepo,
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// Render loads the invoice, its sales and the shop settings, and renders
// the receipt PDF. Monetary values and the QR payload come straight from
// storage; nothing is recomputed here.
func (uc *ReceiptUseCase) Render(invoiceID string, intent ReceiptIntent) ([]byte, error) {
	if !intent.Valid() {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
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
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.Generate(buildReceiptData(invoice, resolved, settings), intent)
}

// buildReceiptData assembles the renderer input. The order reference is the
// last 4 characters of the first sale id, the short code handed to the
// customer at the counter.
func buildReceiptData(inv *entity.Invoice, resolved []*entity.Sale, settings *entity.ShopSettings) ReceiptData {
	lines := make([]ReceiptLine, 0, len(resolved))
	for _, s := range resolved {
		lines = append(lines, ReceiptLine{
			Name:        s.ProductName,
			Quantity:    s.Quantity,
			UnitPrice:   s.SellingPrice,
			Total:       s.Total,
			WeightGrams: s.WeightGrams,
		})
	}

	orderRef := ""
	if len(resolved) > 0 {
		id := resolved[0].ID
		if len(id) >= 4 {
			orderRef = id[len(id)-4:]
		} else {
			orderRef = id
		}
	}

	return ReceiptData{
		ShopName:      settings.ShopName,
		TRN:           settings.TRN,
		Address:       settings.Address,
		Phone:         settings.Phone,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		OrderRef:      orderRef,
		IssuedAt:      inv.CreatedAt,
		Lines:         lines,
		Net:           inv.NetAmount,
		VAT:           inv.VATAmount,
		Total:         inv.TotalAmount,
		QRPayload:     inv.QRPayload,
	}
}
