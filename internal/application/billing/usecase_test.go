package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawharapos/pos-api/internal/application/billing"
	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/zatca"
	"github.com/jawharapos/pos-api/pkg/logger"
)

// ─── In-memory fakes ────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error { r.sales[s.ID] = s; return nil }

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.sales[id], nil }

func (r *fakeSaleRepo) GetByIDs(ids []string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, id := range ids {
		if s, ok := r.sales[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List() ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	nextNum  int64
}

func (r *fakeInvoiceRepo) NextInvoiceNumber() (int64, error) { r.nextNum++; return r.nextNum, nil }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	stored, ok := r.invoices[inv.ID]
	if !ok {
		return nil
	}
	// invoice_number and created_at columns are not in the UPDATE list.
	cp := *inv
	cp.InvoiceNumber = stored.InvoiceNumber
	cp.CreatedAt = stored.CreatedAt
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id string) (int64, error) {
	if _, ok := r.invoices[id]; !ok {
		return 0, nil
	}
	delete(r.invoices, id)
	return 1, nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *entity.ShopSettings
}

func (r *fakeSettingsRepo) Get() (*entity.ShopSettings, error)  { return r.settings, nil }
func (r *fakeSettingsRepo) Update(s *entity.ShopSettings) error { r.settings = s; return nil }

// ─── Helpers ────────────────────────────────────────────────────────────────

const (
	testShopName = "Jawhara Poultry Est."
	testTRN      = "310613414700003"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func newSale(id string, quantity int, price string) *entity.Sale {
	q := decimal.NewFromInt(int64(quantity))
	return &entity.Sale{
		ID:           id,
		ProductID:    "prod-" + id,
		ProductName:  "Product " + id,
		ProductUnit:  entity.UnitPiece,
		Quantity:     quantity,
		SellingPrice: money(price),
		Total:        money(price).Mul(q),
		CreatedAt:    time.Now(),
	}
}

func buildUseCase(sales ...*entity.Sale) (*billing.InvoiceUseCase, *fakeInvoiceRepo) {
	saleRepo := &fakeSaleRepo{sales: map[string]*entity.Sale{}}
	for _, s := range sales {
		saleRepo.sales[s.ID] = s
	}
	invoiceRepo := &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}}
	settingsRepo := &fakeSettingsRepo{settings: &entity.ShopSettings{
		ID: 1, ShopName: testShopName, TRN: testTRN, UpdatedAt: time.Now(),
	}}
	return billing.NewInvoiceUseCase(invoiceRepo, saleRepo, settingsRepo, nil, testLogger()), invoiceRepo
}

// ─── Create ─────────────────────────────────────────────────────────────────

// Two units at 28.00 plus one at 52.50: net 108.50, VAT 16.28 (16.275
// rounded half-up), total 124.78.
func TestCreateInvoice_DerivesTotalsFromSales(t *testing.T) {
	uc, _ := buildUseCase(
		newSale("s1", 2, "28.00"),
		newSale("s2", 1, "52.50"),
	)

	out, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Sales:        []string{"s1", "s2"},
		CustomerName: "Abu Khalid",
	})
	require.NoError(t, err)

	assert.True(t, out.TotalNetAmount.Equal(money("108.50")), "net: %s", out.TotalNetAmount)
	assert.True(t, out.TotalVatAmount.Equal(money("16.28")), "vat: %s", out.TotalVatAmount)
	assert.True(t, out.TotalAmount.Equal(money("124.78")), "total: %s", out.TotalAmount)
	assert.Equal(t, int64(1), out.InvoiceNumber)
	assert.Len(t, out.Sales, 2)
	assert.Equal(t, "s1", out.Sales[0].ID, "sale order must follow the request")
}

func TestCreateInvoice_QRPayloadMatchesStoredTotals(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 2, "28.00"), newSale("s2", 1, "52.50"))

	out, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Sales:        []string{"s1", "s2"},
		CustomerName: "Abu Khalid",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.QRCode)

	fields, err := zatca.Decode(out.QRCode)
	require.NoError(t, err)
	assert.Equal(t, testShopName, fields[zatca.TagSellerName])
	assert.Equal(t, testTRN, fields[zatca.TagTRN])
	assert.Equal(t, "124.78", fields[zatca.TagTotal])
	assert.Equal(t, "16.28", fields[zatca.TagVAT])

	ts, err := time.Parse(time.RFC3339, fields[zatca.TagTimestamp])
	require.NoError(t, err)
	assert.WithinDuration(t, out.CreatedAt, ts, time.Second)
}

// A customer name that is empty after trimming blocks the create before any
// sale resolution or number allocation happens.
func TestCreateInvoice_BlankCustomerNameRejected(t *testing.T) {
	uc, invoiceRepo := buildUseCase(newSale("s1", 1, "10.00"))

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
			Sales:        []string{"s1"},
			CustomerName: name,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "name %q", name)
	}
	assert.Empty(t, invoiceRepo.invoices)
	assert.Equal(t, int64(0), invoiceRepo.nextNum)
}

func TestCreateInvoice_CustomerNameTrimmed(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 1, "10.00"))

	out, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Sales:        []string{"s1"},
		CustomerName: "  Abu Khalid  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Abu Khalid", out.CustomerName)
}

func TestCreateInvoice_EmptySalesRejected(t *testing.T) {
	uc, invoiceRepo := buildUseCase()

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: nil, CustomerName: "Abu Khalid"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, invoiceRepo.invoices)
}

// An unknown sale id blocks the whole create: nothing is written and no
// invoice number is burned.
func TestCreateInvoice_UnknownSaleBlocksCreation(t *testing.T) {
	uc, invoiceRepo := buildUseCase(newSale("s1", 1, "10.00"))

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Sales:        []string{"s1", "ghost"},
		CustomerName: "Abu Khalid",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, invoiceRepo.invoices)
	assert.Equal(t, int64(0), invoiceRepo.nextNum)
}

func TestCreateInvoice_DuplicateSaleRejected(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 1, "10.00"))

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		Sales:        []string{"s1", "s1"},
		CustomerName: "Abu Khalid",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_NumbersAreMonotonic(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 1, "10.00"), newSale("s2", 1, "20.00"))

	first, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: []string{"s1"}, CustomerName: "Abu Khalid"})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: []string{"s2"}, CustomerName: "Umm Sara"})
	require.NoError(t, err)

	assert.Greater(t, second.InvoiceNumber, first.InvoiceNumber)
}

// ─── Update ─────────────────────────────────────────────────────────────────

func TestUpdateInvoice_PreservesNumberAndCreatedAt(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 2, "28.00"), newSale("s2", 1, "52.50"))

	created, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: []string{"s1"}, CustomerName: "Abu Khalid"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.CreateInvoiceRequest{
		Sales:        []string{"s1", "s2"},
		CustomerName: "Umm Sara",
	})
	require.NoError(t, err)

	assert.Equal(t, created.InvoiceNumber, updated.InvoiceNumber)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Umm Sara", updated.CustomerName)
	assert.True(t, updated.TotalAmount.Equal(money("124.78")), "totals must be recomputed: %s", updated.TotalAmount)
	assert.NotEqual(t, created.QRCode, updated.QRCode, "payload must follow the new totals")
}

func TestUpdateInvoice_BlankCustomerNameRejected(t *testing.T) {
	uc, invoiceRepo := buildUseCase(newSale("s1", 1, "10.00"))

	created, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: []string{"s1"}, CustomerName: "Abu Khalid"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.CreateInvoiceRequest{
		Sales:        []string{"s1"},
		CustomerName: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "Abu Khalid", invoiceRepo.invoices[created.ID].CustomerName)
}

func TestUpdateInvoice_UnknownInvoice(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 1, "10.00"))

	_, err := uc.Update(context.Background(), "missing", dto.CreateInvoiceRequest{
		Sales:        []string{"s1"},
		CustomerName: "Abu Khalid",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateInvoice_UnknownSaleLeavesInvoiceUntouched(t *testing.T) {
	uc, invoiceRepo := buildUseCase(newSale("s1", 1, "10.00"))

	created, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: []string{"s1"}, CustomerName: "Abu Khalid"})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.CreateInvoiceRequest{
		Sales:        []string{"ghost"},
		CustomerName: "Abu Khalid",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored := invoiceRepo.invoices[created.ID]
	assert.True(t, stored.TotalAmount.Equal(created.TotalAmount))
	assert.Equal(t, []string{"s1"}, stored.SaleIDs)
}

// ─── Delete ─────────────────────────────────────────────────────────────────

func TestDeleteInvoice_SecondDeleteReportsNotFound(t *testing.T) {
	uc, _ := buildUseCase(newSale("s1", 1, "10.00"))

	created, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Sales: []string{"s1"}, CustomerName: "Abu Khalid"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInvoice_NotFound(t *testing.T) {
	uc, _ := buildUseCase()

	_, err := uc.GetByID("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
