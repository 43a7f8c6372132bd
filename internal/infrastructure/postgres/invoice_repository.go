package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository over PostgreSQL. An invoice spans
// two tables, invoices and the ordered invoice_sales references, so writes
// run in a transaction.
type InvoiceRepo struct {
	db DB
}

// NewInvoiceRepository builds the persistence adapter for invoices.
func NewInvoiceRepository(db DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// NextInvoiceNumber reserves the next value of the invoice number sequence.
// Numbers are monotonic; a reservation burned by a failed create leaves a
// gap, which is acceptable.
func (r *InvoiceRepo) NextInvoiceNumber() (int64, error) {
	var n int64
	err := r.db.QueryRow(context.Background(), `SELECT nextval('invoice_number_seq')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}

func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO invoices (id, invoice_number, customer_name, net_amount, vat_amount, total_amount, qr_payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.Exec(ctx, query,
		invoice.ID, invoice.InvoiceNumber, invoice.CustomerName,
		invoice.NetAmount, invoice.VATAmount, invoice.TotalAmount,
		invoice.QRPayload, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	if err := insertSaleRefs(ctx, tx, invoice.ID, invoice.SaleIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Update rewrites the mutable columns and replaces the sale references.
// invoice_number and created_at are deliberately not in the UPDATE list.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE invoices SET customer_name = $2, net_amount = $3, vat_amount = $4, total_amount = $5, qr_payload = $6, updated_at = $7
		WHERE id = $1`
	_, err = tx.Exec(ctx, query,
		invoice.ID, invoice.CustomerName,
		invoice.NetAmount, invoice.VATAmount, invoice.TotalAmount,
		invoice.QRPayload, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_sales WHERE invoice_id = $1`, invoice.ID); err != nil {
		return fmt.Errorf("clear invoice sales: %w", err)
	}
	if err := insertSaleRefs(ctx, tx, invoice.ID, invoice.SaleIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete removes the invoice; references go with it via ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) (int64, error) {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.invoice_number, i.customer_name, i.net_amount, i.vat_amount, i.total_amount, i.qr_payload, i.created_at, i.updated_at,
			COALESCE(array_agg(isl.sale_id ORDER BY isl.position) FILTER (WHERE isl.sale_id IS NOT NULL), '{}')
		FROM invoices i
		LEFT JOIN invoice_sales isl ON isl.invoice_id = i.id
		WHERE i.id = $1
		GROUP BY i.id`
	inv, err := scanInvoice(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	query := `
		SELECT i.id, i.invoice_number, i.customer_name, i.net_amount, i.vat_amount, i.total_amount, i.qr_payload, i.created_at, i.updated_at,
			COALESCE(array_agg(isl.sale_id ORDER BY isl.position) FILTER (WHERE isl.sale_id IS NOT NULL), '{}')
		FROM invoices i
		LEFT JOIN invoice_sales isl ON isl.invoice_id = i.id
		GROUP BY i.id
		ORDER BY i.invoice_number DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func insertSaleRefs(ctx context.Context, tx pgx.Tx, invoiceID string, saleIDs []string) error {
	for i, saleID := range saleIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO invoice_sales (invoice_id, sale_id, position) VALUES ($1, $2, $3)`,
			invoiceID, saleID, i,
		)
		if err != nil {
			return fmt.Errorf("insert invoice sale ref: %w", err)
		}
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerName,
		&inv.NetAmount, &inv.VATAmount, &inv.TotalAmount, &inv.QRPayload,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.SaleIDs)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
