package repository

import "github.com/jawharapos/pos-api/internal/domain/entity"

// InvoiceRepository is the persistence port for invoices and their sale
// references.
type InvoiceRepository interface {
	// NextInvoiceNumber reserves the next number from the monotonic sequence.
	NextInvoiceNumber() (int64, error)
	Create(invoice *entity.Invoice) error
	// Update replaces customer name, sale references, derived totals and the
	// QR payload; invoice_number and created_at are never touched.
	Update(invoice *entity.Invoice) error
	// Delete removes the invoice and its references. Returns the number of
	// rows removed so callers can distinguish not-found.
	Delete(id string) (int64, error)
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
}
