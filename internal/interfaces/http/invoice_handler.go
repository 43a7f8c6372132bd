package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jawharapos/pos-api/internal/application/billing"
	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain"
)

// InvoiceHandler handles invoice issuing and receipt rendering (protected).
type InvoiceHandler struct {
	invoiceUC *billing.InvoiceUseCase
	receiptUC *billing.ReceiptUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(invoiceUC *billing.InvoiceUseCase, receiptUC *billing.ReceiptUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, receiptUC: receiptUC}
}

// List godoc
// @Summary      List invoices
// @Tags         invoice
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /invoice/getAll [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.invoiceUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("", out))
}

// GetByID godoc
// @Summary      Get invoice with resolved sales
// @Tags         invoice
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Invoice id"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/getById/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.invoiceUC.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "invoice not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Issue invoice
// @Tags         invoice
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Sale references"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /invoice/create [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid body"))
	}
	out, err := h.invoiceUC.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "sales must be a non-empty list of known sale ids"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("invoice created", out))
}

// Update godoc
// @Summary      Amend invoice
// @Tags         invoice
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Invoice id"
// @Param        body  body  dto.CreateInvoiceRequest  true  "Sale references"
// @Success      200   {object}  dto.APIResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /invoice/update/{id} [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid body"))
	}
	out, err := h.invoiceUC.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "invoice not found"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "sales must be a non-empty list of known sale ids"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("invoice updated", out))
}

// Delete godoc
// @Summary      Delete invoice
// @Tags         invoice
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Invoice id"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/delete/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.invoiceUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "invoice not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("invoice deleted", nil))
}

// Receipt godoc
// @Summary      Render receipt PDF
// @Tags         invoice
// @Security     Bearer
// @Produce      application/pdf
// @Param        id      path   string  true   "Invoice id"
// @Param        intent  query  string  false  "preview (A4) or print (80mm)"  default(preview)
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /invoice/receipt/{id} [get]
func (h *InvoiceHandler) Receipt(c *fiber.Ctx) error {
	intent := billing.ReceiptIntent(c.Query("intent", string(billing.IntentPreview)))
	pdfBytes, err := h.receiptUC.Render(c.Params("id"), intent)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "invoice not found"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "intent must be preview or print"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="receipt-%s.pdf"`, c.Params("id")))
	return c.Send(pdfBytes)
}
