package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jawharapos/pos-api/internal/application/analytics"
	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/application/sales"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/pricing"
)

// SaleHandler handles sale recording and the dashboard aggregates
// (protected).
type SaleHandler struct {
	saleUC      *sales.SaleUseCase
	dashboardUC *analytics.DashboardUseCase
}

// NewSaleHandler builds the handler.
func NewSaleHandler(saleUC *sales.SaleUseCase, dashboardUC *analytics.DashboardUseCase) *SaleHandler {
	return &SaleHandler{saleUC: saleUC, dashboardUC: dashboardUC}
}

// List godoc
// @Summary      List sales
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /sale/getAll [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.saleUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("", out))
}

// Create godoc
// @Summary      Record sale
// @Tags         sale
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Sale data"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /sale/create [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "invalid body"))
	}
	out, err := h.saleUC.Record(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "product not found"))
		case errors.Is(err, pricing.ErrQuantityTooLow), errors.Is(err, pricing.ErrNegativePrice):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("sale recorded", out))
}

// Stats godoc
// @Summary      All-time sale aggregates
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /sale/stats [get]
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	out, err := h.dashboardUC.Stats(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("", out))
}

// DailyRevenue godoc
// @Summary      Today vs yesterday revenue
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /sale/daily-revenue [get]
func (h *SaleHandler) DailyRevenue(c *fiber.Ctx) error {
	out, err := h.dashboardUC.DailyRevenue(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("", out))
}

// MonthlyRevenueSales godoc
// @Summary      Monthly revenue/sales series for the current year
// @Tags         sale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /sale/monthly-revenue-sales [get]
func (h *SaleHandler) MonthlyRevenueSales(c *fiber.Ctx) error {
	out, err := h.dashboardUC.MonthlyRevenueSales(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", err.Error()))
	}
	return c.JSON(dto.OK("", out))
}
