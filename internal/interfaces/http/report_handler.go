package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// ReportHandler totalizadores para la pantalla de inicio.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TotalSalesValue godoc
// @Summary      Valor total vendido
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TotalValueResponse
// @Router       /api/sales/total [get]
func (h *ReportHandler) TotalSalesValue(c *fiber.Ctx) error {
	out, err := h.uc.TotalSalesValue(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// TotalProducts godoc
// @Summary      Total de productos registrados
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TotalCountResponse
// @Router       /api/products/total [get]
func (h *ReportHandler) TotalProducts(c *fiber.Ctx) error {
	out, err := h.uc.TotalProducts(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// TotalStock godoc
// @Summary      Stock disponible global (puede ser negativo)
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.TotalCountResponse
// @Router       /api/stock/total [get]
func (h *ReportHandler) TotalStock(c *fiber.Ctx) error {
	out, err := h.uc.TotalStock(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
