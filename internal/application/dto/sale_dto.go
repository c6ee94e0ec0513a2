package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta completa.
// Items no puede ser vacío; Shipping y Payments son opcionales.
type RecordSaleRequest struct {
	Code     string            `json:"code" validate:"required,max=50"`
	Items    []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Shipping *ShippingRequest  `json:"shipping"`
	Payments []PaymentRequest  `json:"payments" validate:"dive"`
}

// SaleItemRequest un producto dentro de la venta, con el precio al momento de vender.
type SaleItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ShippingRequest dirección de envío opcional.
type ShippingRequest struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Number       int    `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state" validate:"max=2"`
}

// PaymentRequest un pago de la venta.
type PaymentRequest struct {
	Method string          `json:"method" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleResponse venta registrada con sus ítems y pagos.
type SaleResponse struct {
	ID       int64              `json:"id"`
	Code     string             `json:"code"`
	Date     time.Time          `json:"date"`
	Shipping *ShippingRequest   `json:"shipping,omitempty"`
	Items    []SaleItemResponse `json:"items"`
	Payments []PaymentResponse  `json:"payments,omitempty"`
}

// SaleItemResponse ítem persistido de una venta.
type SaleItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PaymentResponse pago persistido de una venta.
type PaymentResponse struct {
	ID     int64           `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
