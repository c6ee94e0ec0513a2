package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta identificada por un código de negocio único,
// con sus ítems y pagos. Los ítems no sobreviven a la venta (borrado en cascada).
type Sale struct {
	ID       int64
	Code     string // código único provisto por el caller; da idempotencia al registro
	Date     time.Time
	Shipping *ShippingAddress // nil si la venta no tiene envío
	Items    []SaleItem
	Payments []Payment
}

// SaleItem es la contribución de un producto a una venta.
// UnitPrice se captura al momento de la venta y nunca se actualiza después:
// cambios posteriores al precio del producto no alteran ventas históricas.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// ShippingAddress datos de envío opcionales de una venta.
type ShippingAddress struct {
	PostalCode   string
	Street       string
	Number       int
	Complement   string
	Neighborhood string
	City         string
	State        string
}
