package entity

import "github.com/shopspring/decimal"

// Payment es un pago asociado a una venta. Una venta puede tener varios pagos
// (ej. parte en efectivo, parte con tarjeta). Se elimina junto con la venta.
type Payment struct {
	ID     int64
	SaleID int64
	Method string // efectivo, tarjeta, transferencia...
	Amount decimal.Decimal
}
