package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
// El saldo disponible no vive aquí: se calcula como entradas de stock menos
// cantidades vendidas (ver repository.ReportRepository).
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta vigente
}
