package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductBalance es un producto con su saldo disponible calculado.
type ProductBalance struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Balance     int64 // entradas - vendido; puede ser negativo
}

// ReportRepository consultas de solo lectura para saldos y totalizadores.
// Todas las agregaciones se resuelven en una sola consulta (sin N+1) y
// toleran tablas vacías devolviendo cero.
type ReportRepository interface {
	ListProductsWithBalance(ctx context.Context) ([]ProductBalance, error)
	TotalStockAvailable(ctx context.Context) (int64, error)
	TotalSalesValue(ctx context.Context) (decimal.Decimal, error)
	CountProducts(ctx context.Context) (int64, error)
}
