package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para saldos y totalizadores.
// Cada métrica es una sola consulta agregada; COALESCE garantiza cero con
// tablas vacías en lugar de NULL o error.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ListProductsWithBalance lista todos los productos con su saldo:
// saldo = Σ entradas de stock − Σ cantidades vendidas, por producto.
// Una sola pasada con subconsultas agrupadas, nada de N+1 por producto.
func (r *ReportRepo) ListProductsWithBalance(ctx context.Context) ([]repository.ProductBalance, error) {
	const query = `
	SELECT
	    p.id, p.name, p.description, p.price,
	    COALESCE(se.total, 0) - COALESCE(si.total, 0) AS balance
	FROM products p
	LEFT JOIN (
	    SELECT product_id, SUM(quantity) AS total
	    FROM stock_entries GROUP BY product_id
	) se ON se.product_id = p.id
	LEFT JOIN (
	    SELECT product_id, SUM(quantity) AS total
	    FROM sale_items GROUP BY product_id
	) si ON si.product_id = p.id
	ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ListProductsWithBalance: %w", err)
	}
	defer rows.Close()

	var results []repository.ProductBalance
	for rows.Next() {
		var row repository.ProductBalance
		if err := rows.Scan(&row.ID, &row.Name, &row.Description, &row.Price, &row.Balance); err != nil {
			return nil, fmt.Errorf("report.ListProductsWithBalance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TotalStockAvailable stock disponible global: Σ entradas − Σ vendido.
// Puede ser negativo (sobreventa); se reporta tal cual.
func (r *ReportRepo) TotalStockAvailable(ctx context.Context) (int64, error) {
	const query = `
	SELECT
	    COALESCE((SELECT SUM(quantity) FROM stock_entries), 0)
	  - COALESCE((SELECT SUM(quantity) FROM sale_items), 0)`

	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("report.TotalStockAvailable: %w", err)
	}
	return total, nil
}

// TotalSalesValue valor total vendido: Σ (cantidad × precio capturado).
func (r *ReportRepo) TotalSalesValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(quantity * unit_price), 0) FROM sale_items`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.TotalSalesValue: %w", err)
	}
	return total, nil
}

// CountProducts cantidad de productos registrados.
func (r *ReportRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("report.CountProducts: %w", err)
	}
	return total, nil
}
