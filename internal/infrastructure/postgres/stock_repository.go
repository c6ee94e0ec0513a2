package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de entradas de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste una entrada de stock y asigna el ID generado.
// Producto inexistente -> ErrNotFound (violación de FK).
func (r *StockRepo) Create(ctx context.Context, entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (product_id, quantity, entry_date, invoice_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		entry.ProductID, entry.Quantity, entry.EntryDate, entry.InvoiceNumber,
	).Scan(&entry.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID. Retorna nil sin error si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id int64) (*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, quantity, entry_date, invoice_number
		FROM stock_entries WHERE id = $1`
	var e entity.StockEntry
	err := r.q.QueryRow(ctx, query, id).
		Scan(&e.ID, &e.ProductID, &e.Quantity, &e.EntryDate, &e.InvoiceNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// List lista todas las entradas de stock.
func (r *StockRepo) List(ctx context.Context) ([]*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, quantity, entry_date, invoice_number
		FROM stock_entries ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.EntryDate, &e.InvoiceNumber); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos de la entrada (salvo el ID).
func (r *StockRepo) Update(ctx context.Context, entry *entity.StockEntry) error {
	query := `
		UPDATE stock_entries
		SET product_id = $2, quantity = $3, entry_date = $4, invoice_number = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.Quantity, entry.EntryDate, entry.InvoiceNumber,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update stock entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una entrada de stock por ID.
func (r *StockRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
