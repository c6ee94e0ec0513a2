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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
// Los inserts se usan dentro de la transacción del registro de venta.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta y asigna ID y fecha generados.
// Código duplicado -> ErrDuplicate (constraint única sobre code).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (code, date, ship_postal_code, ship_street, ship_number,
		                   ship_complement, ship_neighborhood, ship_city, ship_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, date`
	var args [7]any
	if s := sale.Shipping; s != nil {
		args = [7]any{s.PostalCode, s.Street, s.Number, s.Complement, s.Neighborhood, s.City, s.State}
	}
	err := r.q.QueryRow(ctx, query,
		sale.Code, sale.Date,
		args[0], args[1], args[2], args[3], args[4], args[5], args[6],
	).Scan(&sale.ID, &sale.Date)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem inserta un ítem de venta y asigna el ID generado.
// Producto inexistente -> ErrNotFound (violación de FK).
func (r *SaleRepo) CreateItem(ctx context.Context, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.SaleID, item.ProductID, item.Quantity, item.UnitPrice,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByCode carga una venta por código con sus ítems y pagos.
// Retorna nil sin error si no existe.
func (r *SaleRepo) GetByCode(ctx context.Context, code string) (*entity.Sale, error) {
	query := `
		SELECT id, code, date, ship_postal_code, ship_street, ship_number,
		       ship_complement, ship_neighborhood, ship_city, ship_state
		FROM sales WHERE code = $1`
	sale, err := scanSale(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadChildren(ctx, map[int64]*entity.Sale{sale.ID: sale}); err != nil {
		return nil, err
	}
	return sale, nil
}

// List carga todas las ventas con ítems y pagos en tres consultas (sin N+1).
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, code, date, ship_postal_code, ship_street, ship_number,
		       ship_complement, ship_neighborhood, ship_city, ship_state
		FROM sales ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	byID := make(map[int64]*entity.Sale)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
		byID[sale.ID] = sale
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.loadChildren(ctx, byID); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete elimina la venta; ítems y pagos caen por cascada del esquema.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// loadChildren anexa ítems y pagos a las ventas indicadas (dos consultas).
func (r *SaleRepo) loadChildren(ctx context.Context, byID map[int64]*entity.Sale) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	itemRows, err := r.q.Query(ctx, `
		SELECT id, sale_id, product_id, quantity, unit_price
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var item entity.SaleItem
		if err := itemRows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		sale := byID[item.SaleID]
		sale.Items = append(sale.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return err
	}

	payRows, err := r.q.Query(ctx, `
		SELECT id, sale_id, method, amount
		FROM payments WHERE sale_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	defer payRows.Close()
	for payRows.Next() {
		var p entity.Payment
		if err := payRows.Scan(&p.ID, &p.SaleID, &p.Method, &p.Amount); err != nil {
			return fmt.Errorf("scan payment: %w", err)
		}
		sale := byID[p.SaleID]
		sale.Payments = append(sale.Payments, p)
	}
	return payRows.Err()
}

// scanSale escanea una fila de sales reconstruyendo el envío opcional.
func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var postalCode, street, complement, neighborhood, city, state *string
	var number *int
	err := row.Scan(&s.ID, &s.Code, &s.Date,
		&postalCode, &street, &number, &complement, &neighborhood, &city, &state)
	if err != nil {
		return nil, err
	}
	if postalCode != nil {
		s.Shipping = &entity.ShippingAddress{
			PostalCode:   *postalCode,
			Street:       deref(street),
			Number:       derefInt(number),
			Complement:   deref(complement),
			Neighborhood: deref(neighborhood),
			City:         deref(city),
			State:        deref(state),
		}
	}
	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
