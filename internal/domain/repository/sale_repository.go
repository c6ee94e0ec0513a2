package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus ítems.
// Create y CreateItem se invocan dentro de la transacción del registro de
// venta (ver sales.TxRunner); el resto son lecturas/borrados sueltos.
type SaleRepository interface {
	// Create inserta la venta y asigna ID generado. Código duplicado -> ErrDuplicate.
	Create(ctx context.Context, sale *entity.Sale) error
	// CreateItem inserta un ítem de la venta y asigna su ID generado.
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	// GetByCode carga la venta con ítems y pagos.
	GetByCode(ctx context.Context, code string) (*entity.Sale, error)
	List(ctx context.Context) ([]*entity.Sale, error)
	// Delete elimina la venta; ítems y pagos caen en cascada.
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListBySale(ctx context.Context, saleID int64) ([]entity.Payment, error)
}
