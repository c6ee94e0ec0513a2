package sales

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner abstrae la transacción del registro de venta: ejecuta fn con
// repositorios atados a la misma transacción y hace Commit si fn retorna nil,
// Rollback en caso contrario. Todo o nada: la venta, sus ítems y sus pagos se
// escriben juntos o no se escribe ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
