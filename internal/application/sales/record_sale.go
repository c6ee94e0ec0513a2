package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// RecordSaleUseCase registra una venta completa (venta + ítems + pagos) de
// forma transaccional con Commit/Rollback.
//
// La unicidad del código da idempotencia al caller: si reintenta tras un
// fallo confirmado con el mismo código, no puede duplicar la venta.
type RecordSaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Record valida la entrada, verifica que los productos existan y escribe la
// venta con sus ítems y pagos dentro de una transacción. Si cualquier insert
// falla (código duplicado incluido) no queda ningún registro parcial.
func (uc *RecordSaleUseCase) Record(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if err := validateRecordSale(in); err != nil {
		return nil, err
	}

	// Verificar que cada producto referenciado exista antes de abrir la tx.
	seen := make(map[int64]bool, len(in.Items))
	for _, item := range in.Items {
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, item.ProductID)
		}
	}

	sale := &entity.Sale{
		Code: in.Code,
		Date: time.Now(),
	}
	if in.Shipping != nil {
		sale.Shipping = &entity.ShippingAddress{
			PostalCode:   in.Shipping.PostalCode,
			Street:       in.Shipping.Street,
			Number:       in.Shipping.Number,
			Complement:   in.Shipping.Complement,
			Neighborhood: in.Shipping.Neighborhood,
			City:         in.Shipping.City,
			State:        in.Shipping.State,
		}
	}

	// Transacción: Commit si todo ok, Rollback si algo falla (TxRunner lo garantiza).
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for i := range in.Items {
			item := &entity.SaleItem{
				SaleID:    sale.ID,
				ProductID: in.Items[i].ProductID,
				Quantity:  in.Items[i].Quantity,
				UnitPrice: in.Items[i].UnitPrice,
			}
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
			sale.Items = append(sale.Items, *item)
		}
		for i := range in.Payments {
			payment := &entity.Payment{
				SaleID: sale.ID,
				Method: in.Payments[i].Method,
				Amount: in.Payments[i].Amount,
			}
			if err := paymentRepo.Create(ctx, payment); err != nil {
				return err
			}
			sale.Payments = append(sale.Payments, *payment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// validateRecordSale aplica las reglas de entrada antes de intentar escribir:
// código requerido, al menos un ítem, cantidades positivas, precios no
// negativos y pagos bien formados.
func validateRecordSale(in dto.RecordSaleRequest) error {
	if in.Code == "" {
		return fmt.Errorf("%w: code es requerido", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: la venta debe tener al menos un ítem", domain.ErrInvalidInput)
	}
	for i, item := range in.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: items[%d].product_id es requerido", domain.ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity debe ser mayor que cero", domain.ErrInvalidInput, i)
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: items[%d].unit_price no puede ser negativo", domain.ErrInvalidInput, i)
		}
	}
	for i, p := range in.Payments {
		if p.Method == "" {
			return fmt.Errorf("%w: payments[%d].method es requerido", domain.ErrInvalidInput, i)
		}
		if !p.Amount.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: payments[%d].amount debe ser mayor que cero", domain.ErrInvalidInput, i)
		}
	}
	return nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:   s.ID,
		Code: s.Code,
		Date: s.Date,
	}
	if s.Shipping != nil {
		resp.Shipping = &dto.ShippingRequest{
			PostalCode:   s.Shipping.PostalCode,
			Street:       s.Shipping.Street,
			Number:       s.Shipping.Number,
			Complement:   s.Shipping.Complement,
			Neighborhood: s.Shipping.Neighborhood,
			City:         s.Shipping.City,
			State:        s.Shipping.State,
		}
	}
	resp.Items = make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	for _, p := range s.Payments {
		resp.Payments = append(resp.Payments, dto.PaymentResponse{
			ID:     p.ID,
			Method: p.Method,
			Amount: p.Amount,
		})
	}
	return resp
}
