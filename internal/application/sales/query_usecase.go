package sales

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// SaleQueryUseCase lecturas y borrado de ventas ya registradas.
// El borrado elimina la venta con sus ítems y pagos (cascada en el esquema).
type SaleQueryUseCase struct {
	repo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(repo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{repo: repo}
}

// List lista todas las ventas con sus ítems y pagos.
func (uc *SaleQueryUseCase) List(ctx context.Context) (*dto.SaleListResponse, error) {
	sales, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items}, nil
}

// GetByCode obtiene una venta por su código de negocio.
func (uc *SaleQueryUseCase) GetByCode(ctx context.Context, code string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta por ID; ítems y pagos caen con ella.
func (uc *SaleQueryUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
