package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
// El listado incluye el saldo disponible, calculado por ReportRepository en
// una sola consulta agregada.
type ProductUseCase struct {
	repo       repository.ProductRepository
	reportRepo repository.ReportRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, reportRepo repository.ReportRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, reportRepo: reportRepo}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista todos los productos con su saldo disponible.
// Productos sin movimientos aparecen con saldo 0.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	rows, err := uc.reportRepo.ListProductsWithBalance(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductWithBalanceResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ProductWithBalanceResponse{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			Balance:     row.Balance,
		})
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Update reemplaza todos los campos del producto (salvo el ID).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Si está referenciado por entradas de
// stock o ítems de venta retorna ErrConflict (la FK lo impide).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}
