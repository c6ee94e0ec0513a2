package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Update reemplaza todos los campos del producto salvo el ID.
	Update(ctx context.Context, product *entity.Product) error
	// Delete falla con ErrConflict si el producto está referenciado por
	// entradas de stock o ítems de venta (FK RESTRICT).
	Delete(ctx context.Context, id int64) error
}
