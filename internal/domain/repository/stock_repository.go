package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para StockEntry.
type StockRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error
	GetByID(ctx context.Context, id int64) (*entity.StockEntry, error)
	List(ctx context.Context) ([]*entity.StockEntry, error)
	Update(ctx context.Context, entry *entity.StockEntry) error
	Delete(ctx context.Context, id int64) error
}
