package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// StockUseCase casos de uso CRUD para entradas de stock.
type StockUseCase struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo, productRepo: productRepo}
}

// Create registra una entrada de stock. El producto debe existir.
// Si EntryDate viene en cero se usa la hora del servidor.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.Quantity <= 0 || in.InvoiceNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	entry := &entity.StockEntry{
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		EntryDate:     entryDate,
		InvoiceNumber: in.InvoiceNumber,
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// List lista todas las entradas de stock.
func (uc *StockUseCase) List(ctx context.Context) (*dto.StockEntryListResponse, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *toStockEntryResponse(e))
	}
	return &dto.StockEntryListResponse{Items: items}, nil
}

// Update reemplaza todos los campos de la entrada (salvo el ID).
func (uc *StockUseCase) Update(ctx context.Context, id int64, in dto.UpdateStockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.Quantity <= 0 || in.InvoiceNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = time.Now()
	}
	entry := &entity.StockEntry{
		ID:            id,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		EntryDate:     entryDate,
		InvoiceNumber: in.InvoiceNumber,
	}
	if err := uc.repo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// Delete elimina una entrada de stock por ID.
func (uc *StockUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	return &dto.StockEntryResponse{
		ID:            e.ID,
		ProductID:     e.ProductID,
		Quantity:      e.Quantity,
		InvoiceNumber: e.InvoiceNumber,
		EntryDate:     e.EntryDate,
	}
}
