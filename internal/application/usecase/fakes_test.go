package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/report"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// memDB datos en memoria compartidos por los repos falsos del paquete.
type memDB struct {
	products     map[int64]*entity.Product
	stockEntries map[int64]*entity.StockEntry
	saleItems    []entity.SaleItem
	nextID       int64
}

func newMemDB() *memDB {
	return &memDB{
		products:     make(map[int64]*entity.Product),
		stockEntries: make(map[int64]*entity.StockEntry),
	}
}

func (db *memDB) id() int64 {
	db.nextID++
	return db.nextID
}

func (db *memDB) addStock(productID, quantity int64) {
	id := db.id()
	db.stockEntries[id] = &entity.StockEntry{ID: id, ProductID: productID, Quantity: quantity}
}

func (db *memDB) addSoldItem(productID, quantity int64, unitPrice string) {
	db.saleItems = append(db.saleItems, entity.SaleItem{
		ID:        db.id(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	})
}

type fakeProductRepo struct{ db *memDB }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.db.id()
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.db.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.db.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.db.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.db.products[p.ID] = &cp
	return nil
}

// Delete aplica la política del esquema: RESTRICT si hay referencias.
func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, e := range r.db.stockEntries {
		if e.ProductID == id {
			return domain.ErrConflict
		}
	}
	for _, item := range r.db.saleItems {
		if item.ProductID == id {
			return domain.ErrConflict
		}
	}
	delete(r.db.products, id)
	return nil
}

type fakeStockRepo struct{ db *memDB }

func (r *fakeStockRepo) Create(_ context.Context, e *entity.StockEntry) error {
	if _, ok := r.db.products[e.ProductID]; !ok {
		return domain.ErrNotFound
	}
	e.ID = r.db.id()
	cp := *e
	r.db.stockEntries[e.ID] = &cp
	return nil
}

func (r *fakeStockRepo) GetByID(_ context.Context, id int64) (*entity.StockEntry, error) {
	e, ok := r.db.stockEntries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeStockRepo) List(_ context.Context) ([]*entity.StockEntry, error) {
	var list []*entity.StockEntry
	for _, e := range r.db.stockEntries {
		cp := *e
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeStockRepo) Update(_ context.Context, e *entity.StockEntry) error {
	if _, ok := r.db.stockEntries[e.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.db.products[e.ProductID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.db.stockEntries[e.ID] = &cp
	return nil
}

func (r *fakeStockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.db.stockEntries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.stockEntries, id)
	return nil
}

// fakeReportRepo recalcula los agregados en cada llamada, como el SQL real.
type fakeReportRepo struct{ db *memDB }

func (r *fakeReportRepo) ListProductsWithBalance(_ context.Context) ([]repository.ProductBalance, error) {
	var results []repository.ProductBalance
	for _, p := range r.db.products {
		results = append(results, repository.ProductBalance{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Balance:     report.Available(r.stocked(p.ID), r.sold(p.ID)),
		})
	}
	return results, nil
}

func (r *fakeReportRepo) TotalStockAvailable(_ context.Context) (int64, error) {
	return report.Available(r.stocked(0), r.sold(0)), nil
}

func (r *fakeReportRepo) TotalSalesValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range r.db.saleItems {
		total = total.Add(report.SalesValue(item.Quantity, item.UnitPrice))
	}
	return total, nil
}

func (r *fakeReportRepo) CountProducts(_ context.Context) (int64, error) {
	return int64(len(r.db.products)), nil
}

func (r *fakeReportRepo) stocked(productID int64) int64 {
	var total int64
	for _, e := range r.db.stockEntries {
		if productID == 0 || e.ProductID == productID {
			total += e.Quantity
		}
	}
	return total
}

func (r *fakeReportRepo) sold(productID int64) int64 {
	var total int64
	for _, item := range r.db.saleItems {
		if productID == 0 || item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}
