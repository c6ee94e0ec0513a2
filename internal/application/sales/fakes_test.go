package sales_test

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/report"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// errStorage simula un fallo de almacenamiento ajeno al caller.
var errStorage = errors.New("storage: fallo simulado")

// memStore almacén en memoria compartido por los repos falsos. El TxRunner
// falso toma un snapshot antes de ejecutar el callback y lo restaura si falla,
// reproduciendo la semántica Commit/Rollback del almacén real.
type memStore struct {
	products     map[int64]*entity.Product
	stockEntries []entity.StockEntry
	sales        map[int64]*entity.Sale
	saleItems    []entity.SaleItem
	payments     []entity.Payment
	nextID       int64

	failPayments bool // fuerza error al insertar pagos
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[int64]*entity.Product),
		sales:    make(map[int64]*entity.Sale),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextID = s.nextID
	for id, p := range s.products {
		prod := *p
		cp.products[id] = &prod
	}
	for id, v := range s.sales {
		sale := *v
		cp.sales[id] = &sale
	}
	cp.stockEntries = append([]entity.StockEntry(nil), s.stockEntries...)
	cp.saleItems = append([]entity.SaleItem(nil), s.saleItems...)
	cp.payments = append([]entity.Payment(nil), s.payments...)
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.products = snap.products
	s.sales = snap.sales
	s.stockEntries = snap.stockEntries
	s.saleItems = snap.saleItems
	s.payments = snap.payments
	s.nextID = snap.nextID
}

func (s *memStore) addProduct(name string, price string) *entity.Product {
	p := &entity.Product{
		ID:    s.id(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) addStock(productID, quantity int64) {
	s.stockEntries = append(s.stockEntries, entity.StockEntry{
		ID:        s.id(),
		ProductID: productID,
		Quantity:  quantity,
	})
}

// ── Repos falsos ──────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = r.s.id()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

// Delete aplica la misma política que el esquema real: producto referenciado
// por stock o ventas no se borra.
func (r *memProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, e := range r.s.stockEntries {
		if e.ProductID == id {
			return domain.ErrConflict
		}
	}
	for _, item := range r.s.saleItems {
		if item.ProductID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.products, id)
	return nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	for _, existing := range r.s.sales {
		if existing.Code == sale.Code {
			return domain.ErrDuplicate
		}
	}
	sale.ID = r.s.id()
	cp := *sale
	cp.Items = nil
	cp.Payments = nil
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	if _, ok := r.s.products[item.ProductID]; !ok {
		return domain.ErrNotFound
	}
	item.ID = r.s.id()
	r.s.saleItems = append(r.s.saleItems, *item)
	return nil
}

func (r *memSaleRepo) GetByCode(_ context.Context, code string) (*entity.Sale, error) {
	for _, sale := range r.s.sales {
		if sale.Code == code {
			return r.withChildren(sale), nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, sale := range r.s.sales {
		list = append(list, r.withChildren(sale))
	}
	return list, nil
}

// Delete reproduce la cascada del esquema: ítems y pagos caen con la venta.
func (r *memSaleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	items := r.s.saleItems[:0]
	for _, item := range r.s.saleItems {
		if item.SaleID != id {
			items = append(items, item)
		}
	}
	r.s.saleItems = items
	payments := r.s.payments[:0]
	for _, p := range r.s.payments {
		if p.SaleID != id {
			payments = append(payments, p)
		}
	}
	r.s.payments = payments
	return nil
}

func (r *memSaleRepo) withChildren(sale *entity.Sale) *entity.Sale {
	cp := *sale
	for _, item := range r.s.saleItems {
		if item.SaleID == sale.ID {
			cp.Items = append(cp.Items, item)
		}
	}
	for _, p := range r.s.payments {
		if p.SaleID == sale.ID {
			cp.Payments = append(cp.Payments, p)
		}
	}
	return &cp
}

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if r.s.failPayments {
		return errStorage
	}
	payment.ID = r.s.id()
	r.s.payments = append(r.s.payments, *payment)
	return nil
}

func (r *memPaymentRepo) ListBySale(_ context.Context, saleID int64) ([]entity.Payment, error) {
	var list []entity.Payment
	for _, p := range r.s.payments {
		if p.SaleID == saleID {
			list = append(list, p)
		}
	}
	return list, nil
}

// memTxRunner todo-o-nada sobre memStore: snapshot antes, restore si fn falla.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&memSaleRepo{s: r.s}, &memPaymentRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// memReportRepo calcula los agregados sobre memStore con la aritmética de dominio.
type memReportRepo struct{ s *memStore }

func (r *memReportRepo) ListProductsWithBalance(_ context.Context) ([]repository.ProductBalance, error) {
	var results []repository.ProductBalance
	for _, p := range r.s.products {
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

func (r *memReportRepo) TotalStockAvailable(_ context.Context) (int64, error) {
	return report.Available(r.stocked(0), r.sold(0)), nil
}

func (r *memReportRepo) TotalSalesValue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range r.s.saleItems {
		total = total.Add(report.SalesValue(item.Quantity, item.UnitPrice))
	}
	return total, nil
}

func (r *memReportRepo) CountProducts(_ context.Context) (int64, error) {
	return int64(len(r.s.products)), nil
}

// stocked suma entradas de stock; productID 0 = todos los productos.
func (r *memReportRepo) stocked(productID int64) int64 {
	var total int64
	for _, e := range r.s.stockEntries {
		if productID == 0 || e.ProductID == productID {
			total += e.Quantity
		}
	}
	return total
}

func (r *memReportRepo) sold(productID int64) int64 {
	var total int64
	for _, item := range r.s.saleItems {
		if productID == 0 || item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}
