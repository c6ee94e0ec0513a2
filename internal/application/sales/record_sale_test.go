package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

func newRecordFixture() (*memStore, *sales.RecordSaleUseCase) {
	store := newMemStore()
	uc := sales.NewRecordSaleUseCase(&memTxRunner{s: store}, &memProductRepo{s: store})
	return store, uc
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Una venta con N ítems crea exactamente 1 venta y N ítems, todos con el
// mismo ID de venta generado.
func TestRecordSale_UnaVentaConVariosItems(t *testing.T) {
	store, uc := newRecordFixture()
	camisa := store.addProduct("Camisa", "29.90")
	pantalon := store.addProduct("Pantalón", "79.90")

	out, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code: "S100",
		Items: []dto.SaleItemRequest{
			{ProductID: camisa.ID, Quantity: 2, UnitPrice: price("29.90")},
			{ProductID: pantalon.ID, Quantity: 1, UnitPrice: price("79.90")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotZero(t, out.ID, "la venta debe recibir ID generado")
	assert.Equal(t, "S100", out.Code)
	assert.False(t, out.Date.IsZero(), "la fecha debe asignarse en el servidor")
	require.Len(t, out.Items, 2)

	assert.Len(t, store.sales, 1, "exactamente una fila de venta")
	require.Len(t, store.saleItems, 2)
	for _, item := range store.saleItems {
		assert.Equal(t, out.ID, item.SaleID, "todos los ítems comparten el ID de la venta")
	}
}

func TestRecordSale_SinItems_RechazaValidacion(t *testing.T) {
	store, uc := newRecordFixture()

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{Code: "S1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una venta sin ítems no tiene efecto sobre el saldo y debe rechazarse")
	assert.Empty(t, store.sales)
}

func TestRecordSale_SinCodigo_RechazaValidacion(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Camisa", "29.90")

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1, UnitPrice: price("29.90")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
}

// Un ítem inválido deja cero filas persistidas: ni venta, ni ítems, ni pagos.
func TestRecordSale_CantidadInvalida_NoPersisteNada(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Camisa", "29.90")

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code: "S2",
		Items: []dto.SaleItemRequest{
			{ProductID: p.ID, Quantity: 3, UnitPrice: price("29.90")},
			{ProductID: p.ID, Quantity: -1, UnitPrice: price("29.90")},
		},
		Payments: []dto.PaymentRequest{{Method: "efectivo", Amount: price("89.70")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Lectura posterior al fallo: nada quedó escrito.
	assert.Empty(t, store.sales)
	assert.Empty(t, store.saleItems)
	assert.Empty(t, store.payments)
}

func TestRecordSale_PrecioNegativo_RechazaValidacion(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Camisa", "29.90")

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:  "S3",
		Items: []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1, UnitPrice: price("-0.01")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
}

func TestRecordSale_ProductoInexistente_NotFound(t *testing.T) {
	store, uc := newRecordFixture()

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:  "S4",
		Items: []dto.SaleItemRequest{{ProductID: 999, Quantity: 1, UnitPrice: price("10.00")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.sales)
}

// El segundo intento con el mismo código falla con conflicto y la primera
// venta queda intacta.
func TestRecordSale_CodigoDuplicado_PreservaPrimeraVenta(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Camisa", "29.90")

	first, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:  "S100",
		Items: []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 2, UnitPrice: price("29.90")}},
	})
	require.NoError(t, err)

	_, err = uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:  "S100",
		Items: []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 5, UnitPrice: price("29.90")}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.Len(t, store.sales, 1)
	require.Len(t, store.saleItems, 1)
	assert.Equal(t, first.ID, store.saleItems[0].SaleID)
	assert.Equal(t, int64(2), store.saleItems[0].Quantity,
		"el ítem de la primera venta no debe cambiar")
}

// Un fallo de almacenamiento a mitad de la transacción (al insertar un pago)
// revierte la venta y los ítems ya escritos.
func TestRecordSale_FalloAlGuardarPago_RollbackTotal(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Camisa", "29.90")
	store.failPayments = true

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:     "S5",
		Items:    []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1, UnitPrice: price("29.90")}},
		Payments: []dto.PaymentRequest{{Method: "tarjeta", Amount: price("29.90")}},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput, "es un fallo de almacenamiento, no de validación")

	assert.Empty(t, store.sales, "la venta no debe quedar persistida")
	assert.Empty(t, store.saleItems)
	assert.Empty(t, store.payments)
}

func TestRecordSale_PagoInvalido_RechazaValidacion(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Camisa", "29.90")

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:     "S6",
		Items:    []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1, UnitPrice: price("29.90")}},
		Payments: []dto.PaymentRequest{{Method: "", Amount: price("29.90")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
}

// Venta completa con envío y varios pagos: todo queda registrado y vuelve en
// la respuesta.
func TestRecordSale_ConEnvioYPagos(t *testing.T) {
	store, uc := newRecordFixture()
	p := store.addProduct("Vestido", "120.00")

	out, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:  "S200",
		Items: []dto.SaleItemRequest{{ProductID: p.ID, Quantity: 1, UnitPrice: price("120.00")}},
		Shipping: &dto.ShippingRequest{
			PostalCode:   "01310-100",
			Street:       "Avenida Central",
			Number:       1500,
			Neighborhood: "Centro",
			City:         "Medellín",
			State:        "AN",
		},
		Payments: []dto.PaymentRequest{
			{Method: "efectivo", Amount: price("50.00")},
			{Method: "tarjeta", Amount: price("70.00")},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, out.Shipping)
	assert.Equal(t, "01310-100", out.Shipping.PostalCode)
	assert.Equal(t, "Medellín", out.Shipping.City)
	require.Len(t, out.Payments, 2)
	assert.Len(t, store.payments, 2)
	for _, pay := range store.payments {
		assert.Equal(t, out.ID, pay.SaleID, "los pagos quedan atados a la venta por FK")
	}
}

// Escenario de punta a punta: producto, entrada de stock de 10, venta de 3.
// Saldo esperado 7, valor vendido 89.70, stock global 7.
func TestRecordSale_EscenarioCompletoConSaldos(t *testing.T) {
	store, uc := newRecordFixture()
	reports := &memReportRepo{s: store}

	shirt := store.addProduct("Shirt", "29.90")
	store.addStock(shirt.ID, 10)

	_, err := uc.Record(context.Background(), dto.RecordSaleRequest{
		Code:  "S100",
		Items: []dto.SaleItemRequest{{ProductID: shirt.ID, Quantity: 3, UnitPrice: price("29.90")}},
	})
	require.NoError(t, err)

	balances, err := reports.ListProductsWithBalance(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, int64(7), balances[0].Balance)

	totalValue, err := reports.TotalSalesValue(context.Background())
	require.NoError(t, err)
	assert.True(t, totalValue.Equal(price("89.70")),
		"el valor total vendido debe ser 89.70, se obtuvo %s", totalValue)

	totalStock, err := reports.TotalStockAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), totalStock)
}
