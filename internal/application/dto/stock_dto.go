package dto

import "time"

// CreateStockEntryRequest entrada para registrar un ingreso de stock.
// EntryDate es opcional; si viene en cero se usa la fecha del servidor.
type CreateStockEntryRequest struct {
	ProductID     int64     `json:"product_id" validate:"required"`
	Quantity      int64     `json:"quantity" validate:"required,gt=0"`
	InvoiceNumber string    `json:"invoice_number" validate:"required,max=50"`
	EntryDate     time.Time `json:"entry_date"`
}

// UpdateStockEntryRequest reemplazo total de una entrada de stock (salvo ID).
type UpdateStockEntryRequest struct {
	ProductID     int64     `json:"product_id" validate:"required"`
	Quantity      int64     `json:"quantity" validate:"required,gt=0"`
	InvoiceNumber string    `json:"invoice_number" validate:"required,max=50"`
	EntryDate     time.Time `json:"entry_date"`
}

// StockEntryResponse salida de una entrada de stock.
type StockEntryResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	InvoiceNumber string    `json:"invoice_number"`
	EntryDate     time.Time `json:"entry_date"`
}

// StockEntryListResponse listado de entradas de stock.
type StockEntryListResponse struct {
	Items []StockEntryResponse `json:"items"`
}
