package entity

import "time"

// StockEntry representa una entrada de mercancía al inventario.
// Cada fila es un evento de ingreso; varias entradas pueden referir al mismo
// producto. Semánticamente es histórico, aunque la API permite corregirlo.
type StockEntry struct {
	ID            int64
	ProductID     int64
	Quantity      int64
	EntryDate     time.Time // por defecto, fecha de creación
	InvoiceNumber string    // número de la nota/factura del proveedor
}
