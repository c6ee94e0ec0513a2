// Package report contiene la aritmética de saldos e indicadores (servicio de dominio).
package report

import "github.com/shopspring/decimal"

// Available calcula el saldo disponible de un producto.
// Saldo = total de entradas de stock - total de cantidades vendidas.
// Puede ser negativo (sobreventa): el sistema lo reporta, no lo bloquea.
func Available(stocked, sold int64) int64 {
	return stocked - sold
}

// SalesValue calcula el valor de una línea de venta: cantidad × precio capturado.
func SalesValue(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitPrice)
}
