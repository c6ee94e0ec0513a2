package dto

import "github.com/shopspring/decimal"

// TotalValueResponse totalizador monetario (ej. valor total vendido).
type TotalValueResponse struct {
	Value decimal.Decimal `json:"value"`
}

// TotalCountResponse totalizador entero (productos registrados, stock disponible).
// Total puede ser negativo en el caso del stock (sobreventa).
type TotalCountResponse struct {
	Total int64 `json:"total"`
}
