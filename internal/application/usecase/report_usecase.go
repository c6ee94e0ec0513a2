package usecase

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ReportUseCase totalizadores para la pantalla de inicio.
//
// Fuente de datos: ReportRepository (consultas read-only agregadas).
// No accede directamente a las tablas; delega todo en el repositorio, así los
// totales se recalculan en cada petición sin estado en memoria que envejezca.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// TotalSalesValue valor total vendido: Σ (cantidad × precio capturado en la venta).
func (uc *ReportUseCase) TotalSalesValue(ctx context.Context) (*dto.TotalValueResponse, error) {
	value, err := uc.reportRepo.TotalSalesValue(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalValueResponse{Value: value}, nil
}

// TotalProducts cantidad de productos registrados.
func (uc *ReportUseCase) TotalProducts(ctx context.Context) (*dto.TotalCountResponse, error) {
	total, err := uc.reportRepo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalCountResponse{Total: total}, nil
}

// TotalStock stock disponible global: Σ entradas − Σ vendido.
// Puede ser negativo si hubo sobreventa.
func (uc *ReportUseCase) TotalStock(ctx context.Context) (*dto.TotalCountResponse, error) {
	total, err := uc.reportRepo.TotalStockAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.TotalCountResponse{Total: total}, nil
}
