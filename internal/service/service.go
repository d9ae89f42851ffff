package service

import (
	"go.uber.org/zap"

	"github.com/HFrancia/AlumnosTKD3/config"
	"github.com/HFrancia/AlumnosTKD3/internal/repository"
)

// dateLayout is the ISO date format every date field travels in.
const dateLayout = "2006-01-02"

// Service aggregates every business-logic interface.
type Service struct {
	Alumno  AlumnoService
	Pago    PagoService
	Pedido  PedidoService
	Reporte ReporteService
}

// NewService wires the service implementations.
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Alumno:  NewAlumnoService(repo, logger),
		Pago:    NewPagoService(repo, logger),
		Pedido:  NewPedidoService(repo, logger),
		Reporte: NewReporteService(cfg, repo, logger),
	}
}
