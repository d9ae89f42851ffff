package handler

import "github.com/HFrancia/AlumnosTKD3/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Alumno  *AlumnoHandler
	Pago    *PagoHandler
	Pedido  *PedidoHandler
	Reporte *ReporteHandler
}

// NewHandler wires the handlers to their services.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Alumno:  NewAlumnoHandler(svc.Alumno),
		Pago:    NewPagoHandler(svc.Pago),
		Pedido:  NewPedidoHandler(svc.Pedido),
		Reporte: NewReporteHandler(svc.Reporte),
	}
}
