package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/service"
	"github.com/HFrancia/AlumnosTKD3/pkg/response"
)

// PagoHandler exposes payment registration and listing under an alumno.
type PagoHandler struct {
	pagoSvc service.PagoService
}

// NewPagoHandler creates a PagoHandler.
func NewPagoHandler(pagoSvc service.PagoService) *PagoHandler {
	return &PagoHandler{pagoSvc: pagoSvc}
}

// Register records a payment for an alumno.
// POST /api/v1/alumnos/:id/pagos
func (h *PagoHandler) Register(c *gin.Context) {
	alumnoID, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.RegisterPagoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Datos de pago inválidos: "+err.Error())
		return
	}

	pago, err := h.pagoSvc.Register(c.Request.Context(), alumnoID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, "Pago registrado correctamente", pago)
}

// ListByAlumno lists an alumno's payments.
// GET /api/v1/alumnos/:id/pagos
func (h *PagoHandler) ListByAlumno(c *gin.Context) {
	alumnoID, ok := idParam(c)
	if !ok {
		return
	}

	pagos, err := h.pagoSvc.ListByAlumno(c.Request.Context(), alumnoID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "success", pagos)
}
