package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/service"
	"github.com/HFrancia/AlumnosTKD3/pkg/response"
)

// AlumnoHandler exposes the Alumno CRUD surface.
type AlumnoHandler struct {
	alumnoSvc service.AlumnoService
}

// NewAlumnoHandler creates an AlumnoHandler.
func NewAlumnoHandler(alumnoSvc service.AlumnoService) *AlumnoHandler {
	return &AlumnoHandler{alumnoSvc: alumnoSvc}
}

// Create registers an alumno.
// POST /api/v1/alumnos
func (h *AlumnoHandler) Create(c *gin.Context) {
	var req dto.AlumnoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Datos de alumno inválidos: "+err.Error())
		return
	}

	alumno, err := h.alumnoSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, "Alumno registrado correctamente", alumno)
}

// Get returns one alumno.
// GET /api/v1/alumnos/:id
func (h *AlumnoHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	alumno, err := h.alumnoSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "success", alumno)
}

// List returns every alumno.
// GET /api/v1/alumnos
func (h *AlumnoHandler) List(c *gin.Context) {
	alumnos, err := h.alumnoSvc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "success", alumnos)
}

// Update overwrites every field of an alumno.
// PUT /api/v1/alumnos/:id
func (h *AlumnoHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req dto.AlumnoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Datos de alumno inválidos: "+err.Error())
		return
	}

	alumno, err := h.alumnoSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Alumno actualizado correctamente", alumno)
}

// Delete removes an alumno without pagos.
// DELETE /api/v1/alumnos/:id
func (h *AlumnoHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.alumnoSvc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "Alumno eliminado correctamente", nil)
}
