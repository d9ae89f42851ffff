package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/HFrancia/AlumnosTKD3/internal/service"
	"github.com/HFrancia/AlumnosTKD3/pkg/response"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

// ReporteHandler streams generated report documents.
type ReporteHandler struct {
	reporteSvc service.ReporteService
}

// NewReporteHandler creates a ReporteHandler.
func NewReporteHandler(reporteSvc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{reporteSvc: reporteSvc}
}

// Alumnos downloads the active-member roster.
// GET /api/v1/reportes/alumnos?formato=xlsx|pdf
func (h *ReporteHandler) Alumnos(c *gin.Context) {
	formato := formatoQuery(c)
	buf, filename, err := h.reporteSvc.Alumnos(c.Request.Context(), formato)
	if err != nil {
		response.FromError(c, err)
		return
	}
	sendDocument(c, formato, filename, buf.Bytes())
}

// PagosDeAlumno downloads one alumno's payment history.
// GET /api/v1/reportes/alumnos/:id/pagos?formato=xlsx|pdf
func (h *ReporteHandler) PagosDeAlumno(c *gin.Context) {
	alumnoID, ok := idParam(c)
	if !ok {
		return
	}

	formato := formatoQuery(c)
	buf, filename, err := h.reporteSvc.PagosDeAlumno(c.Request.Context(), alumnoID, formato)
	if err != nil {
		response.FromError(c, err)
		return
	}
	sendDocument(c, formato, filename, buf.Bytes())
}

// Pedidos downloads the order report, optionally date-filtered.
// GET /api/v1/reportes/pedidos?formato=xlsx|pdf&fecha=AAAA-MM-DD
func (h *ReporteHandler) Pedidos(c *gin.Context) {
	formato := formatoQuery(c)
	buf, filename, err := h.reporteSvc.Pedidos(c.Request.Context(), c.Query("fecha"), formato)
	if err != nil {
		response.FromError(c, err)
		return
	}
	sendDocument(c, formato, filename, buf.Bytes())
}

// ── helpers ──

func formatoQuery(c *gin.Context) string {
	return c.DefaultQuery("formato", service.FormatoXLSX)
}

func sendDocument(c *gin.Context, formato, filename string, data []byte) {
	mime := mimeXLSX
	if formato == service.FormatoPDF {
		mime = mimePDF
	}

	encoded := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, mime, data)
}
