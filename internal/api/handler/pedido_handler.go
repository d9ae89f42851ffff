package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/service"
	"github.com/HFrancia/AlumnosTKD3/pkg/response"
)

// PedidoHandler exposes merchandise order registration and listing.
type PedidoHandler struct {
	pedidoSvc service.PedidoService
}

// NewPedidoHandler creates a PedidoHandler.
func NewPedidoHandler(pedidoSvc service.PedidoService) *PedidoHandler {
	return &PedidoHandler{pedidoSvc: pedidoSvc}
}

// Register records a merchandise order. The order form sends the talla
// selection as a repeated "tallas" field plus one cantidad_<talla>
// count per selected size; JSON clients send the cantidades map
// directly.
// POST /api/v1/pedidos
func (h *PedidoHandler) Register(c *gin.Context) {
	var req dto.RegisterPedidoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Datos de pedido inválidos: "+err.Error())
		return
	}

	if req.Cantidades == nil {
		req.Cantidades = cantidadesFromForm(c, req.Tallas)
	}

	pedido, err := h.pedidoSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, "Pedido registrado correctamente", pedido)
}

// List lists orders, optionally filtered to one exact date.
// GET /api/v1/pedidos?fecha=AAAA-MM-DD
func (h *PedidoHandler) List(c *gin.Context) {
	var req dto.PedidoListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Parámetros inválidos: "+err.Error())
		return
	}

	pedidos, err := h.pedidoSvc.List(c.Request.Context(), req.Fecha)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, "success", pedidos)
}

// cantidadesFromForm collects the cantidad_<talla> count fields.
// Unparseable or absent counts default to 0.
func cantidadesFromForm(c *gin.Context, tallas []string) map[string]int {
	cantidades := make(map[string]int, len(tallas))
	for _, talla := range tallas {
		raw := c.PostForm("cantidad_" + strings.TrimSpace(talla))
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = 0
		}
		cantidades[talla] = n
	}
	return cantidades
}
