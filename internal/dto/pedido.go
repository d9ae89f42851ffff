package dto

// RegisterPedidoRequest registers a merchandise order. Tallas comes as
// a repeated form field; the per-talla counts arrive as cantidad_<talla>
// fields that the handler collects into Cantidades before calling the
// service (JSON bodies send the map directly).
type RegisterPedidoRequest struct {
	Solicitante  string         `form:"solicitante"   json:"solicitante"   binding:"required,max=100"`
	TipoProducto string         `form:"tipo_producto" json:"tipo_producto" binding:"required,max=30"`
	Tallas       []string       `form:"tallas"        json:"tallas"`
	Color        string         `form:"color"         json:"color"         binding:"omitempty,max=30"`
	Cantidades   map[string]int `form:"-"             json:"cantidades"`
	CostoTotal   string         `form:"costo_total"   json:"costo_total"   binding:"required"`
	Fecha        string         `form:"fecha"         json:"fecha"         binding:"omitempty"`
}

// PedidoListRequest filters the order listing.
type PedidoListRequest struct {
	Fecha string `form:"fecha" binding:"omitempty"`
}

// PedidoResponse is the read shape of a Pedido.
type PedidoResponse struct {
	ID           uint     `json:"id"`
	Fecha        string   `json:"fecha"`
	Solicitante  string   `json:"solicitante"`
	TipoProducto string   `json:"tipo_producto"`
	Tallas       []string `json:"tallas"`
	Color        string   `json:"color,omitempty"`
	Cantidad     int      `json:"cantidad"`
	CostoTotal   float64  `json:"costo_total"`
}
