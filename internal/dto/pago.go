package dto

// RegisterPagoRequest registers a payment against an Alumno. Monto
// arrives as a string and is parsed by the service so a bad number is
// reported as a validation failure, not a binding error.
type RegisterPagoRequest struct {
	Fecha    string `form:"fecha"    json:"fecha"    binding:"required"`
	Monto    string `form:"monto"    json:"monto"    binding:"required"`
	Concepto string `form:"concepto" json:"concepto" binding:"required,max=100"`
}

// PagoResponse is the read shape of a Pago.
type PagoResponse struct {
	ID       uint    `json:"id"`
	AlumnoID uint    `json:"alumno_id"`
	Fecha    string  `json:"fecha"`
	Monto    float64 `json:"monto"`
	Concepto string  `json:"concepto"`
}
