package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Alumno AlumnoRepository
	Pago   PagoRepository
	Pedido PedidoRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Alumno: NewAlumnoRepo(db),
		Pago:   NewPagoRepo(db),
		Pedido: NewPedidoRepo(db),
	}
}
