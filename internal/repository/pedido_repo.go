package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/internal/model"
)

// PedidoRepository is the Pedido data-access interface.
type PedidoRepository interface {
	Create(ctx context.Context, pedido *model.Pedido) error
	List(ctx context.Context) ([]model.Pedido, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]model.Pedido, error)
}

// pedidoRepo is the GORM implementation of PedidoRepository.
type pedidoRepo struct {
	db *gorm.DB
}

// NewPedidoRepo creates a PedidoRepository.
func NewPedidoRepo(db *gorm.DB) PedidoRepository {
	return &pedidoRepo{db: db}
}

func (r *pedidoRepo) Create(ctx context.Context, pedido *model.Pedido) error {
	return r.db.WithContext(ctx).Create(pedido).Error
}

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha.Format("2006-01-02")).
		Order("id ASC").
		Find(&pedidos).Error
	return pedidos, err
}
