package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/internal/model"
)

// PagoRepository is the Pago data-access interface. Pagos have no
// update or delete: the payment history is append-only.
type PagoRepository interface {
	Create(ctx context.Context, pago *model.Pago) error
	ListByAlumno(ctx context.Context, alumnoID uint) ([]model.Pago, error)
	CountByAlumno(ctx context.Context, alumnoID uint) (int64, error)
}

// pagoRepo is the GORM implementation of PagoRepository.
type pagoRepo struct {
	db *gorm.DB
}

// NewPagoRepo creates a PagoRepository.
func NewPagoRepo(db *gorm.DB) PagoRepository {
	return &pagoRepo{db: db}
}

func (r *pagoRepo) Create(ctx context.Context, pago *model.Pago) error {
	return r.db.WithContext(ctx).Create(pago).Error
}

func (r *pagoRepo) ListByAlumno(ctx context.Context, alumnoID uint) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("alumno_id = ?", alumnoID).
		Order("fecha ASC, id ASC").
		Find(&pagos).Error
	return pagos, err
}

func (r *pagoRepo) CountByAlumno(ctx context.Context, alumnoID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Pago{}).
		Where("alumno_id = ?", alumnoID).
		Count(&total).Error
	return total, err
}
