package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/internal/model"
)

// AlumnoRepository is the Alumno data-access interface.
type AlumnoRepository interface {
	Create(ctx context.Context, alumno *model.Alumno) error
	GetByID(ctx context.Context, id uint) (*model.Alumno, error)
	GetByCURP(ctx context.Context, curp string) (*model.Alumno, error)
	GetByNumAfiliacion(ctx context.Context, numAfiliacion string) (*model.Alumno, error)
	List(ctx context.Context) ([]model.Alumno, error)
	ListByEstatus(ctx context.Context, estatus string) ([]model.Alumno, error)
	Update(ctx context.Context, alumno *model.Alumno) error
	Delete(ctx context.Context, id uint) error
}

// alumnoRepo is the GORM implementation of AlumnoRepository.
type alumnoRepo struct {
	db *gorm.DB
}

// NewAlumnoRepo creates an AlumnoRepository.
func NewAlumnoRepo(db *gorm.DB) AlumnoRepository {
	return &alumnoRepo{db: db}
}

func (r *alumnoRepo) Create(ctx context.Context, alumno *model.Alumno) error {
	return r.db.WithContext(ctx).Create(alumno).Error
}

func (r *alumnoRepo) GetByID(ctx context.Context, id uint) (*model.Alumno, error) {
	var alumno model.Alumno
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&alumno).Error
	if err != nil {
		return nil, err
	}
	return &alumno, nil
}

func (r *alumnoRepo) GetByCURP(ctx context.Context, curp string) (*model.Alumno, error) {
	var alumno model.Alumno
	err := r.db.WithContext(ctx).
		Where("curp = ?", curp).
		First(&alumno).Error
	if err != nil {
		return nil, err
	}
	return &alumno, nil
}

func (r *alumnoRepo) GetByNumAfiliacion(ctx context.Context, numAfiliacion string) (*model.Alumno, error) {
	var alumno model.Alumno
	err := r.db.WithContext(ctx).
		Where("numafiliacion = ?", numAfiliacion).
		First(&alumno).Error
	if err != nil {
		return nil, err
	}
	return &alumno, nil
}

func (r *alumnoRepo) List(ctx context.Context) ([]model.Alumno, error) {
	var alumnos []model.Alumno
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&alumnos).Error
	return alumnos, err
}

func (r *alumnoRepo) ListByEstatus(ctx context.Context, estatus string) ([]model.Alumno, error) {
	var alumnos []model.Alumno
	err := r.db.WithContext(ctx).
		Where("estatus = ?", estatus).
		Order("id ASC").
		Find(&alumnos).Error
	return alumnos, err
}

func (r *alumnoRepo) Update(ctx context.Context, alumno *model.Alumno) error {
	// Save writes every field, which is exactly the full-replacement
	// contract of the edit operation.
	return r.db.WithContext(ctx).Save(alumno).Error
}

func (r *alumnoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Alumno{}, id).Error
}
