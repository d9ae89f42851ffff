package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/model"
	"github.com/HFrancia/AlumnosTKD3/internal/repository"
	"github.com/HFrancia/AlumnosTKD3/pkg/apperrors"
)

// ── alumno business errors ──

var (
	ErrAlumnoNoEncontrado  = apperrors.New(apperrors.NotFound, "El alumno no existe")
	ErrCURPDuplicada       = apperrors.New(apperrors.Conflict, "La CURP ya está registrada")
	ErrAfiliacionDuplicada = apperrors.New(apperrors.Conflict, "El número de afiliación ya está registrado")
	ErrAlumnoTienePagos    = apperrors.New(apperrors.Conflict, "El alumno tiene pagos registrados y no puede eliminarse")
	ErrFechaInvalida       = apperrors.New(apperrors.Validation, "Fecha inválida, se espera AAAA-MM-DD")
)

// AlumnoService is the Alumno business interface.
type AlumnoService interface {
	Create(ctx context.Context, req *dto.AlumnoRequest) (*dto.AlumnoResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AlumnoResponse, error)
	List(ctx context.Context) ([]dto.AlumnoResponse, error)
	// Update overwrites every mutable field in one commit.
	Update(ctx context.Context, id uint, req *dto.AlumnoRequest) (*dto.AlumnoResponse, error)
	// Delete refuses alumnos that still own pagos.
	Delete(ctx context.Context, id uint) error
}

type alumnoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAlumnoService creates an AlumnoService.
func NewAlumnoService(repo *repository.Repository, logger *zap.Logger) AlumnoService {
	return &alumnoService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *alumnoService) Create(ctx context.Context, req *dto.AlumnoRequest) (*dto.AlumnoResponse, error) {
	fbday, err := time.Parse(dateLayout, req.FBday)
	if err != nil {
		return nil, ErrFechaInvalida
	}

	if err := s.checkUnique(ctx, req, 0); err != nil {
		return nil, err
	}

	alumno := &model.Alumno{
		APaterno: req.APaterno,
		AMaterno: req.AMaterno,
		Nombre:   req.Nombre,
		FBday:    fbday,
		CURP:     req.CURP,
		Calle:    req.Calle,
		Numero:   req.Numero,
		Colonia:  req.Colonia,
		Email:    req.Email,
		Telefono: req.Telefono,
		Estatus:  req.Estatus,
	}
	if req.NumAfiliacion != "" {
		alumno.NumAfiliacion = &req.NumAfiliacion
	}

	if err := s.repo.Alumno.Create(ctx, alumno); err != nil {
		s.logger.Error("registrar alumno falló", zap.Error(err))
		return nil, err
	}

	return toAlumnoResponse(alumno), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *alumnoService) GetByID(ctx context.Context, id uint) (*dto.AlumnoResponse, error) {
	alumno, err := s.repo.Alumno.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlumnoNoEncontrado
		}
		s.logger.Error("consultar alumno falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toAlumnoResponse(alumno), nil
}

// ────────────────────── List ──────────────────────

func (s *alumnoService) List(ctx context.Context) ([]dto.AlumnoResponse, error) {
	alumnos, err := s.repo.Alumno.List(ctx)
	if err != nil {
		s.logger.Error("listar alumnos falló", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AlumnoResponse, 0, len(alumnos))
	for i := range alumnos {
		result = append(result, *toAlumnoResponse(&alumnos[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *alumnoService) Update(ctx context.Context, id uint, req *dto.AlumnoRequest) (*dto.AlumnoResponse, error) {
	alumno, err := s.repo.Alumno.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlumnoNoEncontrado
		}
		s.logger.Error("consultar alumno falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	fbday, err := time.Parse(dateLayout, req.FBday)
	if err != nil {
		return nil, ErrFechaInvalida
	}

	if err := s.checkUnique(ctx, req, alumno.ID); err != nil {
		return nil, err
	}

	alumno.APaterno = req.APaterno
	alumno.AMaterno = req.AMaterno
	alumno.Nombre = req.Nombre
	alumno.FBday = fbday
	alumno.CURP = req.CURP
	alumno.Calle = req.Calle
	alumno.Numero = req.Numero
	alumno.Colonia = req.Colonia
	alumno.Email = req.Email
	alumno.Telefono = req.Telefono
	alumno.Estatus = req.Estatus
	if req.NumAfiliacion != "" {
		alumno.NumAfiliacion = &req.NumAfiliacion
	} else {
		alumno.NumAfiliacion = nil
	}

	if err := s.repo.Alumno.Update(ctx, alumno); err != nil {
		s.logger.Error("actualizar alumno falló", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return toAlumnoResponse(alumno), nil
}

// ────────────────────── Delete ──────────────────────

func (s *alumnoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Alumno.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlumnoNoEncontrado
		}
		s.logger.Error("consultar alumno falló", zap.Uint("id", id), zap.Error(err))
		return err
	}

	total, err := s.repo.Pago.CountByAlumno(ctx, id)
	if err != nil {
		s.logger.Error("contar pagos falló", zap.Uint("alumno_id", id), zap.Error(err))
		return err
	}
	if total > 0 {
		return ErrAlumnoTienePagos
	}

	if err := s.repo.Alumno.Delete(ctx, id); err != nil {
		s.logger.Error("eliminar alumno falló", zap.Uint("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

// checkUnique verifies CURP and numafiliación against other alumnos.
// selfID excludes the row being edited.
func (s *alumnoService) checkUnique(ctx context.Context, req *dto.AlumnoRequest, selfID uint) error {
	existing, err := s.repo.Alumno.GetByCURP(ctx, req.CURP)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("consultar CURP falló", zap.Error(err))
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrCURPDuplicada
	}

	if req.NumAfiliacion != "" {
		existing, err = s.repo.Alumno.GetByNumAfiliacion(ctx, req.NumAfiliacion)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("consultar afiliación falló", zap.Error(err))
			return err
		}
		if existing != nil && existing.ID != selfID {
			return ErrAfiliacionDuplicada
		}
	}
	return nil
}

func toAlumnoResponse(a *model.Alumno) *dto.AlumnoResponse {
	resp := &dto.AlumnoResponse{
		ID:       a.ID,
		APaterno: a.APaterno,
		AMaterno: a.AMaterno,
		Nombre:   a.Nombre,
		FBday:    a.FBday.Format(dateLayout),
		CURP:     a.CURP,
		Calle:    a.Calle,
		Numero:   a.Numero,
		Colonia:  a.Colonia,
		Email:    a.Email,
		Telefono: a.Telefono,
		Estatus:  a.Estatus,
	}
	if a.NumAfiliacion != nil {
		resp.NumAfiliacion = *a.NumAfiliacion
	}
	return resp
}
