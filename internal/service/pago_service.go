package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/model"
	"github.com/HFrancia/AlumnosTKD3/internal/repository"
	"github.com/HFrancia/AlumnosTKD3/pkg/apperrors"
)

// ── pago business errors ──

var ErrMontoInvalido = apperrors.New(apperrors.Validation, "El monto debe ser un número no negativo")

// PagoService is the Pago business interface. Payments only exist
// through an alumno's registration operation.
type PagoService interface {
	Register(ctx context.Context, alumnoID uint, req *dto.RegisterPagoRequest) (*dto.PagoResponse, error)
	ListByAlumno(ctx context.Context, alumnoID uint) ([]dto.PagoResponse, error)
}

type pagoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPagoService creates a PagoService.
func NewPagoService(repo *repository.Repository, logger *zap.Logger) PagoService {
	return &pagoService{repo: repo, logger: logger}
}

// ────────────────────── Register ──────────────────────

func (s *pagoService) Register(ctx context.Context, alumnoID uint, req *dto.RegisterPagoRequest) (*dto.PagoResponse, error) {
	if err := s.ensureAlumno(ctx, alumnoID); err != nil {
		return nil, err
	}

	fecha, err := time.Parse(dateLayout, req.Fecha)
	if err != nil {
		return nil, ErrFechaInvalida
	}

	// ParseFloat also accepts "NaN" and "Inf"; neither is a payment.
	monto, err := strconv.ParseFloat(req.Monto, 64)
	if err != nil || math.IsNaN(monto) || math.IsInf(monto, 0) || monto < 0 {
		return nil, ErrMontoInvalido
	}

	pago := &model.Pago{
		AlumnoID: alumnoID,
		Fecha:    fecha,
		Monto:    monto,
		Concepto: req.Concepto,
	}

	if err := s.repo.Pago.Create(ctx, pago); err != nil {
		s.logger.Error("registrar pago falló", zap.Uint("alumno_id", alumnoID), zap.Error(err))
		return nil, err
	}

	return toPagoResponse(pago), nil
}

// ────────────────────── ListByAlumno ──────────────────────

func (s *pagoService) ListByAlumno(ctx context.Context, alumnoID uint) ([]dto.PagoResponse, error) {
	if err := s.ensureAlumno(ctx, alumnoID); err != nil {
		return nil, err
	}

	pagos, err := s.repo.Pago.ListByAlumno(ctx, alumnoID)
	if err != nil {
		s.logger.Error("listar pagos falló", zap.Uint("alumno_id", alumnoID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.PagoResponse, 0, len(pagos))
	for i := range pagos {
		result = append(result, *toPagoResponse(&pagos[i]))
	}
	return result, nil
}

// ── helpers ──

func (s *pagoService) ensureAlumno(ctx context.Context, alumnoID uint) error {
	if _, err := s.repo.Alumno.GetByID(ctx, alumnoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlumnoNoEncontrado
		}
		s.logger.Error("consultar alumno falló", zap.Uint("id", alumnoID), zap.Error(err))
		return err
	}
	return nil
}

func toPagoResponse(p *model.Pago) *dto.PagoResponse {
	return &dto.PagoResponse{
		ID:       p.ID,
		AlumnoID: p.AlumnoID,
		Fecha:    p.Fecha.Format(dateLayout),
		Monto:    p.Monto,
		Concepto: p.Concepto,
	}
}
