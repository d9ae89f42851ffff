package service

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/model"
	"github.com/HFrancia/AlumnosTKD3/internal/repository"
	"github.com/HFrancia/AlumnosTKD3/pkg/apperrors"
)

// ── pedido business errors ──

var (
	ErrTallasVacias  = apperrors.New(apperrors.Validation, "Debe seleccionar al menos una talla")
	ErrCantidadCero  = apperrors.New(apperrors.Validation, "La cantidad total del pedido debe ser mayor a cero")
	ErrCostoInvalido = apperrors.New(apperrors.Validation, "El costo total debe ser un número no negativo")
)

// PedidoService is the Pedido business interface.
type PedidoService interface {
	// Register derives the order quantity as the sum of the per-talla
	// counts; sizes without a count contribute zero.
	Register(ctx context.Context, req *dto.RegisterPedidoRequest) (*dto.PedidoResponse, error)
	// List returns every pedido, or only those of an exact date when
	// fecha is non-empty.
	List(ctx context.Context, fecha string) ([]dto.PedidoResponse, error)
}

type pedidoService struct {
	repo   *repository.Repository
	logger *zap.Logger
	// now is swappable so tests can pin the default order date.
	now func() time.Time
}

// NewPedidoService creates a PedidoService.
func NewPedidoService(repo *repository.Repository, logger *zap.Logger) PedidoService {
	return &pedidoService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Register ──────────────────────

func (s *pedidoService) Register(ctx context.Context, req *dto.RegisterPedidoRequest) (*dto.PedidoResponse, error) {
	if len(req.Tallas) == 0 {
		return nil, ErrTallasVacias
	}

	cantidad := 0
	for _, talla := range req.Tallas {
		cantidad += req.Cantidades[talla]
	}
	if cantidad <= 0 {
		return nil, ErrCantidadCero
	}

	// ParseFloat also accepts "NaN" and "Inf"; neither is a price.
	costo, err := strconv.ParseFloat(req.CostoTotal, 64)
	if err != nil || math.IsNaN(costo) || math.IsInf(costo, 0) || costo < 0 {
		return nil, ErrCostoInvalido
	}

	// Default to today's local calendar date, not the UTC one: an
	// evening order west of Greenwich is still the same day here.
	y, mo, d := s.now().Date()
	fecha := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	if req.Fecha != "" {
		fecha, err = time.Parse(dateLayout, req.Fecha)
		if err != nil {
			return nil, ErrFechaInvalida
		}
	}

	pedido := &model.Pedido{
		Fecha:        fecha,
		Solicitante:  req.Solicitante,
		TipoProducto: req.TipoProducto,
		Tallas:       model.StringArray(req.Tallas),
		Cantidad:     cantidad,
		CostoTotal:   costo,
	}
	if req.Color != "" {
		pedido.Color = &req.Color
	}

	if err := s.repo.Pedido.Create(ctx, pedido); err != nil {
		s.logger.Error("registrar pedido falló", zap.Error(err))
		return nil, err
	}

	return toPedidoResponse(pedido), nil
}

// ────────────────────── List ──────────────────────

func (s *pedidoService) List(ctx context.Context, fecha string) ([]dto.PedidoResponse, error) {
	var pedidos []model.Pedido
	var err error

	if fecha != "" {
		var dia time.Time
		dia, err = time.Parse(dateLayout, fecha)
		if err != nil {
			return nil, ErrFechaInvalida
		}
		pedidos, err = s.repo.Pedido.ListByFecha(ctx, dia)
	} else {
		pedidos, err = s.repo.Pedido.List(ctx)
	}
	if err != nil {
		s.logger.Error("listar pedidos falló", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		result = append(result, *toPedidoResponse(&pedidos[i]))
	}
	return result, nil
}

// ── helpers ──

func toPedidoResponse(p *model.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:           p.ID,
		Fecha:        p.Fecha.Format(dateLayout),
		Solicitante:  p.Solicitante,
		TipoProducto: p.TipoProducto,
		Tallas:       []string(p.Tallas),
		Cantidad:     p.Cantidad,
		CostoTotal:   p.CostoTotal,
	}
	if p.Color != nil {
		resp.Color = *p.Color
	}
	return resp
}
