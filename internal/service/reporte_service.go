package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/config"
	"github.com/HFrancia/AlumnosTKD3/internal/model"
	"github.com/HFrancia/AlumnosTKD3/internal/repository"
	"github.com/HFrancia/AlumnosTKD3/pkg/apperrors"
)

// ── reporte business errors ──

var (
	ErrFormatoInvalido = apperrors.New(apperrors.Validation, "Formato de reporte inválido, use xlsx o pdf")
	ErrReporteGenerar  = apperrors.New(apperrors.Internal, "No se pudo generar el reporte")
)

// Report output formats.
const (
	FormatoXLSX = "xlsx"
	FormatoPDF  = "pdf"
)

// ReporteService compiles record collections into styled downloadable
// documents. It is read-only and stateless: query results in, document
// bytes out. Documents are built in memory and streamed by the handler.
type ReporteService interface {
	// Alumnos reports every alumno with estatus "activo".
	Alumnos(ctx context.Context, formato string) (*bytes.Buffer, string, error)
	// PagosDeAlumno reports one alumno's payment history.
	PagosDeAlumno(ctx context.Context, alumnoID uint, formato string) (*bytes.Buffer, string, error)
	// Pedidos reports merchandise orders, optionally date-filtered.
	Pedidos(ctx context.Context, fecha, formato string) (*bytes.Buffer, string, error)
}

type reporteService struct {
	repo     *repository.Repository
	logger   *zap.Logger
	logoPath string
	now      func() time.Time
}

// NewReporteService creates a ReporteService.
func NewReporteService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ReporteService {
	return &reporteService{
		repo:     repo,
		logger:   logger,
		logoPath: cfg.Report.LogoPath,
		now:      time.Now,
	}
}

// ────────────────────── Alumnos ──────────────────────

func (s *reporteService) Alumnos(ctx context.Context, formato string) (*bytes.Buffer, string, error) {
	if err := validFormato(formato); err != nil {
		return nil, "", err
	}

	alumnos, err := s.repo.Alumno.ListByEstatus(ctx, model.EstatusActivo)
	if err != nil {
		s.logger.Error("consultar alumnos activos falló", zap.Error(err))
		return nil, "", err
	}

	cols := []columna[model.Alumno]{
		{"No", func(a model.Alumno) any { return a.ID }},
		{"Apellido Paterno", func(a model.Alumno) any { return a.APaterno }},
		{"Apellido Materno", func(a model.Alumno) any { return a.AMaterno }},
		{"Nombre", func(a model.Alumno) any { return a.Nombre }},
		{"Fecha de Nacimiento", func(a model.Alumno) any { return a.FBday }},
		{"CURP", func(a model.Alumno) any { return a.CURP }},
		{"Calle", func(a model.Alumno) any { return a.Calle }},
		{"Número", func(a model.Alumno) any { return a.Numero }},
		{"Colonia", func(a model.Alumno) any { return a.Colonia }},
		{"E-Mail", func(a model.Alumno) any { return a.Email }},
		{"Teléfono", func(a model.Alumno) any { return a.Telefono }},
		{"Número de Afiliación", func(a model.Alumno) any { return a.NumAfiliacion }},
	}

	t := buildTabla("Reporte de Alumnos", cols, alumnos)
	filename := fmt.Sprintf("Reporte_Alumnos_%s.%s", s.now().Format("20060102"), formato)
	return s.render(ctx, t, formato, filename)
}

// ────────────────────── PagosDeAlumno ──────────────────────

func (s *reporteService) PagosDeAlumno(ctx context.Context, alumnoID uint, formato string) (*bytes.Buffer, string, error) {
	if err := validFormato(formato); err != nil {
		return nil, "", err
	}

	alumno, err := s.repo.Alumno.GetByID(ctx, alumnoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrAlumnoNoEncontrado
		}
		s.logger.Error("consultar alumno falló", zap.Uint("id", alumnoID), zap.Error(err))
		return nil, "", err
	}

	pagos, err := s.repo.Pago.ListByAlumno(ctx, alumnoID)
	if err != nil {
		s.logger.Error("consultar pagos falló", zap.Uint("alumno_id", alumnoID), zap.Error(err))
		return nil, "", err
	}

	cols := []columna[model.Pago]{
		{"No", func(p model.Pago) any { return p.ID }},
		{"Fecha", func(p model.Pago) any { return p.Fecha }},
		{"Monto", func(p model.Pago) any { return p.Monto }},
		{"Concepto", func(p model.Pago) any { return p.Concepto }},
	}

	t := buildTabla("Reporte de Pagos", cols, pagos)
	filename := fmt.Sprintf("Reporte_Pagos_%s_%s_%s.%s",
		sanitizeFilePart(alumno.Nombre),
		sanitizeFilePart(alumno.APaterno),
		s.now().Format("20060102"),
		formato,
	)
	return s.render(ctx, t, formato, filename)
}

// ────────────────────── Pedidos ──────────────────────

func (s *reporteService) Pedidos(ctx context.Context, fecha, formato string) (*bytes.Buffer, string, error) {
	if err := validFormato(formato); err != nil {
		return nil, "", err
	}

	var pedidos []model.Pedido
	var err error
	if fecha != "" {
		var dia time.Time
		dia, err = time.Parse(dateLayout, fecha)
		if err != nil {
			return nil, "", ErrFechaInvalida
		}
		pedidos, err = s.repo.Pedido.ListByFecha(ctx, dia)
	} else {
		pedidos, err = s.repo.Pedido.List(ctx)
	}
	if err != nil {
		s.logger.Error("consultar pedidos falló", zap.Error(err))
		return nil, "", err
	}

	cols := []columna[model.Pedido]{
		{"No", func(p model.Pedido) any { return p.ID }},
		{"Fecha", func(p model.Pedido) any { return p.Fecha }},
		{"Solicitante", func(p model.Pedido) any { return p.Solicitante }},
		{"Producto", func(p model.Pedido) any { return p.TipoProducto }},
		{"Tallas", func(p model.Pedido) any { return p.Tallas }},
		{"Color", func(p model.Pedido) any { return p.Color }},
		{"Cantidad", func(p model.Pedido) any { return p.Cantidad }},
		{"Costo Total", func(p model.Pedido) any { return p.CostoTotal }},
	}

	t := buildTabla("Reporte de Pedidos", cols, pedidos)
	filename := fmt.Sprintf("Reporte_Pedidos_%s.%s", s.now().Format("20060102"), formato)
	return s.render(ctx, t, formato, filename)
}

// ── helpers ──

func (s *reporteService) render(ctx context.Context, t *tabla, formato, filename string) (*bytes.Buffer, string, error) {
	var buf *bytes.Buffer
	var err error

	switch formato {
	case FormatoXLSX:
		buf, err = renderXLSX(t, s.logoPath)
	case FormatoPDF:
		buf, err = renderPDF(ctx, t, s.logoPath)
	}
	if err != nil {
		s.logger.Error("generar reporte falló",
			zap.String("reporte", t.titulo),
			zap.String("formato", formato),
			zap.Error(err),
		)
		return nil, "", ErrReporteGenerar
	}
	return buf, filename, nil
}

func validFormato(formato string) error {
	if formato != FormatoXLSX && formato != FormatoPDF {
		return ErrFormatoInvalido
	}
	return nil
}

func sanitizeFilePart(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}
