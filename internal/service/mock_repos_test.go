package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/HFrancia/AlumnosTKD3/internal/model"
)

// ── mock AlumnoRepository ──

type mockAlumnoRepo struct {
	alumnos map[uint]*model.Alumno
	nextID  uint
}

func newMockAlumnoRepo() *mockAlumnoRepo {
	return &mockAlumnoRepo{alumnos: make(map[uint]*model.Alumno), nextID: 1}
}

func (m *mockAlumnoRepo) Create(_ context.Context, alumno *model.Alumno) error {
	if alumno.ID == 0 {
		alumno.ID = m.nextID
		m.nextID++
	}
	cp := *alumno
	m.alumnos[alumno.ID] = &cp
	return nil
}

func (m *mockAlumnoRepo) GetByID(_ context.Context, id uint) (*model.Alumno, error) {
	if a, ok := m.alumnos[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoRepo) GetByCURP(_ context.Context, curp string) (*model.Alumno, error) {
	for _, a := range m.alumnos {
		if a.CURP == curp {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoRepo) GetByNumAfiliacion(_ context.Context, numAfiliacion string) (*model.Alumno, error) {
	for _, a := range m.alumnos {
		if a.NumAfiliacion != nil && *a.NumAfiliacion == numAfiliacion {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoRepo) List(_ context.Context) ([]model.Alumno, error) {
	result := make([]model.Alumno, 0, len(m.alumnos))
	for _, a := range m.alumnos {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAlumnoRepo) ListByEstatus(_ context.Context, estatus string) ([]model.Alumno, error) {
	var result []model.Alumno
	for _, a := range m.alumnos {
		if a.Estatus == estatus {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAlumnoRepo) Update(_ context.Context, alumno *model.Alumno) error {
	if _, ok := m.alumnos[alumno.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *alumno
	m.alumnos[alumno.ID] = &cp
	return nil
}

func (m *mockAlumnoRepo) Delete(_ context.Context, id uint) error {
	delete(m.alumnos, id)
	return nil
}

// ── mock PagoRepository ──

type mockPagoRepo struct {
	pagos  []model.Pago
	nextID uint
}

func newMockPagoRepo() *mockPagoRepo {
	return &mockPagoRepo{nextID: 1}
}

func (m *mockPagoRepo) Create(_ context.Context, pago *model.Pago) error {
	if pago.ID == 0 {
		pago.ID = m.nextID
		m.nextID++
	}
	m.pagos = append(m.pagos, *pago)
	return nil
}

func (m *mockPagoRepo) ListByAlumno(_ context.Context, alumnoID uint) ([]model.Pago, error) {
	result := make([]model.Pago, 0)
	for _, p := range m.pagos {
		if p.AlumnoID == alumnoID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Fecha.Equal(result[j].Fecha) {
			return result[i].Fecha.Before(result[j].Fecha)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockPagoRepo) CountByAlumno(_ context.Context, alumnoID uint) (int64, error) {
	var total int64
	for _, p := range m.pagos {
		if p.AlumnoID == alumnoID {
			total++
		}
	}
	return total, nil
}

// ── mock PedidoRepository ──

type mockPedidoRepo struct {
	pedidos []model.Pedido
	nextID  uint
}

func newMockPedidoRepo() *mockPedidoRepo {
	return &mockPedidoRepo{nextID: 1}
}

func (m *mockPedidoRepo) Create(_ context.Context, pedido *model.Pedido) error {
	if pedido.ID == 0 {
		pedido.ID = m.nextID
		m.nextID++
	}
	m.pedidos = append(m.pedidos, *pedido)
	return nil
}

func (m *mockPedidoRepo) List(_ context.Context) ([]model.Pedido, error) {
	result := make([]model.Pedido, len(m.pedidos))
	copy(result, m.pedidos)
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockPedidoRepo) ListByFecha(_ context.Context, fecha time.Time) ([]model.Pedido, error) {
	result := make([]model.Pedido, 0)
	for _, p := range m.pedidos {
		if p.Fecha.Format(dateLayout) == fecha.Format(dateLayout) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
