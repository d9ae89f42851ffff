package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/HFrancia/AlumnosTKD3/internal/dto"
	"github.com/HFrancia/AlumnosTKD3/internal/model"
	"github.com/HFrancia/AlumnosTKD3/internal/repository"
)

// ── test helpers ──

func setupTestAlumnoService() (AlumnoService, *mockAlumnoRepo, *mockPagoRepo) {
	alumnoRepo := newMockAlumnoRepo()
	pagoRepo := newMockPagoRepo()
	repo := &repository.Repository{
		Alumno: alumnoRepo,
		Pago:   pagoRepo,
		Pedido: newMockPedidoRepo(),
	}
	svc := NewAlumnoService(repo, zap.NewNop())
	return svc, alumnoRepo, pagoRepo
}

func validAlumnoRequest() *dto.AlumnoRequest {
	return &dto.AlumnoRequest{
		APaterno:      "García",
		AMaterno:      "López",
		Nombre:        "Juan",
		FBday:         "2010-04-15",
		CURP:          "GALJ100415HDFRPN01",
		Calle:         "Av. Reforma",
		Numero:        "123",
		Colonia:       "Centro",
		Email:         "juan.garcia@example.com",
		Telefono:      "5512345678",
		NumAfiliacion: "AF-001",
		Estatus:       "activo",
	}
}

// ── Create ──

func TestAlumnoService_Create_Success(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	result, err := svc.Create(context.Background(), validAlumnoRequest())
	if err != nil {
		t.Fatalf("Create debería funcionar: %v", err)
	}
	if result.ID == 0 {
		t.Error("se esperaba un ID asignado")
	}
	if result.CURP != "GALJ100415HDFRPN01" {
		t.Errorf("CURP esperada GALJ100415HDFRPN01, obtenida %s", result.CURP)
	}
	if result.FBday != "2010-04-15" {
		t.Errorf("fbday esperada 2010-04-15, obtenida %s", result.FBday)
	}
}

func TestAlumnoService_Create_CURPDuplicada(t *testing.T) {
	svc, alumnoRepo, _ := setupTestAlumnoService()

	if _, err := svc.Create(context.Background(), validAlumnoRequest()); err != nil {
		t.Fatalf("primer Create debería funcionar: %v", err)
	}

	req := validAlumnoRequest()
	req.NumAfiliacion = "AF-002" // only the CURP collides
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrCURPDuplicada) {
		t.Errorf("se esperaba ErrCURPDuplicada, obtenido: %v", err)
	}
	if len(alumnoRepo.alumnos) != 1 {
		t.Errorf("debería persistir exactamente 1 alumno, hay %d", len(alumnoRepo.alumnos))
	}
}

func TestAlumnoService_Create_AfiliacionDuplicada(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	if _, err := svc.Create(context.Background(), validAlumnoRequest()); err != nil {
		t.Fatalf("primer Create debería funcionar: %v", err)
	}

	req := validAlumnoRequest()
	req.CURP = "XXXX000000XXXXXX02"
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrAfiliacionDuplicada) {
		t.Errorf("se esperaba ErrAfiliacionDuplicada, obtenido: %v", err)
	}
}

func TestAlumnoService_Create_FechaInvalida(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	req := validAlumnoRequest()
	req.FBday = "15/04/2010"
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrFechaInvalida) {
		t.Errorf("se esperaba ErrFechaInvalida, obtenido: %v", err)
	}
}

func TestAlumnoService_Create_SinAfiliacion(t *testing.T) {
	svc, alumnoRepo, _ := setupTestAlumnoService()

	req := validAlumnoRequest()
	req.NumAfiliacion = ""
	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create sin afiliación debería funcionar: %v", err)
	}
	if alumnoRepo.alumnos[result.ID].NumAfiliacion != nil {
		t.Error("numafiliacion vacía debería guardarse como NULL")
	}
}

// ── GetByID ──

func TestAlumnoService_GetByID_NoEncontrado(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrAlumnoNoEncontrado) {
		t.Errorf("se esperaba ErrAlumnoNoEncontrado, obtenido: %v", err)
	}
}

// ── List ──

func TestAlumnoService_List_LecturaIdempotente(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	first, _ := svc.Create(context.Background(), validAlumnoRequest())
	req := validAlumnoRequest()
	req.CURP = "XXXX000000XXXXXX02"
	req.NumAfiliacion = "AF-002"
	second, _ := svc.Create(context.Background(), req)

	lista1, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List debería funcionar: %v", err)
	}
	lista2, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List debería funcionar: %v", err)
	}

	if !reflect.DeepEqual(lista1, lista2) {
		t.Error("dos List sin escrituras intermedias deberían devolver lo mismo")
	}
	if len(lista1) != 2 || lista1[0].ID != first.ID || lista1[1].ID != second.ID {
		t.Errorf("orden por id esperado [%d %d], obtenido %+v", first.ID, second.ID, lista1)
	}
}

// ── Update ──

func TestAlumnoService_Update_ReemplazoCompleto(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	created, _ := svc.Create(context.Background(), validAlumnoRequest())

	req := &dto.AlumnoRequest{
		APaterno:      "Hernández",
		AMaterno:      "Ruiz",
		Nombre:        "Pedro",
		FBday:         "2009-12-01",
		CURP:          "HERP091201HDFRRD05",
		Calle:         "Calle 5",
		Numero:        "45B",
		Colonia:       "Del Valle",
		Email:         "pedro@example.com",
		Telefono:      "5598765432",
		NumAfiliacion: "AF-100",
		Estatus:       "inactivo",
	}
	if _, err := svc.Update(context.Background(), created.ID, req); err != nil {
		t.Fatalf("Update debería funcionar: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID debería funcionar: %v", err)
	}

	want := &dto.AlumnoResponse{
		ID:            created.ID,
		APaterno:      "Hernández",
		AMaterno:      "Ruiz",
		Nombre:        "Pedro",
		FBday:         "2009-12-01",
		CURP:          "HERP091201HDFRRD05",
		Calle:         "Calle 5",
		Numero:        "45B",
		Colonia:       "Del Valle",
		Email:         "pedro@example.com",
		Telefono:      "5598765432",
		NumAfiliacion: "AF-100",
		Estatus:       "inactivo",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lectura tras Update:\n got %+v\nwant %+v", got, want)
	}
}

func TestAlumnoService_Update_NoEncontrado(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	_, err := svc.Update(context.Background(), 999, validAlumnoRequest())
	if !errors.Is(err, ErrAlumnoNoEncontrado) {
		t.Errorf("se esperaba ErrAlumnoNoEncontrado, obtenido: %v", err)
	}
}

func TestAlumnoService_Update_ConservaPropiaCURP(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	created, _ := svc.Create(context.Background(), validAlumnoRequest())

	// re-submitting the same CURP on the same alumno is not a conflict
	req := validAlumnoRequest()
	req.Telefono = "5500000000"
	if _, err := svc.Update(context.Background(), created.ID, req); err != nil {
		t.Errorf("Update con la misma CURP debería funcionar: %v", err)
	}
}

func TestAlumnoService_Update_CURPDeOtroAlumno(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	_, _ = svc.Create(context.Background(), validAlumnoRequest())
	req2 := validAlumnoRequest()
	req2.CURP = "XXXX000000XXXXXX02"
	req2.NumAfiliacion = "AF-002"
	second, _ := svc.Create(context.Background(), req2)

	// second takes first's CURP
	req2.CURP = "GALJ100415HDFRPN01"
	_, err := svc.Update(context.Background(), second.ID, req2)
	if !errors.Is(err, ErrCURPDuplicada) {
		t.Errorf("se esperaba ErrCURPDuplicada, obtenido: %v", err)
	}
}

// ── Delete ──

func TestAlumnoService_Delete_ConPagos(t *testing.T) {
	svc, _, pagoRepo := setupTestAlumnoService()

	created, _ := svc.Create(context.Background(), validAlumnoRequest())
	_ = pagoRepo.Create(context.Background(), &model.Pago{AlumnoID: created.ID, Monto: 150})

	err := svc.Delete(context.Background(), created.ID)
	if !errors.Is(err, ErrAlumnoTienePagos) {
		t.Errorf("se esperaba ErrAlumnoTienePagos, obtenido: %v", err)
	}
}

func TestAlumnoService_Delete_Success(t *testing.T) {
	svc, alumnoRepo, _ := setupTestAlumnoService()

	created, _ := svc.Create(context.Background(), validAlumnoRequest())
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete debería funcionar: %v", err)
	}
	if len(alumnoRepo.alumnos) != 0 {
		t.Error("el alumno debería haberse eliminado")
	}
}

func TestAlumnoService_Delete_NoEncontrado(t *testing.T) {
	svc, _, _ := setupTestAlumnoService()

	err := svc.Delete(context.Background(), 999)
	if !errors.Is(err, ErrAlumnoNoEncontrado) {
		t.Errorf("se esperaba ErrAlumnoNoEncontrado, obtenido: %v", err)
	}
}
