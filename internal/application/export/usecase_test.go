package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pedidos-api/internal/application/export"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// fakeOrderRepo solo implementa los listados; el resto no se usa en exportación.
type fakeOrderRepo struct {
	rows []*entity.OrderWithUser
}

func (f *fakeOrderRepo) Create(*entity.Order) error                        { return nil }
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error)             { return nil, nil }
func (f *fakeOrderRepo) GetForUpdate(string) (*entity.Order, error)        { return nil, nil }
func (f *fakeOrderRepo) UpdatePartial(string, repository.OrderPatch) error { return nil }
func (f *fakeOrderRepo) UpdateStatus(string, int) error                    { return nil }
func (f *fakeOrderRepo) Delete(string) error                               { return nil }

func (f *fakeOrderRepo) ListAll() ([]*entity.OrderWithUser, error) { return f.rows, nil }

func (f *fakeOrderRepo) ListByUser(userID string) ([]*entity.OrderWithUser, error) {
	var list []*entity.OrderWithUser
	for _, r := range f.rows {
		if r.UserID == userID {
			list = append(list, r)
		}
	}
	return list, nil
}

type fakePDFGen struct {
	got []*entity.OrderWithUser
}

func (f *fakePDFGen) GenerateOrdersPDF(_ context.Context, rows []*entity.OrderWithUser) ([]byte, error) {
	f.got = rows
	return []byte("%PDF-fake"), nil
}

func sampleRows() []*entity.OrderWithUser {
	buy := time.Date(2026, 8, 15, 10, 30, 0, 0, time.Local)
	return []*entity.OrderWithUser{
		{
			Order:    entity.Order{ID: "o1", UserID: "u1", ProductsID: "p1", Count: 2, Status: entity.StatusPending, BuyTime: buy},
			UserName: "Ana", Address: "Calle 1", Phone: "13800000001",
		},
		{
			Order:    entity.Order{ID: "o2", UserID: "u2", ProductsID: "p2", Count: 1, Status: entity.StatusCancelled, BuyTime: buy},
			UserName: "Beto", Address: "Calle 2", Phone: "13800000002",
		},
	}
}

func TestCSV_AdminExportaTodoConEtiquetas(t *testing.T) {
	uc := export.NewUseCase(&fakeOrderRepo{rows: sampleRows()}, &fakePDFGen{})

	data, err := uc.CSV(context.Background(), "admin-id", entity.RoleAdmin)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "cabecera + dos filas")

	assert.Equal(t, []string{
		"user_name", "address", "phone", "order_id", "user_id",
		"products_id", "count", "status", "buy_time",
	}, records[0])

	assert.Equal(t, "Ana", records[1][0])
	assert.Equal(t, "pendiente", records[1][7], "el estado se exporta como etiqueta")
	assert.Equal(t, "2026-08-15 10:30:00", records[1][8])
	assert.Equal(t, "cancelado", records[2][7])
}

func TestCSV_UsuarioSoloExportaLosSuyos(t *testing.T) {
	uc := export.NewUseCase(&fakeOrderRepo{rows: sampleRows()}, &fakePDFGen{})

	data, err := uc.CSV(context.Background(), "u1", entity.RoleUser)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "cabecera + solo la fila de u1")
	assert.Equal(t, "u1", records[1][4])
}

func TestPDF_DelegaConElMismoAlcancePorRol(t *testing.T) {
	gen := &fakePDFGen{}
	uc := export.NewUseCase(&fakeOrderRepo{rows: sampleRows()}, gen)

	data, err := uc.PDF(context.Background(), "u2", entity.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)

	require.Len(t, gen.got, 1, "al generador solo llegan los pedidos del solicitante")
	assert.Equal(t, "o2", gen.got[0].ID)
}
