// Package export produce los archivos descargables del listado de pedidos
// (CSV y PDF), con el mismo alcance por rol que el listado en pantalla.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Cabeceras del archivo exportado, en el mismo orden que el listado en pantalla.
var csvHeaders = []string{
	"user_name", "address", "phone", "order_id", "user_id",
	"products_id", "count", "status", "buy_time",
}

// UseCase exportación de pedidos. El admin exporta todos los pedidos; un
// usuario solo los propios. La lectura no tiene efectos secundarios.
type UseCase struct {
	orderRepo repository.OrderRepository
	pdfGen    OrderPDFGenerator
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(orderRepo repository.OrderRepository, pdfGen OrderPDFGenerator) *UseCase {
	return &UseCase{orderRepo: orderRepo, pdfGen: pdfGen}
}

// CSV devuelve el listado de pedidos del solicitante como CSV.
func (uc *UseCase) CSV(ctx context.Context, userID, role string) ([]byte, error) {
	rows, err := uc.rows(userID, role)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.UserName,
			r.Address,
			r.Phone,
			r.ID,
			r.UserID,
			r.ProductsID,
			strconv.Itoa(r.Count),
			entity.StatusLabel(r.Status),
			r.BuyTime.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF devuelve el listado de pedidos del solicitante como documento PDF.
func (uc *UseCase) PDF(ctx context.Context, userID, role string) ([]byte, error) {
	rows, err := uc.rows(userID, role)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateOrdersPDF(ctx, rows)
}

func (uc *UseCase) rows(userID, role string) ([]*entity.OrderWithUser, error) {
	if role == entity.RoleAdmin {
		return uc.orderRepo.ListAll()
	}
	return uc.orderRepo.ListByUser(userID)
}
