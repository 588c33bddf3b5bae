package export

import (
	"context"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// OrderPDFGenerator genera el documento PDF del listado de pedidos.
// Lo implementa infrastructure/pdf (Maroto v2).
type OrderPDFGenerator interface {
	GenerateOrdersPDF(ctx context.Context, rows []*entity.OrderWithUser) ([]byte, error)
}
