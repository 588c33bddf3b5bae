package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
	"github.com/jhoicas/pedidos-api/pkg/logger"
)

// CatalogHandler entrega el catálogo de productos (la portada de la app).
type CatalogHandler struct {
	priceRepo repository.PriceRepository
	log       *logger.Logger
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(priceRepo repository.PriceRepository, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{priceRepo: priceRepo, log: log}
}

// Index godoc
// @Summary      Catálogo de productos
// @Description  Todos los productos con precio y stock disponible.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  dto.ErrorResponse
// @Router       / [get]
func (h *CatalogHandler) Index(c *fiber.Ctx) error {
	list, err := h.priceRepo.List()
	if err != nil {
		return writeInternal(c, h.log, err)
	}
	items := make([]fiber.Map, 0, len(list))
	for _, p := range list {
		items = append(items, fiber.Map{
			"products_id":    p.ProductsID,
			"products_price": p.ProductsPrice,
			"stock":          p.Stock,
		})
	}
	return c.JSON(fiber.Map{"total": len(items), "products": items})
}
