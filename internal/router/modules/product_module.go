package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oktarian/shopstock/internal/container"
	handlers "github.com/oktarian/shopstock/internal/interface/http"
	"github.com/oktarian/shopstock/internal/interface/middleware"
)

// ProductModule wires the product endpoints:
// GET  /api/products/lookup (exact lookup by normalized name),
// POST /api/products (merge-upsert save),
// GET  /api/products/search (fuzzy search over the index).

type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/products/lookup", readLimiter, m.Handler.Lookup)
	rg.GET("/products/search", readLimiter, m.Handler.Search)
	rg.POST("/products", writeLimiter, m.Handler.Save)
}
