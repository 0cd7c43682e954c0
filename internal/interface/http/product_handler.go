package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oktarian/shopstock/internal/application"
	pginfra "github.com/oktarian/shopstock/internal/infrastructure/postgres"
	"github.com/oktarian/shopstock/pkg/response"
	"github.com/oktarian/shopstock/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Audit  *pginfra.AuditRepository
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, audit *pginfra.AuditRepository, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Audit: audit, Logger: logger}
}

type saveProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"gte=0"`
	Price      float64 `json:"price" binding:"gte=0"`
	ExistingID string  `json:"existing_id"`
}

// Lookup GET /api/products/lookup?name=
// Exact lookup by normalized name; the returned id is what the client sends
// back as existing_id on a later save in the same editing session.
func (h *ProductHandler) Lookup(c *gin.Context) {
	p, err := h.Svc.Find(c.Request.Context(), c.Query("name"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidInput):
			response.Error[any](c, http.StatusBadRequest, "product name is required", nil)
		case errors.Is(err, application.ErrNotFound):
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
		default:
			response.Error[any](c, http.StatusServiceUnavailable, application.ErrUnavailable.Error(), nil)
		}
		return
	}
	response.Success(c, http.StatusOK, p, "product found", nil)
}

// Save POST /api/products
func (h *ProductHandler) Save(c *gin.Context) {
	var req saveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	in := application.SaveInput{Name: req.Name, Quantity: req.Quantity, Price: req.Price}
	sess := application.SessionContext{LastFoundID: req.ExistingID}

	p, err := h.Svc.Save(c.Request.Context(), in, sess)
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			response.Error[any](c, http.StatusBadRequest, "invalid product input", nil)
			return
		}
		response.Error[any](c, http.StatusServiceUnavailable, application.ErrUnavailable.Error(), nil)
		return
	}

	audit(c, h.Audit, h.Logger, "", "product_saved", map[string]any{
		"product_id": p.ID,
		"quantity":   p.Quantity,
		"price":      p.Price,
	})
	response.Success(c, http.StatusOK, p, "product saved", nil)
}

// Search GET /api/products/search?q=&size=
// Fuzzy search over the asynchronously maintained index; results may lag the
// latest saves.
func (h *ProductHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Svc.SearchProducts(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusServiceUnavailable, application.ErrUnavailable.Error(), nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}
