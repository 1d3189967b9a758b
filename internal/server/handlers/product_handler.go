package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/domain/models"
	"github.com/sit722-devops/week09/internal/repository"
)

// ProductHandler serves the product endpoints consumed by the catalog
// browser. Error bodies carry a "detail" field, which is what the browser's
// API client surfaces to the user.
type ProductHandler struct {
	store  repository.ProductStore
	logger *zap.Logger
}

// NewProductHandler constructs the HTTP handler adapter.
func NewProductHandler(store repository.ProductStore, logger *zap.Logger) *ProductHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductHandler{store: store, logger: logger}
}

// List responds with every product as a JSON array in insertion order. An
// empty catalog yields [], never null.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// Create validates the payload, stores the product and echoes the stored
// record back with its assigned ID and timestamps.
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.NewProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid product payload", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
		return
	}

	if detail := validateNewProduct(req); detail != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
		return
	}

	created, err := h.store.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed creating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Delete removes a product by its integer ID.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "product_id must be an integer"})
		return
	}

	if err := h.store.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Product not found"})
			return
		}
		h.logger.Error("failed deleting product", zap.Int64("product_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// validateNewProduct applies the creation rules and returns the rejection
// detail, or "" when the payload is acceptable.
func validateNewProduct(req models.NewProduct) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name must not be empty"
	}
	if req.Price <= 0 {
		return "price must be positive"
	}
	if req.Stock < 0 {
		return "stock_quantity must be non-negative"
	}
	return ""
}
