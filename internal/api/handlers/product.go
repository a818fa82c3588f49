package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sheetsync/internal/logger"
	"sheetsync/internal/models"
	"sheetsync/internal/sanitize"
	"sheetsync/internal/store"
	"sheetsync/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	products *store.ProductStore
	syncer   *syncer.Orchestrator
	logger   *logger.Logger
}

func NewProductHandler(products *store.ProductStore, syncer *syncer.Orchestrator, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		syncer:   syncer,
		logger:   logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	// Pagination
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	products, total, err := h.products.List(c.Request.Context(), store.ListOptions{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.logger.Error("Failed to list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": products,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Create stores a product and mirrors it to the sheet. A failed sync is
// reported alongside the product but never fails the request.
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := prepareProduct(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.products.Create(c.Request.Context(), &product); err != nil {
		h.logger.Error("Failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	res := h.syncer.SyncProduct(c.Request.Context(), &product)
	c.JSON(http.StatusCreated, gin.H{"data": product, "sync": res})
}

func (h *ProductHandler) Update(c *gin.Context) {
	product, ok := h.load(c)
	if !ok {
		return
	}
	id := product.ID

	if err := c.ShouldBindJSON(product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = id
	if err := prepareProduct(product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.products.Save(c.Request.Context(), product); err != nil {
		h.logger.Error("Failed to update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	res := h.syncer.SyncProduct(c.Request.Context(), product)
	c.JSON(http.StatusOK, gin.H{"data": product, "sync": res})
}

// Delete removes the product from the store only; its sheet row stays.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("Failed to delete product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Sync pushes a stored product to the sheet on demand.
func (h *ProductHandler) Sync(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	res, err := h.syncer.SyncProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, syncer.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.logger.Error("Failed to load product %d for sync: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": res})
}

func (h *ProductHandler) load(c *gin.Context) (*models.Product, bool) {
	id, ok := productIDParam(c)
	if !ok {
		return nil, false
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return nil, false
		}
		h.logger.Error("Failed to fetch product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return nil, false
	}
	return product, true
}

func productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return id, true
}

// prepareProduct sanitizes the name, fills defaults and normalizes prices.
func prepareProduct(p *models.Product) error {
	p.Name = sanitize.Text(p.Name)
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Status == "" {
		p.Status = models.ProductStatusDraft
	}
	if p.Type == "" {
		p.Type = models.ProductTypeSimple
	}
	if p.StockStatus == "" {
		p.StockStatus = models.StockStatusInStock
	}

	var err error
	if p.RegularPrice, err = normalizePrice("regular_price", p.RegularPrice); err != nil {
		return err
	}
	if p.SalePrice, err = normalizePrice("sale_price", p.SalePrice); err != nil {
		return err
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 && p.Backorders == "no" {
		return errors.New("stock_quantity cannot be negative when backorders are disabled")
	}
	return nil
}

func normalizePrice(field, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%s must be a decimal number", field)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("%s cannot be negative", field)
	}
	return d.String(), nil
}
