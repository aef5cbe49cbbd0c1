package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pricepulse/backend/internal/domain"
	"github.com/pricepulse/backend/internal/usecase"
)

// PriceReader is the slice of the price service the handlers need.
type PriceReader interface {
	GetProducts(ctx context.Context, useFallback bool) []domain.Product
	GetProduct(ctx context.Context, id string, useFallback bool) (domain.Product, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	prices PriceReader
}

// NewHandler creates a new HTTP handler
func NewHandler(prices PriceReader) *Handler {
	return &Handler{prices: prices}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricepulse-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the catalog joined with live-or-fallback prices.
// ?fallback=true skips crawling entirely and serves static estimates.
func (h *Handler) ListProducts(c *gin.Context) {
	useFallback := c.Query("fallback") == "true"
	products := h.prices.GetProducts(c.Request.Context(), useFallback)
	c.JSON(http.StatusOK, products)
}

// rateRequest is the body of POST /api/v1/rate.
type rateRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	Fallback  bool    `json:"fallback"`
}

// RatePrice rates an observed price against a product's market range.
func (h *Handler) RatePrice(c *gin.Context) {
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and price are required"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
		return
	}

	product, err := h.prices.GetProduct(c.Request.Context(), req.ProductID, req.Fallback)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown product id"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating":   usecase.Rate(req.Price, product),
		"position": usecase.Position(req.Price, product),
		"product":  product,
	})
}
