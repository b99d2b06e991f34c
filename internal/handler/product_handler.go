package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/content"
)

// ListProducts returns the catalogue, optionally filtered by ?category=.
func (a *API) ListProducts(c *gin.Context) {
	category := content.Category(c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"products": a.products.ListByCategory(c.Request.Context(), category)})
}

// GetProduct returns one product.
func (a *API) GetProduct(c *gin.Context) {
	product, err := a.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "failed to load product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct stores a new product.
func (a *API) CreateProduct(c *gin.Context) {
	var payload content.Product
	if !bindJSON(c, &payload, "invalid product payload") {
		return
	}
	payload.ID = ""

	product, err := a.products.SaveProduct(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "failed to save product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct replaces the product identified by the path id.
func (a *API) UpdateProduct(c *gin.Context) {
	var payload content.Product
	if !bindJSON(c, &payload, "invalid product payload") {
		return
	}
	payload.ID = c.Param("id")

	product, err := a.products.SaveProduct(c.Request.Context(), payload)
	if err != nil {
		respondServiceError(c, err, "failed to save product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a product.
func (a *API) DeleteProduct(c *gin.Context) {
	if err := a.products.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}
