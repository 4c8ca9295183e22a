package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"restaurant-cart/models"
	"restaurant-cart/repositories"

	"github.com/gin-gonic/gin"
)

type Catalog interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetAllProducts(ctx context.Context, page, limit int) (*models.PaginationResponse, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
}

type ProductController struct {
	Catalog Catalog
}

// @Summary Get all products
// @Description Get paginated list of active products
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	resp, err := ctrl.Catalog.GetAllProducts(c.Request.Context(), page, limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve products"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.Catalog.GetProductByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product retrieved", Data: product})
}
