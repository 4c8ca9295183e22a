package controllers

import (
	"context"
	"errors"
	"net/http"

	"restaurant-cart/middleware"
	"restaurant-cart/models"
	"restaurant-cart/repositories"
	"restaurant-cart/services"

	"github.com/gin-gonic/gin"
)

type CartCatalog interface {
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ResolveModifications(ctx context.Context, reqs []models.ModificationRequest) ([]models.Modification, error)
}

type CartController struct {
	Carts   *services.CartRegistry
	Catalog CartCatalog
}

func (ctrl *CartController) store(c *gin.Context) *services.CartStore {
	return ctrl.Carts.Get(c.Request.Context(), middleware.SessionID(c))
}

func cartOK(c *gin.Context, status int, message string, cart *services.CartStore) {
	c.JSON(status, models.Response{Success: true, Message: message, Data: cart.Summary()})
}

// @Summary Get cart
// @Description Items and totals of the current session's cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cartOK(c, http.StatusOK, "Cart retrieved", ctrl.store(c))
}

// @Summary Add product to cart
// @Description Adds a new line with quantity 1 for the product
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param request body models.AddToCartRequest true "Product to add"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	product, err := ctrl.Catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if errors.Is(err, repositories.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load product"})
		return
	}

	cart := ctrl.store(c)
	item := cart.AddToCart(*product)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product added to cart",
		Data:    gin.H{"item": item, "cart": cart.Summary()},
	})
}

// @Summary Remove cart line
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param id path string true "Line ID"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := ctrl.store(c)
	cart.RemoveFromCart(c.Param("id"))
	cartOK(c, http.StatusOK, "Cart updated", cart)
}

// @Summary Update line quantity
// @Description A quantity of zero or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param id path string true "Line ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id}/quantity [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	cart := ctrl.store(c)
	cart.UpdateQuantity(c.Param("id"), *req.Quantity)
	cartOK(c, http.StatusOK, "Cart updated", cart)
}

// @Summary Replace line modifications
// @Description Replaces every ingredient modification of the line and reprices it
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Param id path string true "Line ID"
// @Param request body models.UpdateModificationsRequest true "Modifications"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id}/modifications [put]
func (ctrl *CartController) UpdateModifications(c *gin.Context) {
	var req models.UpdateModificationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	mods, err := ctrl.Catalog.ResolveModifications(c.Request.Context(), req.Modifications)
	if errors.Is(err, repositories.ErrIngredientNotFound) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Unknown ingredient", Error: err.Error()})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load ingredients"})
		return
	}

	cart := ctrl.store(c)
	cart.UpdateItemModifications(c.Param("id"), mods)
	cartOK(c, http.StatusOK, "Cart updated", cart)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := ctrl.store(c)
	cart.ClearCart()
	cartOK(c, http.StatusOK, "Cart cleared", cart)
}

// @Summary Toggle cart sidebar
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session id"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/sidebar/toggle [post]
func (ctrl *CartController) ToggleSidebar(c *gin.Context) {
	cart := ctrl.store(c)
	cart.ToggleCartSidebar()
	cartOK(c, http.StatusOK, "Cart sidebar toggled", cart)
}
