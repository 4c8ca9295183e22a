package controllers

import (
	"net/http"

	"restaurant-cart/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Catalog Catalog
}

// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.Catalog.GetAllCategories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve categories"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Categories retrieved", Data: categories})
}

// @Summary Get all ingredients
// @Description Ingredients that can be added, removed or doubled on a cart line
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /ingredients [get]
func (ctrl *CategoryController) GetIngredients(c *gin.Context) {
	ingredients, err := ctrl.Catalog.GetAllIngredients(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to retrieve ingredients"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Ingredients retrieved", Data: ingredients})
}
