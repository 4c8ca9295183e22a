package routes

import (
	"restaurant-cart/controllers"
	"restaurant-cart/middleware"
	"restaurant-cart/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Catalog   *services.CatalogService
	Carts     *services.CartRegistry
	JWTSecret string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	categoryCtrl := &controllers.CategoryController{Catalog: deps.Catalog}
	productCtrl := &controllers.ProductController{Catalog: deps.Catalog}
	cartCtrl := &controllers.CartController{Carts: deps.Carts, Catalog: deps.Catalog}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/ingredients", categoryCtrl.GetIngredients)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	cart := router.Group("/cart")
	cart.Use(middleware.CartSession(deps.JWTSecret))
	{
		cart.GET("", cartCtrl.GetCart)
		cart.DELETE("", cartCtrl.ClearCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.PATCH("/items/:id/quantity", cartCtrl.UpdateQuantity)
		cart.PUT("/items/:id/modifications", cartCtrl.UpdateModifications)
		cart.POST("/sidebar/toggle", cartCtrl.ToggleSidebar)
	}
}
