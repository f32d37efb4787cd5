package routes

import (
	cartControllers "github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers/cart"
	productcontroller "github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers/product"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/middleware"
	"github.com/gin-gonic/gin"
)

// SetupShopcartRoutes registers all "/shopcarts/*" endpoints. Mutating calls
// go through the API-key check, and those with a body must be JSON.
func SetupShopcartRoutes(r *gin.Engine, deps Dependencies) {
	apiKey := middleware.ValidateAPIKey(deps.APIKey)
	jsonBody := middleware.RequireJSON()

	carts := r.Group("/shopcarts")
	{
		// ──────────────── Shopcarts ────────────────
		carts.GET("", cartControllers.ListShopcarts(deps.Shopcarts))
		carts.POST("", apiKey, jsonBody, cartControllers.CreateShopcart(deps.Shopcarts))
		carts.GET("/:user_id", cartControllers.GetShopcart(deps.Shopcarts))
		carts.PUT("/:user_id", apiKey, jsonBody, cartControllers.UpdateShopcart(deps.Shopcarts))
		carts.DELETE("/:user_id", apiKey, cartControllers.DeleteShopcart(deps.Shopcarts))
		carts.PUT("/:user_id/empty", apiKey, cartControllers.EmptyShopcart(deps.Shopcarts))

		// ──────────────── Line items ────────────────
		items := carts.Group("/:user_id/items")
		{
			items.GET("", productcontroller.ListProducts(deps.Products))
			items.POST("", apiKey, jsonBody, productcontroller.AddProduct(deps.Products))
			items.GET("/:product_id", productcontroller.GetProduct(deps.Products))
			items.PUT("/:product_id", apiKey, jsonBody, productcontroller.UpdateProduct(deps.Products))
			items.DELETE("/:product_id", apiKey, productcontroller.DeleteProduct(deps.Products))
		}
	}
}
