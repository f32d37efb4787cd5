package productcontroller

import (
	"net/http"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// AddProduct puts a product into the shopcart of :user_id. Posting a
// product_id the cart already holds overwrites that line item.
func AddProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		payload, err := controllers.ReadPayload(c)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		var product models.Product
		if err := product.DeserializeFor(userID, payload); err != nil {
			controllers.RespondError(c, err)
			return
		}

		added, err := svc.Add(c.Request.Context(), userID, &product)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		c.Header("Location", controllers.LocationURL(c, "shopcarts", userID, "items", added.ProductID))
		c.JSON(http.StatusCreated, added.Serialize())
	}
}
