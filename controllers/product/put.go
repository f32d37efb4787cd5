package productcontroller

import (
	"net/http"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// UpdateProduct replaces the fields of an existing line item and keeps its id.
// A missing item is reported before the body is looked at.
func UpdateProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		productID := c.Param("product_id")

		if _, err := svc.Get(c.Request.Context(), userID, productID); err != nil {
			controllers.RespondError(c, err)
			return
		}

		payload, err := controllers.ReadPayload(c)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		var product models.Product
		if err := product.DeserializeItem(userID, productID, payload); err != nil {
			controllers.RespondError(c, err)
			return
		}

		updated, err := svc.Update(c.Request.Context(), userID, productID, &product)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated.Serialize())
	}
}
