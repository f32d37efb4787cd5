package productcontroller

import (
	"net/http"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// GetProduct returns a single line item of a shopcart.
// URL params: /shopcarts/:user_id/items/:product_id
func GetProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("user_id"), c.Param("product_id"))
		if err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product.Serialize())
	}
}
