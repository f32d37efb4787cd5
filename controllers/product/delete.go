package productcontroller

import (
	"net/http"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// DeleteProduct removes a line item. Missing items are not an error.
func DeleteProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("user_id"), c.Param("product_id")); err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
