package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/repository"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// ListProducts returns the products of a shopcart.
// Optional query params: min-price, max-price (inclusive), name, order-type (asc|desc by price).
func ListProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q repository.ProductQuery

		// Price range filter
		if v := c.Query("min-price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min-price"})
				return
			}
			q.MinPrice = &mp
		}
		if v := c.Query("max-price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max-price"})
				return
			}
			q.MaxPrice = &mp
		}

		q.Name = c.Query("name")

		switch order := repository.SortOrder(strings.ToLower(c.Query("order-type"))); order {
		case repository.SortNone, repository.SortPriceAsc, repository.SortPriceDesc:
			q.Order = order
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order-type, expected asc or desc"})
			return
		}

		products, err := svc.List(c.Request.Context(), c.Param("user_id"), q)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		results := make([]map[string]interface{}, 0, len(products))
		for _, p := range products {
			results = append(results, p.Serialize())
		}
		c.JSON(http.StatusOK, results)
	}
}
