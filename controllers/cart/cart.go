package cartControllers

import (
	"net/http"

	"github.com/CSCI-GA-2820-FA22-003/shopcarts/controllers"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/models"
	"github.com/CSCI-GA-2820-FA22-003/shopcarts/services"
	"github.com/gin-gonic/gin"
)

// GET /shopcarts
func ListShopcarts(svc services.ShopcartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			userID = c.Query("user-id")
		}

		carts, err := svc.List(c.Request.Context(), userID)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		results := make([]map[string]interface{}, 0, len(carts))
		for _, cart := range carts {
			results = append(results, cart.Serialize())
		}
		c.JSON(http.StatusOK, results)
	}
}

// GET /shopcarts/:user_id
func GetShopcart(svc services.ShopcartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.Serialize())
	}
}

// POST /shopcarts
func CreateShopcart(svc services.ShopcartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := controllers.ReadPayload(c)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		var cart models.Shopcart
		if err := cart.Deserialize(payload); err != nil {
			controllers.RespondError(c, err)
			return
		}

		created, err := svc.Create(c.Request.Context(), &cart)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		c.Header("Location", controllers.LocationURL(c, "shopcarts", created.UserID))
		c.JSON(http.StatusCreated, created.Serialize())
	}
}

// PUT /shopcarts/:user_id
// Body is either an array of products or a shopcart object with a products array.
// A missing shopcart is reported before the body is looked at.
func UpdateShopcart(svc services.ShopcartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if _, err := svc.Get(c.Request.Context(), userID); err != nil {
			controllers.RespondError(c, err)
			return
		}

		payload, err := controllers.ReadPayload(c)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		items := payload
		if fields, ok := payload.(map[string]interface{}); ok {
			var present bool
			if items, present = fields["products"]; !present {
				controllers.RespondError(c, models.NewDataValidationError("Invalid Shopcart: missing products"))
				return
			}
		} else if payload == nil {
			controllers.RespondError(c, models.NewDataValidationError("Invalid Shopcart: body of request contained bad or no data"))
			return
		}

		products, err := models.DeserializeProducts(userID, items)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}

		cart, err := svc.Replace(c.Request.Context(), userID, products)
		if err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.Serialize())
	}
}

// DELETE /shopcarts/:user_id
func DeleteShopcart(svc services.ShopcartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// PUT /shopcarts/:user_id/empty
func EmptyShopcart(svc services.ShopcartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Empty(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			controllers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart.Serialize())
	}
}
