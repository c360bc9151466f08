package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func categoriesHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err, "Category not found")
			return
		}
		c.JSON(http.StatusOK, nonNil(categories))
	}
}
