package utils

import (
	"github.com/gin-gonic/gin"

	"backend/models"
)

// JSONSuccess writes the standard success envelope.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, models.SuccessResponse(data))
}

// JSONError writes the standard error envelope.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, models.ErrorResponseBody(message))
}
