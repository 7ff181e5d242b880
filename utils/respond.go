package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"villa-backend/dto"
)

// WriteResponse serializes the envelope with its own status code.
// 204 responses carry no body.
func WriteResponse(c *gin.Context, resp *dto.APIResponse) {
	if resp.StatusCode == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(resp.StatusCode, resp)
}
