package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the error envelope. The detail field carries the
// human-readable message the admin/storefront UI surfaces verbatim.
func Error(c *gin.Context, statusCode int, code string, detail string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"detail":  detail,
		"error": gin.H{
			"code":   code,
			"detail": detail,
		},
	})
}
