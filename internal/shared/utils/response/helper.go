package response

import "github.com/gin-gonic/gin"

// RespondJSON writes the standard envelope every endpoint uses. Handlers
// pass nil for whichever of data and errs does not apply.
func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errs interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errs,
	})
}
