package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every handler returns. Status is carried for the
// middleware but never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the JSON error body and pushes err onto the gin error
// stack for the logging middleware. msg is what the client sees; err stays
// server-side.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
