package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/resource"
)

// errorBody is the structured error envelope used by the stateful resource
// endpoints. Param marshals to null when no parameter is at fault.
type errorBody struct {
	Message string  `json:"message"`
	Type    string  `json:"type"`
	Param   *string `json:"param"`
	Code    string  `json:"code"`
}

func writeError(c *gin.Context, err *resource.Error) {
	body := errorBody{
		Message: err.Message,
		Type:    resource.CodeInvalidRequest,
		Code:    err.Code,
	}
	if err.Param != "" {
		p := err.Param
		body.Param = &p
	}
	c.JSON(err.Status, gin.H{"error": body})
	c.Abort()
}

// writeFlatError is the plain string envelope used by the stateless
// completion-style endpoints.
func writeFlatError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
	c.Abort()
}
