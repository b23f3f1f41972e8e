package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type modelInfo struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	Object  string `json:"object"`
	OwnedBy string `json:"owned_by"`
}

var cannedModels = []modelInfo{
	{ID: "gpt-4", Created: 1687882410, Object: "model", OwnedBy: "openai"},
	{ID: "gpt-4-0613", Created: 1686744178, Object: "model", OwnedBy: "openai"},
	{ID: "gpt-3.5-turbo", Created: 1677649963, Object: "model", OwnedBy: "openai"},
	{ID: "dall-e-3", Created: 1698785189, Object: "model", OwnedBy: "openai"},
	{ID: "whisper-1", Created: 1677532384, Object: "model", OwnedBy: "openai"},
}

func (s *Server) listModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   cannedModels,
	})
}

// getModel echoes back whatever model ID was asked for; the mock pretends
// every model exists.
func (s *Server) getModel(c *gin.Context) {
	c.JSON(http.StatusOK, modelInfo{
		ID:      c.Param("model"),
		Created: time.Now().Unix() - 10000,
		Object:  "model",
		OwnedBy: "openai",
	})
}
