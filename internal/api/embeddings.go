package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/mock"
)

const embeddingDims = 1536

type embeddingsRequest struct {
	Model string `json:"model"`
	Input any    `json:"input"`
}

func (s *Server) createEmbeddings(c *gin.Context) {
	var req embeddingsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Input == nil {
		writeFlatError(c, http.StatusBadRequest, `Missing or invalid "input" in request body`)
		return
	}
	if req.Model == "" {
		writeFlatError(c, http.StatusBadRequest, `Missing or invalid "model" in request body`)
		return
	}

	embedding := make([]float64, embeddingDims)
	for i := range embedding {
		embedding[i] = mock.RandFloat64()
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data": []gin.H{{
			"object":    "embedding",
			"index":     0,
			"embedding": embedding,
		}},
		"model": req.Model,
		"usage": gin.H{
			"prompt_tokens": 5,
			"total_tokens":  5,
		},
	})
}
