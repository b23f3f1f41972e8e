package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const mockImageURL = "https://images.unsplash.com/photo-1661956602926-db6b25f75947?ixlib=rb-4.0.3&ixid=M3wxMjA3fDF8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1298&q=80"

type imageRequest struct {
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
}

func (s *Server) generateImages(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		writeFlatError(c, http.StatusBadRequest, `Missing or invalid "prompt" in request body`)
		return
	}

	n := req.N
	if n <= 0 {
		n = 1
	}
	if n > 10 {
		n = 10
	}

	urls := make([]string, n)
	for i := range urls {
		urls[i] = mockImageURL
	}

	c.JSON(http.StatusOK, gin.H{
		"created": time.Now().Unix(),
		"data":    urls,
	})
}
