package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/mock"
)

func (s *Server) textCompletions(c *gin.Context) {
	var req mock.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		writeFlatError(c, http.StatusBadRequest, `Missing or invalid "prompt" in request body`)
		return
	}
	stream, ok := req.StreamFlag()
	if !ok {
		writeFlatError(c, http.StatusBadRequest, `Invalid "stream" in request body`)
		return
	}

	mode := req.MockType
	if mode == "" {
		mode = s.cfg.MockType
	}
	content := mock.SelectPromptContent(mode, req.Prompt, req.MockFixedContents, s.contents)

	if stream {
		s.streamSSE(c, textStreamFrames(req.Model, content))
		return
	}

	n := req.N
	if n <= 0 {
		n = 1
	}
	stop := "stop"
	choices := make([]mock.TextChoice, 0, n)
	for i := 0; i < n; i++ {
		choices = append(choices, mock.TextChoice{
			Text:         content,
			Index:        i,
			FinishReason: &stop,
		})
	}

	c.JSON(http.StatusOK, mock.TextResponse{
		ID:      mock.NewID("cmpl-"),
		Object:  "text_completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Usage: &mock.Usage{
			PromptTokens:     10,
			CompletionTokens: 50,
			TotalTokens:      60,
		},
		Choices: choices,
	})
}

func textStreamFrames(model, content string) []any {
	id := mock.NewID("cmpl-")
	created := time.Now().Unix()

	tokens := mock.Tokenize(content)
	frames := make([]any, 0, len(tokens)+1)
	for _, tok := range tokens {
		frames = append(frames, mock.TextResponse{
			ID:      id,
			Object:  "text_completion",
			Created: created,
			Model:   model,
			Choices: []mock.TextChoice{{Text: tok, Index: 0}},
		})
	}

	stop := "stop"
	frames = append(frames, mock.TextResponse{
		ID:      id,
		Object:  "text_completion",
		Created: created,
		Model:   model,
		Choices: []mock.TextChoice{{Index: 0, FinishReason: &stop}},
	})
	return frames
}
