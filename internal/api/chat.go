package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/mock"
)

func (s *Server) chatCompletions(c *gin.Context) {
	var req mock.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Messages == nil {
		writeFlatError(c, http.StatusBadRequest, `Missing or invalid "messages" in request body`)
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
	content := mock.SelectContent(mode, req.Messages, req.MockFixedContents, s.contents)

	if stream {
		s.streamSSE(c, chatStreamFrames(req.Model, content))
		return
	}

	n := req.N
	if n <= 0 {
		n = 1
	}
	choices := make([]mock.ChatChoice, 0, n)
	for i := 0; i < n; i++ {
		choices = append(choices, mock.ChatChoice{
			Message:      mock.Message{Role: "assistant", Content: content},
			FinishReason: "stop",
			Index:        i,
		})
	}

	c.JSON(http.StatusOK, mock.ChatResponse{
		ID:      mock.NewID("chatcmpl-"),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Usage: mock.Usage{
			PromptTokens:     10,
			CompletionTokens: 50,
			TotalTokens:      60,
		},
		Choices: choices,
	})
}

// chatStreamFrames builds one chunk per token plus the final stop chunk. Every
// token chunk repeats the assistant role in its delta, matching the emulated
// API's wire traces.
func chatStreamFrames(model, content string) []any {
	id := mock.NewID("chatcmpl-")
	created := time.Now().Unix()

	tokens := mock.Tokenize(content)
	frames := make([]any, 0, len(tokens)+1)
	for _, tok := range tokens {
		frames = append(frames, mock.StreamChunk{
			ID:      id,
			Object:  "chat.completion.chunk",
			Created: created,
			Model:   model,
			Choices: []mock.ChunkChoice{{
				Index: 0,
				Delta: mock.Delta{Role: "assistant", Content: tok},
			}},
		})
	}

	stop := "stop"
	frames = append(frames, mock.StreamChunk{
		ID:      id,
		Object:  "chat.completion.chunk",
		Created: created,
		Model:   model,
		Choices: []mock.ChunkChoice{{
			Index:        0,
			Delta:        mock.Delta{},
			FinishReason: &stop,
		}},
	})
	return frames
}
