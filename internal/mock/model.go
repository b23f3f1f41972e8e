package mock

// OpenAI-compatible wire shapes for the completion endpoints.

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	N        int       `json:"n"`

	// Stream is decoded loosely so a non-boolean value can be rejected with a
	// 400 instead of a generic bind failure.
	Stream any `json:"stream"`

	// Mock controls, honored on top of the real API surface.
	MockType          string `json:"mockType"`
	MockFixedContents string `json:"mockFixedContents"`
}

// StreamFlag reports the requested stream mode; ok is false when the field is
// present but not a boolean.
func (r *ChatRequest) StreamFlag() (stream, ok bool) {
	switch v := r.Stream.(type) {
	case nil:
		return false, true
	case bool:
		return v, true
	}
	return false, false
}

type TextRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Stream any    `json:"stream"`

	MockType          string `json:"mockType"`
	MockFixedContents string `json:"mockFixedContents"`
}

func (r *TextRequest) StreamFlag() (stream, ok bool) {
	switch v := r.Stream.(type) {
	case nil:
		return false, true
	case bool:
		return v, true
	}
	return false, false
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Usage   Usage        `json:"usage"`
	Choices []ChatChoice `json:"choices"`
}

type ChatChoice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
	Index        int     `json:"index"`
}

// StreamChunk is one framed SSE message for chat streaming.
type StreamChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Created int64         `json:"created"`
	Model   string        `json:"model"`
	Choices []ChunkChoice `json:"choices"`
}

type ChunkChoice struct {
	Index        int     `json:"index"`
	Delta        Delta   `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

type Delta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

// TextResponse doubles as the non-streaming body and the per-token stream
// frame; stream frames carry no usage block.
type TextResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Usage   *Usage       `json:"usage,omitempty"`
	Choices []TextChoice `json:"choices"`
}

type TextChoice struct {
	Text         string  `json:"text"`
	Index        int     `json:"index"`
	Logprobs     any     `json:"logprobs"`
	FinishReason *string `json:"finish_reason"`
}
