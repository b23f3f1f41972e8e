package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRootBannerAndNotFound(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Hello World! This is MockAI", rr.Body.String())

	rr = doJSON(router, http.MethodGet, "/no/such/route", nil, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "Page not found", rr.Body.String())
}

func TestDelayHeaderOverride(t *testing.T) {
	_, router := newTestServer(t)

	start := time.Now()
	rr := doJSON(router, http.MethodGet, "/v1/models", nil, map[string]string{
		"x-set-response-delay-ms": "50",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	// Non-numeric header falls back to the default (zero here).
	start = time.Now()
	rr = doJSON(router, http.MethodGet, "/v1/models", nil, map[string]string{
		"x-set-response-delay-ms": "soon",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Less(t, time.Since(start), 40*time.Millisecond)
}

func TestRequestIDHeader(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodGet, "/v1/models", nil, nil)
	require.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = doJSON(router, http.MethodGet, "/v1/models", nil, map[string]string{"X-Request-ID": "req-42"})
	require.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	doJSON(router, http.MethodGet, "/v1/models", nil, nil)

	rr := doJSON(router, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "mockai_http_requests_total")
}

func TestChatCompletionNonStream(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/chat/completions", map[string]any{
		"model":    "gpt-4",
		"messages": []map[string]string{{"role": "user", "content": "hello there"}},
		"mockType": "echo",
		"n":        2,
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	require.Equal(t, "chat.completion", body["object"])
	require.True(t, strings.HasPrefix(body["id"].(string), "chatcmpl-"))

	got := body["choices"].([]any)
	require.Len(t, got, 2)
	for i, raw := range got {
		choice := raw.(map[string]any)
		require.EqualValues(t, i, choice["index"])
		require.Equal(t, "stop", choice["finish_reason"])
		msg := choice["message"].(map[string]any)
		require.Equal(t, "assistant", msg["role"])
		require.Equal(t, "hello there", msg["content"])
	}

	usage := body["usage"].(map[string]any)
	require.EqualValues(t, 60, usage["total_tokens"])
}

func TestChatCompletionFixedMode(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/chat/completions", map[string]any{
		"model":             "gpt-4",
		"messages":          []map[string]string{{"role": "user", "content": "hi"}},
		"mockType":          "fixed",
		"mockFixedContents": "always this",
	}, nil)
	body := decodeBody(t, rr)
	msg := body["choices"].([]any)[0].(map[string]any)["message"].(map[string]any)
	require.Equal(t, "always this", msg["content"])
}

func TestChatCompletionValidation(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/chat/completions", map[string]any{"model": "gpt-4"}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `Missing or invalid "messages" in request body`, decodeBody(t, rr)["error"])

	rr = doJSON(router, http.MethodPost, "/v1/chat/completions", map[string]any{
		"model":    "gpt-4",
		"messages": []map[string]string{{"role": "user", "content": "hi"}},
		"stream":   "yes",
	}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `Invalid "stream" in request body`, decodeBody(t, rr)["error"])
}

func TestTextCompletionNonStream(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/completions", map[string]any{
		"model":    "gpt-3.5-turbo",
		"prompt":   "Once upon a time",
		"mockType": "echo",
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	body := decodeBody(t, rr)
	require.Equal(t, "text_completion", body["object"])
	choice := body["choices"].([]any)[0].(map[string]any)
	require.Equal(t, "Once upon a time", choice["text"])
	require.Equal(t, "stop", choice["finish_reason"])

	rr = doJSON(router, http.MethodPost, "/v1/completions", map[string]any{"model": "gpt-3.5-turbo"}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `Missing or invalid "prompt" in request body`, decodeBody(t, rr)["error"])
}

func TestEmbeddings(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/embeddings", map[string]any{
		"model": "text-embedding-ada-002",
		"input": "embed me",
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	vec := data[0].(map[string]any)["embedding"].([]any)
	require.Len(t, vec, 1536)
	require.Equal(t, "text-embedding-ada-002", body["model"])

	rr = doJSON(router, http.MethodPost, "/v1/embeddings", map[string]any{"model": "text-embedding-ada-002"}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `Missing or invalid "input" in request body`, decodeBody(t, rr)["error"])

	rr = doJSON(router, http.MethodPost, "/v1/embeddings", map[string]any{"input": "embed me"}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `Missing or invalid "model" in request body`, decodeBody(t, rr)["error"])
}

func TestModels(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodGet, "/v1/models", nil, nil)
	body := decodeBody(t, rr)
	require.Equal(t, "list", body["object"])
	data := body["data"].([]any)
	require.Equal(t, "gpt-4", data[0].(map[string]any)["id"])

	rr = doJSON(router, http.MethodGet, "/v1/models/my-custom-model", nil, nil)
	model := decodeBody(t, rr)
	require.Equal(t, "my-custom-model", model["id"])
	require.Equal(t, "openai", model["owned_by"])
}

func TestModeration(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/moderations", map[string]any{"input": "some text"}, nil)
	body := decodeBody(t, rr)
	require.True(t, strings.HasPrefix(body["id"].(string), "modr-"))
	require.Equal(t, "text-moderation-latest", body["model"])
	require.Len(t, body["results"].([]any), 1)

	rr = doJSON(router, http.MethodPost, "/v1/moderations", map[string]any{"input": []string{"a", "b", "c"}}, nil)
	require.Len(t, decodeBody(t, rr)["results"].([]any), 3)
}

func TestImageGeneration(t *testing.T) {
	_, router := newTestServer(t)

	rr := doJSON(router, http.MethodPost, "/v1/images/generations", map[string]any{
		"prompt": "a goose on a bicycle",
		"n":      25,
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	data := decodeBody(t, rr)["data"].([]any)
	require.Len(t, data, 10)

	rr = doJSON(router, http.MethodPost, "/v1/images/generations", map[string]any{"n": 1}, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, `Missing or invalid "prompt" in request body`, decodeBody(t, rr)["error"])
}
