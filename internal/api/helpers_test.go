package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungtweek/mockai/internal/config"
	"github.com/yungtweek/mockai/internal/resource"
)

func testConfig() config.Config {
	return config.Config{
		Port:                   5001,
		RequestSizeLimit:       1 << 20,
		MockType:               "random",
		StreamIntervalMs:       2,
		BatchCompletionDelayMs: 30,
	}
}

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	registry := resource.NewRegistry(time.Duration(cfg.BatchCompletionDelayMs) * time.Millisecond)
	srv := New(cfg, registry, []string{"canned response one", "canned response two"})
	return srv, srv.Router()
}

func doJSON(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func doMultipart(router *gin.Engine, path, field, filename string, content []byte, extra map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile(field, filename)
	_, _ = fw.Write(content)
	for k, v := range extra {
		_ = mw.WriteField(k, v)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v\nbody: %s", err, rr.Body.String())
	}
	return body
}

func errorField(t *testing.T, rr *httptest.ResponseRecorder, key string) any {
	t.Helper()
	body := decodeBody(t, rr)
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("missing structured error in body: %s", rr.Body.String())
	}
	return errObj[key]
}
