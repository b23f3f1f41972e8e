package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungtweek/mockai/internal/logger"
)

const delayHeader = "x-set-response-delay-ms"

// DelayGate applies the artificial response delay before any handler logic
// runs. A numeric x-set-response-delay-ms header overrides the process-wide
// default; anything else falls back to it.
func DelayGate(defaultMs int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ms := defaultMs
		if h := c.GetHeader(delayHeader); h != "" {
			if n, err := strconv.Atoi(h); err == nil && n > 0 {
				ms = n
			}
		}
		if ms > 0 {
			sleepWithContext(c.Request.Context(), time.Duration(ms)*time.Millisecond)
		}
		c.Next()
	}
}

// RequestID tags every request with an opaque correlation ID, exposed on the
// response and picked up by the request logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs one line per request, warn for 4xx, error for 5xx.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"durationMs", time.Since(start).Milliseconds(),
			"requestId", c.GetString("request_id"),
		}

		switch {
		case status >= 500:
			logger.Log.Errorw("[api] request", fields...)
		case status >= 400:
			logger.Log.Warnw("[api] request", fields...)
		default:
			logger.Log.Infow("[api] request", fields...)
		}
	}
}

// BodyLimit caps JSON request bodies. Multipart uploads are exempt; parts have
// their own 64 MiB limit enforced by the upload lifecycle.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		ct := c.GetHeader("Content-Type")
		if !strings.HasPrefix(ct, "multipart/form-data") {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return
	case <-t.C:
		return
	}
}
