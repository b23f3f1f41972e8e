package api

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// streamSSE emits the prepared frames over text/event-stream, one frame per
// pacing tick, then the [DONE] sentinel. Frames are never reordered or
// dropped; if the peer disconnects mid-stream the pacing timer is released and
// no further frames are written.
func (s *Server) streamSSE(c *gin.Context, frames []any) {
	w := c.Writer
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	interval := time.Duration(s.cfg.StreamIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	bw := bufio.NewWriter(w)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for _, frame := range frames {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := writeSSE(bw, frame); err != nil {
			return
		}
		if err := bw.Flush(); err != nil {
			return
		}
		w.Flush()
	}

	if _, err := fmt.Fprint(bw, "data: [DONE]\n\n"); err != nil {
		return
	}
	if err := bw.Flush(); err != nil {
		return
	}
	w.Flush()
}

func writeSSE(w *bufio.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
		return err
	}
	return nil
}
