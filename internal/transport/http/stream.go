package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/log"
)

const doneFrame = "data: [DONE]\n\n"

const eventBuffer = 64

// streamChat writes the turn as SSE frames, one JSON event per frame. Two
// timers guard the stream: a total ceiling for the whole turn and a silence
// timeout between consecutive events. Tripping either aborts the stream
// with an error frame; the partial answer is discarded, not saved.
func (s *Server) streamChat(c *gin.Context, req core.ChatRequest) {
	ctx := c.Request.Context()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	events := make(chan core.StreamEvent, eventBuffer)
	done := make(chan error, 1)

	// The turn itself runs on an uncancellable context: a dropped client or
	// tripped guard stops the writer, not the in-flight external calls.
	runCtx := context.WithoutCancel(ctx)
	go func() {
		_, err := s.agent.Run(runCtx, req, func(ev core.StreamEvent) {
			select {
			case events <- ev:
			case <-ctx.Done():
			}
		})
		done <- err
		close(events)
	}()

	total := time.NewTimer(s.cfg.StreamTimeout)
	defer total.Stop()
	idle := time.NewTimer(s.cfg.ChunkTimeout)
	defer idle.Stop()

	for {
		select {
		case ev, open := <-events:
			if !open {
				if err := <-done; err != nil {
					log.FromCtx(ctx).Error().Err(err).Str("session_id", req.SessionID).Msg("turn failed")
					writeFrame(c, flusher, core.StreamEvent{Type: core.EventError, Content: apologyMessage})
				}
				fmt.Fprint(c.Writer, doneFrame)
				flusher.Flush()
				return
			}
			writeFrame(c, flusher, ev)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(s.cfg.ChunkTimeout)

		case <-total.C:
			log.FromCtx(ctx).Warn().Str("session_id", req.SessionID).Msg("stream exceeded total ceiling")
			s.abortStream(c, flusher)
			return

		case <-idle.C:
			log.FromCtx(ctx).Warn().Str("session_id", req.SessionID).Msg("stream stalled between chunks")
			s.abortStream(c, flusher)
			return

		case <-ctx.Done():
			return
		}
	}
}

func (s *Server) abortStream(c *gin.Context, flusher http.Flusher) {
	writeFrame(c, flusher, core.StreamEvent{Type: core.EventError, Content: apologyMessage})
	fmt.Fprint(c.Writer, doneFrame)
	flusher.Flush()
}

func writeFrame(c *gin.Context, flusher http.Flusher, ev core.StreamEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
	flusher.Flush()
}
