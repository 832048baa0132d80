package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/pkg/log"
)

const apologyMessage = "Sorry, something went wrong while preparing that answer. Please try again."

func (s *Server) handleChat(c *gin.Context) {
	var req core.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages must not be empty"})
		return
	}

	if wantsStream(c) {
		s.streamChat(c, req)
		return
	}
	s.bufferedChat(c, req)
}

// wantsStream checks the Accept header; clients that negotiate
// text/event-stream get SSE frames, everyone else a single JSON body.
func wantsStream(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

func (s *Server) bufferedChat(c *gin.Context, req core.ChatRequest) {
	ctx := c.Request.Context()

	type result struct {
		answer string
		err    error
	}
	done := make(chan result, 1)

	// A turn is never cancelled mid-flight once started; the guard below
	// only caps how long the client waits for it.
	runCtx := context.WithoutCancel(ctx)
	go func() {
		answer, err := s.agent.Run(runCtx, req, func(core.StreamEvent) {})
		done <- result{answer: answer, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			log.FromCtx(ctx).Error().Err(res.err).Str("session_id", req.SessionID).Msg("turn failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": apologyMessage})
			return
		}
		c.JSON(http.StatusOK, core.ChatResponse{Message: res.answer, Model: s.agent.Model()})
	case <-time.After(s.cfg.StreamTimeout):
		log.FromCtx(ctx).Warn().Str("session_id", req.SessionID).Msg("turn exceeded total ceiling")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": apologyMessage})
	}
}
