package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fleetcore/helmsman/internal/config"
	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/service/agent"
	"github.com/fleetcore/helmsman/pkg/log"
)

// Server exposes the conversation pipeline over HTTP. A single POST
// endpoint serves both buffered JSON and SSE responses depending on what
// the client asks for.
type Server struct {
	cfg   *config.ServerConfig
	agent *agent.Agent
	srv   *http.Server
}

func NewServer(cfg *config.ServerConfig, ag *agent.Agent) *Server {
	return &Server{cfg: cfg, agent: ag}
}

func (s *Server) Start(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(ctx))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", s.handleHealthz)
	r.POST("/api/chat", s.handleChat)

	s.srv = &http.Server{
		Addr:        s.cfg.Addr,
		Handler:     r,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	log.FromCtx(ctx).Info().Str("addr", s.cfg.Addr).Msg("http server listening")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": core.AppName,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func requestLogger(base context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.FromCtx(base).Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	}
}
