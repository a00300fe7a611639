// Package api exposes the application over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/ugparu/recdl/app"
	"github.com/ugparu/recdl/utils/lifecycle"
	"github.com/ugparu/recdl/utils/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Config selects the listen address and optional routes.
type Config struct {
	Addr  string
	Pprof bool
}

// Server serves the control routes of one App.
type Server struct {
	app    *app.App
	router *gin.Engine
	server *http.Server
	addr   net.Addr
	mgr    lifecycle.Manager[*Server]
	dead   chan struct{}
}

// New builds the router and the HTTP server. It does not listen yet.
func New(a *app.App, cfg Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), accessLog)
	if cfg.Pprof {
		pprof.Register(router)
	}

	s := &Server{
		app:    a,
		router: router,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		dead: make(chan struct{}),
	}
	s.routes()
	s.mgr = lifecycle.NewDefaultManager(s)
	logger.Debug(s, "Initialized and set up")
	return s
}

func (s *Server) routes() {
	s.router.GET("/device", s.getDevice)
	s.router.GET("/settings", s.getSettings)
	s.router.PUT("/settings", s.putSettings)
	s.router.GET("/compatibility", s.getCompatibility)
	s.router.POST("/style/reset", s.resetStyle)
	s.router.PUT("/style/:name", s.putStyle)
	s.router.PUT("/mode/:code", s.putMode)
	s.router.POST("/session/start", s.startSession)
	s.router.POST("/session/stop", s.stopSession)
	s.router.POST("/session/restart", s.restartSession)
	s.router.POST("/recording/start", s.startRecording)
	s.router.POST("/recording/stop", s.stopRecording)
	s.router.POST("/recording/toggle", s.toggleRecording)
	s.router.GET("/status", s.getStatus)
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	return s.mgr.Start(func(s *Server) error {
		ln, err := net.Listen("tcp", s.server.Addr)
		if err != nil {
			close(s.dead)
			return fmt.Errorf("api: listen %s: %w", s.server.Addr, err)
		}
		s.addr = ln.Addr()
		logger.Infof(s, "Listening on %s", s.addr)
		go func() {
			defer close(s.dead)
			if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(s, err.Error())
			}
		}()
		return nil
	})
}

// Addr returns the bound address once started.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Dead is closed when the server stopped serving.
func (s *Server) Dead() <-chan struct{} {
	return s.dead
}

// Close shuts the server down. Only the first call has any effect.
func (s *Server) Close() {
	s.mgr.Close()
}

func (s *Server) Release() {
	logger.Warning(s, "Stopping and closing")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		logger.Errorf(s, "Shutdown: %v", err)
	}
}

func (s *Server) String() string {
	return "HTTP_SERVER"
}

func accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	logger.Debugf("api", "%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}
