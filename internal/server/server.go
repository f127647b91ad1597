package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relay-chat/config"
	"relay-chat/internal/handler"
	"relay-chat/internal/middleware"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	Messenger *handler.MessengerHandler
	Upload    *handler.UploadHandler
	Health    *handler.HealthHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// Engine exposes the router, mainly for httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

var rejectedVerbs = []string{http.MethodPut, http.MethodPatch, http.MethodDelete}

func (s *Server) SetupRoutes(handlers *Handlers) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.SecureHeaders(s.logger, s.config.AppMode != ReleaseMode))

	if handlers.Health != nil {
		s.engine.GET("/ping", handlers.Health.Ping)
		s.engine.GET("/health", handlers.Health.Health)
	}

	auth := s.engine.Group("/v1/auth")
	{
		auth.OPTIONS("", middleware.Preflight(handler.AuthAllowMethods))
		auth.GET("", handlers.Auth.Get)
		auth.POST("", handlers.Auth.Post)
		auth.Match(rejectedVerbs, "", handler.InvalidMethod)
	}

	messenger := s.engine.Group("/v1/messenger")
	{
		messenger.OPTIONS("", middleware.Preflight(handler.MessengerAllowMethods))
		messenger.GET("", handlers.Messenger.Get)
		messenger.POST("", handlers.Messenger.Post)
		messenger.Match(rejectedVerbs, "", handler.InvalidMethod)
	}

	upload := s.engine.Group("/v1/upload")
	{
		upload.OPTIONS("", middleware.Preflight(handler.UploadAllowMethods))
		upload.POST("", handlers.Upload.Create)
		upload.Match(append([]string{http.MethodGet}, rejectedVerbs...), "", handlers.Upload.MethodNotAllowed)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
