package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mymessages-post-service/internal/delivery/http/middleware"
	post_http "mymessages-post-service/internal/delivery/http/post"
	"mymessages-post-service/internal/logger"
	"mymessages-post-service/internal/metrics"
)

type Server struct {
	engine  *gin.Engine
	address string
	port    int
	log     *logger.Logger
	server  *http.Server
}

func NewServer(
	postAPI *post_http.PostHTTPService,
	auth gin.HandlerFunc,
	imagesDir string,
	address string,
	port int,
	env string,
	log *logger.Logger,
	m metrics.MetricsProvider,
) *Server {
	if env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS())
	engine.Use(middleware.Metrics(m))

	engine.Static("/images", imagesDir)
	postAPI.RegisterRoutes(engine, auth)

	return &Server{
		engine:  engine,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
