// Package server serves the exposure dashboard over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/config"
	"github.com/etnz/exposure/date"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server answers dashboard requests over one loaded dataset.
type Server struct {
	dash  *exposure.Dashboard
	cfg   *config.Config
	cache *exposure.CSVCache
	log   *zap.Logger

	// Today is the reference day of relative dates and of the default
	// window, date.Today by default.
	Today func() date.Date
}

// New returns a server over d. A nil log discards the logs.
func New(d *exposure.Dashboard, cfg *config.Config, log *zap.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		dash:  d,
		cfg:   cfg,
		cache: exposure.NewCSVCache(cfg.Server.CacheSize),
		log:   log,
		Today: date.Today,
	}
}

// Router returns the HTTP routes of the dashboard.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("expo"))
	r.Use(s.requestLogger())
	if len(s.cfg.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: s.cfg.Server.CORSOrigins,
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Content-Type", "X-Requested-With"},
		}))
	}

	r.GET("/healthcheck", s.healthCheck)
	r.GET("/", s.dashboard)

	api := r.Group("/api")
	{
		api.GET("/options", s.options)
		api.GET("/maturities", s.maturities)
		api.GET("/report", s.report)
		api.GET("/exposure.csv", s.exposureCSV)
	}
	r.GET("/charts/:chart", s.chart)
	return r
}

// Run serves on addr until ctx is done.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("serving dashboard", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
