package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/catalog/internal/catalog/domain"
	"github.com/smallbiznis/catalog/internal/config"
	"github.com/smallbiznis/catalog/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the HTTP layer: engine, metrics, routes and the server
// lifecycle.
var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Provide(New),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

// Params declares the server dependencies.
type Params struct {
	fx.In

	Config  config.Config
	Log     *zap.Logger
	Catalog domain.Service
	Store   store.Store
	Metrics *HTTPMetrics
	Engine  *gin.Engine
}

// Server exposes the catalog over HTTP.
type Server struct {
	cfg     config.Config
	log     *zap.Logger
	catalog domain.Service
	store   store.Store
	metrics *HTTPMetrics
	engine  *gin.Engine
}

func New(p Params) *Server {
	return &Server{
		cfg:     p.Config,
		log:     p.Log.Named("http.server"),
		catalog: p.Catalog,
		store:   p.Store,
		metrics: p.Metrics,
		engine:  p.Engine,
	}
}

// NewEngine builds the gin engine with the shared middleware chain.
func NewEngine(cfg config.Config, metrics *HTTPMetrics) *gin.Engine {
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		CorrelationMiddleware(),
		RequestLogger(),
		metrics.Middleware(),
		ErrorHandlingMiddleware(),
	)
	return engine
}

func registerRoutes(s *Server) {
	s.engine.GET("/health", s.Health)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	products := s.engine.Group("/products")
	products.POST("", s.CreateProduct)
	products.GET("", s.ListProducts)
	products.GET("/stats", s.GetProductStats)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.PATCH("/:id", s.PatchProduct)
	products.DELETE("/:id", s.DeleteProduct)
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				s.log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
			defer cancel()

			s.log.Info("http server shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	})
}
