package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daylog_relay/internal/config"
	"daylog_relay/internal/controller"
	"daylog_relay/internal/service"
	"daylog_relay/pkg/logger"
	"daylog_relay/pkg/monitoring"
	"daylog_relay/pkg/security"
	"daylog_relay/pkg/tracing"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	tracer *sdktrace.TracerProvider
}

type services struct {
	relay *service.RelayService
}

type controllers struct {
	relay  *controller.RelayController
	health *controller.HealthController
}

func (a *App) initServices(cfg *config.Config) (*services, error) {
	provider, err := service.NewProvider(cfg.AI)
	if err != nil {
		return nil, err
	}

	return &services{
		relay: service.NewRelayService(provider),
	}, nil
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		relay:  controller.NewRelayController(s.relay),
		health: controller.NewHealthController(cfg.AI),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully",
		zap.String("model", cfg.AI.Model),
		zap.String("base_url", cfg.AI.BaseURL),
	)

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{Config: cfg}

	services, err := app.initServices(cfg)
	if err != nil {
		return nil, err
	}
	controllers := app.initControllers(services, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("daylog-relay", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
			return nil, err
		}
		app.tracer = tp
	}

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app, nil
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	logger.Log.Info("Server exiting")
}
