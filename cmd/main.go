package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saikothasan/neno/internal/config"
	"github.com/saikothasan/neno/internal/gateway"
	"github.com/saikothasan/neno/internal/handler"
	"github.com/saikothasan/neno/internal/history"
	"github.com/saikothasan/neno/internal/logger"
	"github.com/saikothasan/neno/internal/metrics"
	"github.com/saikothasan/neno/internal/service"

	_ "github.com/saikothasan/neno/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Neno API
// @version 1.0
// @description Name and username generation gateway.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	slog.SetDefault(log)

	upstream, err := gateway.NewClient(log, cfg.Upstream)
	if err != nil {
		log.Error("upstream client error", "error", err)
		os.Exit(1)
	}
	generateService := service.NewGenerateService(log, upstream)

	if cfg.History.Enable {
		switch cfg.History.Backend {
		case config.HistoryBackendRedis:
			redisStore := history.NewRedisStore(
				cfg.RedisConfig.Addr,
				cfg.RedisConfig.Password,
				cfg.RedisConfig.DB,
				cfg.RedisConfig.TTL,
				cfg.History.Capacity,
			)
			defer redisStore.Close()
			if err := redisStore.Ping(ctx); err != nil {
				log.Warn("redis unreachable at startup", "addr", cfg.RedisConfig.Addr, "error", err)
			}
			generateService.SetHistoryStore(redisStore)
		default:
			generateService.SetHistoryStore(history.NewMemoryStore(
				cfg.History.Capacity,
				history.WithMaxClients(cfg.History.MaxClients),
			))
		}
		log.Info("history enabled", "backend", cfg.History.Backend, "capacity", cfg.History.Capacity)
	}

	g := handler.NewGenerateHandler(log, generateService)

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", g.Generate)
		r.Get("/history", g.History)
		r.Delete("/history", g.ClearHistory)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Info("server started", "port", cfg.Server.Port, "upstream", cfg.Upstream.URL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}
	log.Info("server stopped")
}
