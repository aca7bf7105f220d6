package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"newsdesk/internal/config"
	mongoRepo "newsdesk/internal/infra/adapter/persistence/mongodb"
	"newsdesk/internal/infra/db"
	infraFeed "newsdesk/internal/infra/feed"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/tracing"

	artUC "newsdesk/internal/usecase/article"
	feedUC "newsdesk/internal/usecase/feed"
	projUC "newsdesk/internal/usecase/project"

	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hauth "newsdesk/internal/handler/http/auth"
	hfeed "newsdesk/internal/handler/http/feed"
	"newsdesk/internal/handler/http/middleware"
	hproject "newsdesk/internal/handler/http/project"
	"newsdesk/internal/handler/http/requestid"
)

func main() {
	// .env はローカル開発専用。無ければ環境変数のみで動く。
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN is not set; all gated routes will reject every request")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := db.Open(ctx, cfg.DatabaseURL, db.DefaultConnectionConfig())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(client); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()
	database := client.Database(cfg.DatabaseName)

	handler := setupServer(logger, database, cfg)
	runServer(ctx, logger, handler, cfg)
}

// setupServer wires repositories, use cases, routes, and middleware into the
// root HTTP handler.
func setupServer(logger *slog.Logger, database *mongo.Database, cfg *config.Config) http.Handler {
	artSvc := artUC.Service{Repo: mongoRepo.NewArticleRepo(database)}
	projSvc := projUC.Service{Repo: mongoRepo.NewProjectRepo(database)}
	feedSvc := feedUC.Service{
		Fetcher: infraFeed.NewRSSFetcher(&http.Client{Timeout: 15 * time.Second}),
	}

	gate := hauth.NewGate(cfg.AdminToken)

	mux := setupRoutes(database, cfg, artSvc, projSvc, feedSvc, gate, logger)
	return applyMiddleware(logger, mux, cfg)
}

// setupRoutes registers all HTTP routes (public and gated).
func setupRoutes(
	database *mongo.Database,
	cfg *config.Config,
	artSvc artUC.Service,
	projSvc projUC.Service,
	feedSvc feedUC.Service,
	gate *hauth.Gate,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	// 稼働確認と診断のエンドポイント（認証不要）
	mux.Handle("GET    /{$}", &hhttp.LiveHandler{Message: "World Politics News API running"})
	mux.Handle("GET    /api/hello", &hhttp.LiveHandler{Message: "Hello from the backend API!"})
	mux.Handle("GET    /test", &hhttp.DiagHandler{
		DB:              database,
		DatabaseURLSet:  cfg.DatabaseURL != "",
		DatabaseNameSet: cfg.DatabaseName != "",
		AdminTokenSet:   gate.Configured(),
	})
	mux.Handle("GET    /health", &hhttp.HealthHandler{DB: database, Version: cfg.Version})
	mux.Handle("GET    /metrics", hhttp.MetricsHandler())

	harticle.Register(mux, artSvc, gate, logger)
	hproject.Register(mux, projSvc, gate, logger)
	hfeed.Register(mux, feedSvc, logger)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Tracing → Rate Limit →
// Recovery → Logging → Body Limit → Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.Config) http.Handler {
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = limiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(cfg.CORSOrigins)(chain)
	return chain
}

// runServer starts the HTTP server and blocks until shutdown completes.
func runServer(ctx context.Context, logger *slog.Logger, handler http.Handler, cfg *config.Config) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
