package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Abusha-Ansari/Split-Karo/internal/auth"
	"github.com/Abusha-Ansari/Split-Karo/internal/config"
	"github.com/Abusha-Ansari/Split-Karo/internal/metrics"
	"github.com/Abusha-Ansari/Split-Karo/internal/middleware"
	"github.com/Abusha-Ansari/Split-Karo/internal/service"
	"github.com/Abusha-Ansari/Split-Karo/internal/storage/sqlstore"
	"github.com/Abusha-Ansari/Split-Karo/pkg/api/apiconnect"
	"github.com/Abusha-Ansari/Split-Karo/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("JWT_SECRET is not set, using the development secret")
	}

	store, err := sqlstore.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Database.Driver)

	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	// Auth endpoints accept anonymous callers; everything else needs a token.
	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)
	protected := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(service.NewAuthService(authenticator, jwtManager, store), public))
	mux.Handle(apiconnect.NewProfileServiceHandler(service.NewProfileService(store), protected))
	mux.Handle(apiconnect.NewTripServiceHandler(service.NewTripService(store, m), protected))
	mux.Handle(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(store, m), protected))
	mux.Handle(apiconnect.NewSettlementServiceHandler(service.NewSettlementService(store, m), protected))

	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			slog.Warn("Health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	handler := middleware.RequestLogger(middleware.CORS(cfg.Server.CORSOrigin)(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
