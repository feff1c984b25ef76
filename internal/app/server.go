package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/GoArmGo/ArcadeDex/internal/auth"
	"github.com/GoArmGo/ArcadeDex/internal/config"
	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/database/postgres"
	"github.com/GoArmGo/ArcadeDex/internal/graph"
	"github.com/GoArmGo/ArcadeDex/internal/handler"
	"github.com/GoArmGo/ArcadeDex/internal/usecase"
)

// runServer запускает HTTP сервер с GraphQL-эндпоинтом
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *postgres.Client,
	issuer *auth.TokenIssuer,
	authUseCase usecase.AuthUseCase,
	gameUseCase usecase.GameUseCase,
	gameImportPublisher ports.GameImportPublisher,
) error {
	resolver := graph.NewResolver(authUseCase, gameUseCase, gameImportPublisher, logger)
	schema := graph.MustSchema(resolver)
	healthHandler := handler.NewHealthHandler(dbClient.DB, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	// Сессионная cookie разбирается только на GraphQL-эндпоинте
	r.With(graph.SessionMiddleware(issuer)).Method(http.MethodPost, "/graphql", &relay.Handler{Schema: schema})
	r.Get("/healthz", healthHandler.Healthz)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("termination signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}
