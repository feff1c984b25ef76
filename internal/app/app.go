package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/ArcadeDex/internal/auth"
	"github.com/GoArmGo/ArcadeDex/internal/config"
	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/database/postgres"
	"github.com/GoArmGo/ArcadeDex/internal/usecase"
)

type App struct {
	Config             *config.Config
	logger             *slog.Logger
	dbClient           *postgres.Client
	issuer             *auth.TokenIssuer
	authUseCase        usecase.AuthUseCase
	gameUseCase        usecase.GameUseCase
	gameImportProducer ports.GameImportPublisher
	gameImportConsumer ports.GameImportConsumer
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *postgres.Client,
	issuer *auth.TokenIssuer,
	authUseCase usecase.AuthUseCase,
	gameUseCase usecase.GameUseCase,
	gameImportProducer ports.GameImportPublisher,
	gameImportConsumer ports.GameImportConsumer,
) *App {
	return &App{
		Config:             cfg,
		logger:             logger,
		dbClient:           dbClient,
		issuer:             issuer,
		authUseCase:        authUseCase,
		gameUseCase:        gameUseCase,
		gameImportProducer: gameImportProducer,
		gameImportConsumer: gameImportConsumer,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.dbClient, a.issuer, a.authUseCase, a.gameUseCase, a.gameImportProducer)

	case "worker":
		err = runWorker(ctx, a.logger, a.gameUseCase, a.gameImportConsumer)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	a.logger.Info("shutting down")

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("stopped cleanly")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если publisher/consumer имеют методы Close — вызываем их
	if closer, ok := a.gameImportProducer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if closer, ok := a.gameImportConsumer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
