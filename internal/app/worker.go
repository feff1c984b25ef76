package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/messaging/payloads"
	"github.com/GoArmGo/ArcadeDex/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ и обрабатывает задания импорта игр
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	gameUseCase usecase.GameUseCase,
	gameImportConsumer ports.GameImportConsumer,
) error {
	logger.Info("worker started, waiting for game import jobs")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Определяем функцию-обработчик для сообщений RabbitMQ
	messageHandler := func(ctx context.Context, payload payloads.GameImportPayload) error {
		logger.Info("processing game import job", "slug", payload.Slug)

		game, err := gameUseCase.GetOrImportGameBySlug(ctx, payload.Slug)
		if err != nil {
			logger.Error("game import job failed", "slug", payload.Slug, "error", err)
			return err
		}

		logger.Info("game import job done", "slug", payload.Slug, "game_id", game.ID)
		return nil
	}

	// Запускаем потребление сообщений
	if err := gameImportConsumer.StartConsumingGameImportRequests(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	<-ctx.Done()

	logger.Info("termination signal received, stopping worker")
	cancelWorker()

	time.Sleep(2 * time.Second) // Небольшая задержка, чтобы логи успели выйти
	logger.Info("worker stopped cleanly")

	return nil
}
