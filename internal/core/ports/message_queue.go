package ports

import (
	"context"

	"github.com/GoArmGo/ArcadeDex/internal/messaging/payloads"
)

// GameImportPublisher определяет методы для публикации заданий на импорт игр.
// Этот интерфейс используется GraphQL-резолвером importGame.
type GameImportPublisher interface {
	PublishGameImportRequest(ctx context.Context, payload payloads.GameImportPayload) error
}

// GameImportConsumer определяет методы для потребления заданий на импорт игр,
// будет использоваться воркером для получения задач из очереди.
type GameImportConsumer interface {
	// StartConsumingGameImportRequests начинает прослушивание очереди заданий импорта.
	// Принимает функцию-обработчик, которая будет вызываться для каждого полученного сообщения.
	StartConsumingGameImportRequests(ctx context.Context, handler func(context.Context, payloads.GameImportPayload) error) error
}
