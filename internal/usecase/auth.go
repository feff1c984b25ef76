package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// AuthUseCase определяет интерфейс для бизнес-логики аутентификации
// и чтения данных текущего пользователя.
type AuthUseCase interface {
	// Register создает пользователя и выпускает сессионный токен.
	// Пароль хэшируется до обращения к хранилищу.
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)

	// Login проверяет email/пароль и выпускает сессионный токен.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	// CurrentUser возвращает пользователя по идентификатору сессии.
	// Возвращает (nil, nil), если пользователь не найден: отсутствие
	// пользователя — не ошибка для этой операции.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// UserGames возвращает коллекцию игр пользователя.
	// Если запись пользователя исчезла при живой сессии — NotFound.
	UserGames(ctx context.Context, userID uuid.UUID) ([]domain.Game, error)

	// TrackGame добавляет игру в коллекцию пользователя.
	TrackGame(ctx context.Context, userID, gameID uuid.UUID) (*domain.Game, error)
}
