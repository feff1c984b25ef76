package ports

import (
	"context"

	"github.com/GoArmGo/ArcadeDex/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// Методы Get* возвращают (nil, nil), если запись не найдена.
type UserStorage interface {
	// CreateUser создает пользователя. Нарушение уникальности email/username
	// возвращается как apperrors.DuplicateCredential, прочие ошибки создания —
	// как apperrors.ValidationFailure.
	CreateUser(ctx context.Context, user *domain.User) error

	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserWithGames загружает пользователя вместе с его коллекцией игр.
	GetUserWithGames(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// AddGameToUser добавляет игру в коллекцию пользователя.
	// Повторное добавление той же игры — no-op.
	AddGameToUser(ctx context.Context, userID, gameID uuid.UUID) error
}

// GameStorage определяет методы для взаимодействия с каталогом игр.
type GameStorage interface {
	SaveGame(ctx context.Context, game *domain.Game) error
	GetGameByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	GetGameBySlug(ctx context.Context, slug string) (*domain.Game, error)
	ListGames(ctx context.Context, page, perPage int) ([]domain.Game, error)
}
