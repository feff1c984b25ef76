package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoArmGo/ArcadeDex/internal/apperrors"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// GormUserStorage реализует интерфейс ports.UserStorage с использованием GORM
type GormUserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUserStorage создает новый экземпляр GormUserStorage
func NewGormUserStorage(db *gorm.DB, logger *slog.Logger) *GormUserStorage {
	return &GormUserStorage{db: db, logger: logger}
}

// CreateUser создает пользователя в бд.
// Нарушение уникальности email/username отдается как apperrors.DuplicateCredential,
// прочие ошибки создания — как apperrors.ValidationFailure с сообщением драйвера.
func (s *GormUserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperrors.DuplicateCredential(result.Error)
		}
		s.logger.Error("failed to insert user", "email", user.Email, "error", result.Error)
		return apperrors.ValidationFailure(result.Error)
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username)
	return nil
}

// GetUserByID получает пользователя по ID. Возвращает (nil, nil), если запись не найдена.
func (s *GormUserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по ID: %w", result.Error)
	}
	return &user, nil
}

// GetUserByEmail получает пользователя по email (точное совпадение).
// Возвращает (nil, nil), если запись не найдена.
func (s *GormUserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", result.Error)
	}
	return &user, nil
}

// GetUserWithGames загружает пользователя вместе с коллекцией игр (Preload отношения).
func (s *GormUserStorage) GetUserWithGames(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Preload("Games").First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя с играми: %w", result.Error)
	}
	return &user, nil
}

// AddGameToUser добавляет игру в коллекцию пользователя через связь many2many.
// Повторное добавление той же игры не создает дубликата.
func (s *GormUserStorage) AddGameToUser(ctx context.Context, userID, gameID uuid.UUID) error {
	user := domain.User{ID: userID}
	game := domain.Game{ID: gameID}

	if err := s.db.WithContext(ctx).Model(&user).Association("Games").Append(&game); err != nil {
		s.logger.Error("failed to attach game to user", "user_id", userID, "game_id", gameID, "error", err)
		return fmt.Errorf("ошибка при добавлении игры в коллекцию: %w", err)
	}

	s.logger.Info("game attached to user", "user_id", userID, "game_id", gameID)
	return nil
}
