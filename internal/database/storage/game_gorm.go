package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// GormGameStorage реализует интерфейс ports.GameStorage с использованием GORM
type GormGameStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormGameStorage создает новый экземпляр GormGameStorage
func NewGormGameStorage(db *gorm.DB, logger *slog.Logger) *GormGameStorage {
	return &GormGameStorage{db: db, logger: logger}
}

// SaveGame сохраняет игру в бд
func (s *GormGameStorage) SaveGame(ctx context.Context, game *domain.Game) error {
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	now := time.Now()
	game.CreatedAt = now
	game.UpdatedAt = now

	result := s.db.WithContext(ctx).Create(game)
	if result.Error != nil {
		return fmt.Errorf("ошибка при сохранении игры в БД: %w", result.Error)
	}

	s.logger.Info("game saved", "game_id", game.ID, "slug", game.Slug)
	return nil
}

// GetGameByID получает игру по ID. Возвращает (nil, nil), если запись не найдена.
func (s *GormGameStorage) GetGameByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var game domain.Game
	result := s.db.WithContext(ctx).First(&game, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении игры по ID: %w", result.Error)
	}
	return &game, nil
}

// GetGameBySlug получает игру по slug внешнего каталога.
// Возвращает (nil, nil), если запись не найдена.
func (s *GormGameStorage) GetGameBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	var game domain.Game
	result := s.db.WithContext(ctx).Where("slug = ?", slug).First(&game)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении игры по slug: %w", result.Error)
	}
	return &game, nil
}

// ListGames получает список игр из каталога с пагинацией
func (s *GormGameStorage) ListGames(ctx context.Context, page, perPage int) ([]domain.Game, error) {
	var games []domain.Game
	offset := (page - 1) * perPage

	result := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&games)

	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка игр из БД: %w", result.Error)
	}
	return games, nil
}
