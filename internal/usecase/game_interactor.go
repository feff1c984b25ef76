package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// gameUseCase implements GameUseCase
type gameUseCase struct {
	gameStorage ports.GameStorage
	gameFetcher GameFetcher
	fileStorage FileStorage
	logger      *slog.Logger
}

// NewGameUseCase создает новый экземпляр GameUseCase
func NewGameUseCase(
	gameStorage ports.GameStorage,
	gameFetcher GameFetcher,
	fileStorage FileStorage,
	logger *slog.Logger,
) GameUseCase {
	return &gameUseCase{
		gameStorage: gameStorage,
		gameFetcher: gameFetcher,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// GetOrImportGameBySlug получает игру по slug каталога.
// Сначала ищет в локальной бд. Если не найдено, получает метаданные из
// внешнего каталога, загружает обложку в S3, сохраняет в бд и возвращает.
func (uc *gameUseCase) GetOrImportGameBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	// 1. Попытка получить игру из собственной базы данных
	game, err := uc.gameStorage.GetGameBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении игры из БД по slug: %w", err)
	}
	if game != nil {
		uc.logger.Info("game found in local DB", "slug", slug, "game_id", game.ID)
		return game, nil
	}

	// 2. Если игры нет в бд, получаем метаданные из внешнего каталога
	uc.logger.Info("game not found in DB, fetching from catalog", "slug", slug)

	fetched, err := uc.gameFetcher.FetchGameBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении игры из каталога по slug %s: %w", slug, err)
	}
	if fetched == nil {
		return nil, fmt.Errorf("usecase: игра со slug %s не найдена во внешнем каталоге", slug)
	}

	// 3. Скачиваем обложку и загружаем ее в S3
	if fetched.OriginalCoverURL != "" {
		coverURL, err := uc.uploadCover(ctx, fetched)
		if err != nil {
			return nil, err
		}
		fetched.CoverURL = coverURL
	}

	// 4. Сохраняем игру в собственной бд
	if err := uc.gameStorage.SaveGame(ctx, fetched); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении игры %s в локальной БД: %w", slug, err)
	}

	uc.logger.Info("game imported", "slug", slug, "game_id", fetched.ID)
	return fetched, nil
}

// uploadCover скачивает обложку по внешнему URL и загружает ее в файловое хранилище.
func (uc *gameUseCase) uploadCover(ctx context.Context, game *domain.Game) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, game.OriginalCoverURL, nil)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка создания запроса обложки: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка при скачивании обложки с %s: %w", game.OriginalCoverURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("usecase: неуспешный статус при скачивании обложки: %s", resp.Status)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	// Ключ в S3 строим от slug: он уникален во внешнем каталоге,
	// и это упрощает связывание игры с файлом обложки.
	key := fmt.Sprintf("game-covers/%s", game.Slug)

	coverURL, err := uc.fileStorage.UploadFile(ctx, key, resp.Body, contentType)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка загрузки обложки %s в S3: %w", game.Slug, err)
	}
	return coverURL, nil
}

// ListGames получает страницу каталога игр из нашей бд.
func (uc *gameUseCase) ListGames(ctx context.Context, page, perPage int) ([]domain.Game, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	games, err := uc.gameStorage.ListGames(ctx, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении списка игр: %w", err)
	}
	return games, nil
}
