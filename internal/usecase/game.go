package usecase

import (
	"context"
	"io"

	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// GameFetcher определяет интерфейс для получения метаданных игр из внешнего
// каталога (например, RAWG API). Fetcher принимает данные каталога и маппит
// их во внутреннюю доменную модель Game.
type GameFetcher interface {
	// FetchGameBySlug возвращает ОДНУ Game, полученную по slug из каталога.
	FetchGameBySlug(ctx context.Context, slug string) (*domain.Game, error)
}

// FileStorage определяет интерфейс для работы с файловым хранилищем (AWS S3, MinIO) —
// порт для хранения бинарных данных (обложек игр).
type FileStorage interface {
	// UploadFile загружает файл в хранилище и возвращает его публичный URL.
	// `key` - это уникальное имя файла в хранилище.
	// `reader` - источник данных файла (например, тело HTTP-ответа после скачивания).
	// `contentType` - MIME-тип файла (например, "image/jpeg").
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)

	// DeleteFile удаляет файл из хранилища по его ключу.
	DeleteFile(ctx context.Context, key string) error
}

// GameUseCase определяет интерфейс для бизнес-логики импорта и чтения каталога игр.
type GameUseCase interface {
	// GetOrImportGameBySlug ищет игру по slug каталога.
	// Если она уже есть в бд, возвращает ее. Иначе получает метаданные из
	// внешнего каталога, загружает обложку в S3, сохраняет в бд и возвращает.
	GetOrImportGameBySlug(ctx context.Context, slug string) (*domain.Game, error)

	// ListGames получает страницу каталога игр из нашей бд.
	ListGames(ctx context.Context, page, perPage int) ([]domain.Game, error)
}
