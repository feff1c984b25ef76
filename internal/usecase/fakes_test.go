package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/GoArmGo/ArcadeDex/internal/apperrors"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// fakeUserStorage — потокобезопасное хранилище пользователей в памяти
// с поведением ports.UserStorage, включая контроль уникальности.
type fakeUserStorage struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	games map[uuid.UUID][]uuid.UUID

	failCreate error // если задано, CreateUser возвращает эту ошибку
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{
		users: make(map[uuid.UUID]*domain.User),
		games: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate != nil {
		return f.failCreate
	}
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.DuplicateCredential(errors.New("duplicated key not allowed"))
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) GetUserWithGames(_ context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	for _, gameID := range f.games[id] {
		copied.Games = append(copied.Games, domain.Game{ID: gameID, Slug: "game-" + gameID.String()[:8]})
	}
	return &copied, nil
}

func (f *fakeUserStorage) AddGameToUser(_ context.Context, userID, gameID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.games[userID] {
		if existing == gameID {
			return nil
		}
	}
	f.games[userID] = append(f.games[userID], gameID)
	return nil
}

func (f *fakeUserStorage) delete(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
}

// fakeGameStorage — хранилище игр в памяти с поведением ports.GameStorage.
type fakeGameStorage struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.Game
	bySlug  map[string]*domain.Game
	ordered []uuid.UUID
}

func newFakeGameStorage() *fakeGameStorage {
	return &fakeGameStorage{
		byID:   make(map[uuid.UUID]*domain.Game),
		bySlug: make(map[string]*domain.Game),
	}
}

func (f *fakeGameStorage) SaveGame(_ context.Context, game *domain.Game) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	copied := *game
	f.byID[game.ID] = &copied
	f.bySlug[game.Slug] = &copied
	f.ordered = append(f.ordered, game.ID)
	return nil
}

func (f *fakeGameStorage) GetGameByID(_ context.Context, id uuid.UUID) (*domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	game, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *game
	return &copied, nil
}

func (f *fakeGameStorage) GetGameBySlug(_ context.Context, slug string) (*domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	game, ok := f.bySlug[slug]
	if !ok {
		return nil, nil
	}
	copied := *game
	return &copied, nil
}

func (f *fakeGameStorage) ListGames(_ context.Context, page, perPage int) ([]domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	start := (page - 1) * perPage
	if start >= len(f.ordered) {
		return nil, nil
	}
	end := start + perPage
	if end > len(f.ordered) {
		end = len(f.ordered)
	}

	var games []domain.Game
	for _, id := range f.ordered[start:end] {
		games = append(games, *f.byID[id])
	}
	return games, nil
}

func seedGame(t testingT, storage *fakeGameStorage, slug string) *domain.Game {
	t.Helper()
	game := &domain.Game{
		ID:    uuid.New(),
		Slug:  slug,
		Title: slug,
	}
	if err := storage.SaveGame(context.Background(), game); err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return game
}

// testingT — минимальный срез *testing.T, чтобы хелперы работали и в сабтестах.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// fakeGameFetcher отдает заранее заданные игры по slug.
type fakeGameFetcher struct {
	mu     sync.Mutex
	games  map[string]*domain.Game
	calls  int
	failed error
}

func newFakeGameFetcher() *fakeGameFetcher {
	return &fakeGameFetcher{games: make(map[string]*domain.Game)}
}

func (f *fakeGameFetcher) FetchGameBySlug(_ context.Context, slug string) (*domain.Game, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.failed != nil {
		return nil, f.failed
	}
	game, ok := f.games[slug]
	if !ok {
		return nil, errors.New("catalog: game not found")
	}
	copied := *game
	return &copied, nil
}

// fakeFileStorage записывает загрузки и возвращает детерминированный URL.
type fakeFileStorage struct {
	mu      sync.Mutex
	uploads map[string]string // key -> contentType
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{uploads: make(map[string]string)}
}

func (f *fakeFileStorage) UploadFile(_ context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[key] = contentType
	return "http://minio.local/covers/" + key, nil
}

func (f *fakeFileStorage) DeleteFile(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.uploads, key)
	return nil
}
