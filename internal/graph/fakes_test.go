package graph

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/GoArmGo/ArcadeDex/internal/apperrors"
	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
	"github.com/GoArmGo/ArcadeDex/internal/messaging/payloads"
)

var (
	_ ports.UserStorage         = (*memUserStorage)(nil)
	_ ports.GameStorage         = (*memGameStorage)(nil)
	_ ports.GameImportPublisher = (*memPublisher)(nil)
)

// memGameStorage — каталог игр в памяти для сквозных тестов API.
type memGameStorage struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.Game
	ordered []uuid.UUID
}

func newMemGameStorage() *memGameStorage {
	return &memGameStorage{byID: make(map[uuid.UUID]*domain.Game)}
}

func (s *memGameStorage) SaveGame(_ context.Context, game *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	copied := *game
	s.byID[game.ID] = &copied
	s.ordered = append(s.ordered, game.ID)
	return nil
}

func (s *memGameStorage) GetGameByID(_ context.Context, id uuid.UUID) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *game
	return &copied, nil
}

func (s *memGameStorage) GetGameBySlug(_ context.Context, slug string) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, game := range s.byID {
		if game.Slug == slug {
			copied := *game
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memGameStorage) ListGames(_ context.Context, page, perPage int) ([]domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := (page - 1) * perPage
	if start >= len(s.ordered) {
		return nil, nil
	}
	end := start + perPage
	if end > len(s.ordered) {
		end = len(s.ordered)
	}

	var games []domain.Game
	for _, id := range s.ordered[start:end] {
		games = append(games, *s.byID[id])
	}
	return games, nil
}

// memUserStorage — хранилище пользователей в памяти. Коллекция игр
// пользователя разрешается через общий memGameStorage.
type memUserStorage struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*domain.User
	tracked map[uuid.UUID][]uuid.UUID
	catalog *memGameStorage
}

func newMemUserStorage(catalog *memGameStorage) *memUserStorage {
	return &memUserStorage{
		users:   make(map[uuid.UUID]*domain.User),
		tracked: make(map[uuid.UUID][]uuid.UUID),
		catalog: catalog,
	}
}

func (s *memUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return apperrors.DuplicateCredential(errors.New("duplicated key not allowed"))
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStorage) GetUserByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memUserStorage) GetUserWithGames(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	s.mu.Lock()
	gameIDs := append([]uuid.UUID(nil), s.tracked[id]...)
	s.mu.Unlock()

	for _, gameID := range gameIDs {
		game, err := s.catalog.GetGameByID(ctx, gameID)
		if err != nil {
			return nil, err
		}
		if game != nil {
			user.Games = append(user.Games, *game)
		}
	}
	return user, nil
}

func (s *memUserStorage) AddGameToUser(_ context.Context, userID, gameID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tracked[userID] {
		if existing == gameID {
			return nil
		}
	}
	s.tracked[userID] = append(s.tracked[userID], gameID)
	return nil
}

// memPublisher записывает опубликованные задания на импорт.
type memPublisher struct {
	mu        sync.Mutex
	published []payloads.GameImportPayload
}

func (p *memPublisher) PublishGameImportRequest(_ context.Context, payload payloads.GameImportPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, payload)
	return nil
}
