package graph

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/GoArmGo/ArcadeDex/internal/apperrors"
	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
	"github.com/GoArmGo/ArcadeDex/internal/messaging/payloads"
	"github.com/GoArmGo/ArcadeDex/internal/usecase"
)

// Resolver — корневой резолвер GraphQL-схемы.
type Resolver struct {
	auth      usecase.AuthUseCase
	games     usecase.GameUseCase
	publisher ports.GameImportPublisher
	logger    *slog.Logger
}

// NewResolver создает корневой резолвер.
func NewResolver(
	authUC usecase.AuthUseCase,
	gamesUC usecase.GameUseCase,
	publisher ports.GameImportPublisher,
	logger *slog.Logger,
) *Resolver {
	return &Resolver{
		auth:      authUC,
		games:     gamesUC,
		publisher: publisher,
		logger:    logger,
	}
}

// --- view-структуры (разрешаются полями через UseFieldResolvers) ---

type userView struct {
	ID       graphql.ID
	Username string
	Email    string
}

type gameView struct {
	ID          graphql.ID
	Slug        string
	Title       string
	Description *string
	ReleasedAt  *string
	Rating      *float64
	CoverURL    *string
}

type authPayload struct {
	Message string
	User    *userView
}

type userPayload struct {
	User *userView
}

type messagePayload struct {
	Message string
}

func parseID(id graphql.ID) (uuid.UUID, error) {
	return uuid.Parse(string(id))
}

func newUserView(user *domain.User) *userView {
	if user == nil {
		return nil
	}
	return &userView{
		ID:       graphql.ID(user.ID.String()),
		Username: user.Username,
		Email:    user.Email,
	}
}

func newGameView(game domain.Game) gameView {
	v := gameView{
		ID:    graphql.ID(game.ID.String()),
		Slug:  game.Slug,
		Title: game.Title,
	}
	if game.Description != "" {
		v.Description = &game.Description
	}
	if game.ReleasedAt != "" {
		v.ReleasedAt = &game.ReleasedAt
	}
	if game.Rating != 0 {
		v.Rating = &game.Rating
	}
	if game.CoverURL != "" {
		v.CoverURL = &game.CoverURL
	}
	return v
}

func newGameViews(games []domain.Game) []gameView {
	views := make([]gameView, 0, len(games))
	for _, g := range games {
		views = append(views, newGameView(g))
	}
	return views
}

// --- Mutation ---

// RegisterUser регистрирует пользователя, выпускает токен и устанавливает cookie.
func (r *Resolver) RegisterUser(ctx context.Context, args struct {
	Username string
	Email    string
	Password string
}) (*authPayload, error) {
	user, token, err := r.auth.Register(ctx, args.Username, args.Email, args.Password)
	if err != nil {
		return nil, err
	}

	SessionFromContext(ctx).SetToken(token)

	return &authPayload{
		Message: "User registered successfully!",
		User:    newUserView(user),
	}, nil
}

// LoginUser проверяет учетные данные и устанавливает cookie с токеном.
func (r *Resolver) LoginUser(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authPayload, error) {
	user, token, err := r.auth.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}

	SessionFromContext(ctx).SetToken(token)

	return &authPayload{
		Message: "Logged in successfully!",
		User:    newUserView(user),
	}, nil
}

// LogoutUser очищает сессионную cookie. Проверка аутентификации не выполняется:
// очистка cookie безвредна и для анонимного запроса.
func (r *Resolver) LogoutUser(ctx context.Context) (*authPayload, error) {
	SessionFromContext(ctx).ClearToken()

	return &authPayload{
		Message: "Logged out successfully",
	}, nil
}

// AddGame — заглушка, контракт операции еще не определен.
func (r *Resolver) AddGame(ctx context.Context) (*messagePayload, error) {
	return &messagePayload{Message: "test"}, nil
}

// TrackGame добавляет игру в коллекцию аутентифицированного пользователя.
func (r *Resolver) TrackGame(ctx context.Context, args struct {
	GameID graphql.ID
}) (*gameView, error) {
	userID, ok := SessionFromContext(ctx).UserID()
	if !ok {
		return nil, apperrors.Unauthorized("Not Authorized")
	}

	gameID, err := parseID(args.GameID)
	if err != nil {
		return nil, apperrors.NotFound("Game not found.")
	}

	game, err := r.auth.TrackGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	view := newGameView(*game)
	return &view, nil
}

// ImportGame ставит задание на импорт игры из внешнего каталога в очередь.
func (r *Resolver) ImportGame(ctx context.Context, args struct {
	Slug string
}) (*messagePayload, error) {
	if _, ok := SessionFromContext(ctx).UserID(); !ok {
		return nil, apperrors.Unauthorized("Not Authorized")
	}

	payload := payloads.GameImportPayload{Slug: args.Slug}
	if err := r.publisher.PublishGameImportRequest(ctx, payload); err != nil {
		r.logger.Error("failed to publish game import request", "slug", args.Slug, "error", err)
		return nil, apperrors.ValidationFailure(err)
	}

	return &messagePayload{Message: "Game import queued: " + args.Slug}, nil
}

// --- Query ---

// GetUser возвращает текущего пользователя сессии.
// Отсутствие сессии или исчезнувшая запись — это {user: null}, не ошибка.
func (r *Resolver) GetUser(ctx context.Context) (*userPayload, error) {
	userID, ok := SessionFromContext(ctx).UserID()
	if !ok {
		return &userPayload{}, nil
	}

	user, err := r.auth.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &userPayload{User: newUserView(user)}, nil
}

// GetUserGames возвращает коллекцию игр текущего пользователя.
// Без сессии операция запрещена.
func (r *Resolver) GetUserGames(ctx context.Context) ([]gameView, error) {
	userID, ok := SessionFromContext(ctx).UserID()
	if !ok {
		return nil, apperrors.Unauthorized("Not Authorized")
	}

	games, err := r.auth.UserGames(ctx, userID)
	if err != nil {
		return nil, err
	}

	return newGameViews(games), nil
}

// ListGames возвращает страницу публичного каталога игр.
func (r *Resolver) ListGames(ctx context.Context, args struct {
	Page    *int32
	PerPage *int32
}) ([]gameView, error) {
	page, perPage := 1, 10
	if args.Page != nil {
		page = int(*args.Page)
	}
	if args.PerPage != nil {
		perPage = int(*args.PerPage)
	}

	games, err := r.games.ListGames(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	return newGameViews(games), nil
}
