package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/GoArmGo/ArcadeDex/internal/apperrors"
	"github.com/GoArmGo/ArcadeDex/internal/auth"
	"github.com/GoArmGo/ArcadeDex/internal/core/ports"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// authUseCase implements AuthUseCase
type authUseCase struct {
	userStorage ports.UserStorage
	gameStorage ports.GameStorage
	issuer      *auth.TokenIssuer
	logger      *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(
	userStorage ports.UserStorage,
	gameStorage ports.GameStorage,
	issuer *auth.TokenIssuer,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userStorage: userStorage,
		gameStorage: gameStorage,
		issuer:      issuer,
		logger:      logger,
	}
}

// Register создает пользователя с хэшированным паролем и выпускает токен.
// Ошибка уникальности и ошибки валидации приходят из хранилища уже
// в виде словаря apperrors и отдаются наверх как есть.
func (uc *authUseCase) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("usecase: ошибка хэширования пароля: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		// Логируем до проброса наверх: клиент получит только словарную ошибку.
		uc.logger.Error("register failed", "email", email, "error", err)
		return nil, "", err
	}

	token, err := uc.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, token, nil
}

// Login проверяет учетные данные и выпускает токен.
func (uc *authUseCase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("usecase: ошибка поиска пользователя по email: %w", err)
	}
	if user == nil {
		return nil, "", apperrors.NotFound("No user found by that email address.")
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", apperrors.Unauthorized("Password incorrect.")
	}

	token, err := uc.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// CurrentUser возвращает пользователя сессии; (nil, nil), если запись исчезла.
func (uc *authUseCase) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения пользователя: %w", err)
	}
	return user, nil
}

// UserGames возвращает коллекцию игр пользователя.
// Живая сессия с исчезнувшей записью пользователя — NotFound, не паника.
func (uc *authUseCase) UserGames(ctx context.Context, userID uuid.UUID) ([]domain.Game, error) {
	user, err := uc.userStorage.GetUserWithGames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения пользователя с играми: %w", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("No user found for this session.")
	}
	return user.Games, nil
}

// TrackGame добавляет игру в коллекцию пользователя.
func (uc *authUseCase) TrackGame(ctx context.Context, userID, gameID uuid.UUID) (*domain.Game, error) {
	game, err := uc.gameStorage.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка получения игры: %w", err)
	}
	if game == nil {
		return nil, apperrors.NotFound("Game not found.")
	}

	if err := uc.userStorage.AddGameToUser(ctx, userID, gameID); err != nil {
		return nil, fmt.Errorf("usecase: ошибка добавления игры в коллекцию: %w", err)
	}

	uc.logger.Info("game tracked", "user_id", userID, "game_id", gameID)
	return game, nil
}
