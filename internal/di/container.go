package di

import (
	"github.com/GoArmGo/ArcadeDex/internal/adapter/rawg"
	"github.com/GoArmGo/ArcadeDex/internal/adapter/storage/minio"
	"github.com/GoArmGo/ArcadeDex/internal/app"
	"github.com/GoArmGo/ArcadeDex/internal/auth"
	"github.com/GoArmGo/ArcadeDex/internal/config"
	"github.com/GoArmGo/ArcadeDex/internal/database/postgres"
	"github.com/GoArmGo/ArcadeDex/internal/database/storage"
	"github.com/GoArmGo/ArcadeDex/internal/logger"
	"github.com/GoArmGo/ArcadeDex/internal/rabbitmq"
	"github.com/GoArmGo/ArcadeDex/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx + миграции + GORM)
	dbClient, err := postgres.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewGormUserStorage(dbClient.Gorm, slogger)
	gameStorage := storage.NewGormGameStorage(dbClient.Gorm, slogger)

	// 4. Инициализация выпуска токенов; пустой секрет — фатальная ошибка конфигурации
	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация клиентов внешних сервисов
	catalogClient := rawg.NewAPIClient(cfg)
	fileStorage, err := minio.NewMinioClient(cfg, slogger) // S3 / MinIO адаптер
	if err != nil {
		return nil, err
	}

	// 6. Инициализация RabbitMQ клиента (он же publisher и consumer)
	rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 7. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, gameStorage, issuer, slogger)
	gameUseCase := usecase.NewGameUseCase(gameStorage, catalogClient, fileStorage, slogger)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		issuer,
		authUseCase,
		gameUseCase,
		rabbitMQClient,
		rabbitMQClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
