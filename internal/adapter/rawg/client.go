// internal/adapter/rawg/client.go
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/ArcadeDex/internal/config"
	"github.com/GoArmGo/ArcadeDex/internal/domain"
)

// APIClient представляет клиент для взаимодействия с каталогом игр RAWG.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewAPIClient создает новый экземпляр APIClient.
func NewAPIClient(cfg *config.Config) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.RawgBaseURL,
		apiKey:     cfg.RawgAPIKey,
	}
}

// FetchGameBySlug получает метаданные игры из RAWG и маппит их в domain.Game.
func (c *APIClient) FetchGameBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	endpoint := fmt.Sprintf("%s/games/%s?%s", c.baseURL, url.PathEscape(slug), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания HTTP-запроса: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения HTTP-запроса к RAWG: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("RAWG API вернул статус %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var gameResp GameResponse
	if err := json.NewDecoder(resp.Body).Decode(&gameResp); err != nil {
		return nil, fmt.Errorf("ошибка декодирования JSON ответа RAWG: %w", err)
	}

	return c.mapGameToDomain(&gameResp), nil
}

// mapGameToDomain преобразует GameResponse в domain.Game.
func (c *APIClient) mapGameToDomain(gameResp *GameResponse) *domain.Game {
	return &domain.Game{
		// Новый внутренний ID: для нас это новая игра.
		ID:          uuid.New(),
		Slug:        gameResp.Slug,
		Title:       gameResp.Name,
		Description: gameResp.DescriptionRaw,
		ReleasedAt:  gameResp.Released,
		Rating:      gameResp.Rating,
		// CoverURL будет установлен после загрузки обложки в S3, не тут.
		CoverURL:         "",
		OriginalCoverURL: gameResp.BackgroundImage,
	}
}
