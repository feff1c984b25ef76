package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game представляет модель игры в системе,
// соответствует таблице games в бд.
// CoverURL указывает на обложку в нашем S3/MinIO,
// OriginalCoverURL — на обложку во внешнем каталоге.
type Game struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ReleasedAt       string    `json:"released_at"`
	Rating           float64   `json:"rating"`
	CoverURL         string    `json:"cover_url"`
	OriginalCoverURL string    `json:"original_cover_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}

// UserGame представляет связующую модель для отношения Many-to-Many между User и Game,
// соответствует таблице user_games в бд
type UserGame struct {
	UserID uuid.UUID `json:"user_id"`
	GameID uuid.UUID `json:"game_id"`
}

func (UserGame) TableName() string {
	return "user_games"
}
