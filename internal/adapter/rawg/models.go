package rawg

// GameResponse описывает ответ RAWG API на запрос GET /games/{slug}.
// Перечислены только используемые поля.
type GameResponse struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	DescriptionRaw  string  `json:"description_raw"`
	Released        string  `json:"released"`
	Rating          float64 `json:"rating"`
	BackgroundImage string  `json:"background_image"`
}
