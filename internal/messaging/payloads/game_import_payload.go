package payloads

// GameImportPayload представляет данные, необходимые для импорта игры
// из внешнего каталога через RabbitMQ.
type GameImportPayload struct {
	Slug string `json:"slug"`
}
