package models

// ShortURLRecord снапшот одной короткой ссылки, как её отдаёт API.
// Поле original_URL именно с таким регистром на проводе.
type ShortURLRecord struct {
	Title        string `json:"title"`
	OriginalURL  string `json:"original_URL"`
	BackHalf     string `json:"back_half"`
	TimesVisited int    `json:"times_visited"`
}

// ShortURLCollection ответ GET /api/v1/urls. Порядок записей значим:
// он определяется бэкендом и сохраняется при рендере.
type ShortURLCollection struct {
	ShortURLs []ShortURLRecord `json:"short_urls"`
}

// CreateURLInput тело POST /api/v1/urls/create.
type CreateURLInput struct {
	Title       string `json:"title"`
	BackHalf    string `json:"back_half"`
	OriginalURL string `json:"original_URL"`
}
