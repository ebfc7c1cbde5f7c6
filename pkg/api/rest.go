package api

// REST path prefix and headers of the Postgrest-style remote store
const (
	RESTPrefix = "/rest/v1"

	HeaderAPIKey = "apikey"
	HeaderPrefer = "Prefer"

	// PreferUpsert просит сервер слить строку с существующей по первичному ключу
	// и вернуть итоговое представление
	PreferUpsert = "resolution=merge-duplicates,return=representation"
	// PreferRepresentation вернуть измененные строки
	PreferRepresentation = "return=representation"
)

// ErrorResponse представляет ответ с ошибкой (формат Postgrest)
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`    // машинный код ошибки
	Message string `json:"message"`           // описание ошибки
	Details string `json:"details,omitempty"` // подробности
	Hint    string `json:"hint,omitempty"`    // подсказка
}

// HealthResponse ответ health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
