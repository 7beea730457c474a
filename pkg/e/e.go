package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Отсутствие сущностей в хранилище
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrAPIKeyNotFound  = fmt.Errorf("api key not found")

	// Ошибки внешнего каталога
	ErrCatalogProductNotFound = fmt.Errorf("catalog product not found")
	ErrCatalogUnavailable     = fmt.Errorf("catalog unavailable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrRecommendationTarget = fmt.Errorf("either user_id or product_id is required")
	ErrProductIDRequired    = fmt.Errorf("product_id is required")
	ErrInvalidLimit         = fmt.Errorf("limit must be a positive integer")
	ErrInvalidRelationType  = fmt.Errorf("type must be cross-sell, up-sell or both")
	ErrAPIKeyNameRequired   = fmt.Errorf("api key name is required")

	// 401 Unauthorized
	ErrNoAPIKey       = fmt.Errorf("api key is required")
	ErrInvalidAPIKey  = fmt.Errorf("invalid api key")
	ErrInactiveAPIKey = fmt.Errorf("api key is inactive")

	// Неподдерживаемый тип содержимого изображения
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
