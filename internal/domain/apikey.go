package domain

// APIKey — ключ доступа к публичному API рекомендаций.
type APIKey struct {
	ID     int64
	Key    string
	Name   string
	Active bool
}

func NewAPIKey(key, name string, active bool) *APIKey {
	return &APIKey{
		Key:    key,
		Name:   name,
		Active: active,
	}
}
