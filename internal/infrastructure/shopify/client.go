package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DRSN-tech/recs-backend/internal/cfg"
	"github.com/DRSN-tech/recs-backend/internal/usecase"
	"github.com/DRSN-tech/recs-backend/pkg/e"
	"github.com/DRSN-tech/recs-backend/pkg/jitter"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

// Client — клиент Admin REST API внешней товарной платформы.
// Транспортные ошибки и 5xx повторяются с экспоненциальной задержкой.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxRetries int
	logger     logger.Logger
}

func NewClient(cfg *cfg.ShopifyCfg, logger logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    fmt.Sprintf("https://%s.myshopify.com/admin/api/%s", cfg.ShopName, cfg.APIVersion),
		token:      cfg.AccessToken,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// GetProductByID возвращает один товар каталога.
// Неизвестный товар — e.ErrCatalogProductNotFound, недоступность платформы — e.ErrCatalogUnavailable.
func (c *Client) GetProductByID(ctx context.Context, productID string) (*usecase.CatalogProduct, error) {
	const op = "shopify.Client.GetProductByID"

	var res struct {
		Product usecase.CatalogProduct `json:"product"`
	}
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(productID)+".json", nil, &res); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &res.Product, nil
}

// GetProducts возвращает страницу товаров каталога и их общее количество.
func (c *Client) GetProducts(ctx context.Context, limit, page int) (*usecase.CatalogPage, error) {
	const op = "shopify.Client.GetProducts"

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("page", strconv.Itoa(page))

	var listRes struct {
		Products []usecase.CatalogProduct `json:"products"`
	}
	if err := c.getJSON(ctx, "/products.json", query, &listRes); err != nil {
		return nil, e.Wrap(op, err)
	}

	var countRes struct {
		Count int `json:"count"`
	}
	if err := c.getJSON(ctx, "/products/count.json", nil, &countRes); err != nil {
		return nil, e.Wrap(op, err)
	}

	return &usecase.CatalogPage{
		Products: listRes.Products,
		Total:    countRes.Count,
	}, nil
}

// getJSON выполняет GET с повторами и декодирует ответ.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	const (
		baseJitter = 500 * time.Millisecond
		maxJitter  = 10 * time.Second
	)

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			sleepTime := jitter.ExponentialBackoff(baseJitter, maxJitter, attempt-1, jitter.DefaultJitter)
			c.logger.Warnf("catalog request failed, retrying in %v (attempt %d): %v", sleepTime, attempt, lastErr)
			select {
			case <-time.After(sleepTime):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		retryable, err := c.doOnce(ctx, endpoint, out)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %v", e.ErrCatalogUnavailable, lastErr)
}

// doOnce выполняет один запрос. Второе возвращаемое значение — признак,
// что ошибку имеет смысл повторять.
func (c *Client) doOnce(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, e.ErrCatalogProductNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return true, fmt.Errorf("catalog responded with status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return false, fmt.Errorf("%w: catalog responded with status %d", e.ErrCatalogUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return false, nil
}
