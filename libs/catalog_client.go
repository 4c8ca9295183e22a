package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant-cart/models"

	"github.com/go-playground/validator/v10"
)

// CatalogClient fetches the product collection from GET <baseURL>/products.
// The endpoint may answer with a bare JSON array or a {"data": [...]} envelope;
// an envelope without data or with success false is a failed fetch.
type CatalogClient struct {
	url        string
	httpClient *http.Client
	validate   *validator.Validate
}

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &CatalogClient{
		url:        strings.TrimRight(baseURL, "/") + "/products",
		httpClient: &http.Client{Timeout: timeout},
		validate:   validator.New(),
	}
}

var errCatalogNoData = errors.New("catalog response has no data")

type catalogEnvelope struct {
	Success *bool             `json:"success"`
	Message string            `json:"message"`
	Data    *[]models.Product `json:"data"`
}

func (c *CatalogClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []models.Product
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &products)
	} else {
		var env catalogEnvelope
		if err = json.Unmarshal(trimmed, &env); err == nil {
			switch {
			case env.Success != nil && !*env.Success:
				return nil, fmt.Errorf("catalog reported failure: %q", env.Message)
			case env.Data == nil:
				return nil, errCatalogNoData
			}
			products = *env.Data
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i := range products {
		if err := c.validate.Struct(products[i]); err != nil {
			return nil, fmt.Errorf("invalid catalog product at %d: %w", i, err)
		}
	}
	return products, nil
}
