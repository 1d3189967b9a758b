package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/sit722-devops/week09/internal/config"
	"github.com/sit722-devops/week09/internal/domain/models"
)

// Client exposes the product catalog API operations used by the application.
type Client interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req models.NewProduct) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a catalog API client using the provided configuration
// values. Calls carry no deadline unless one is configured, matching the
// transport default.
func NewClient(cfg config.APIConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")

	if cfg.RequestTimeout > 0 {
		restyClient.SetTimeout(cfg.RequestTimeout)
	}

	return &APIClient{httpClient: restyClient}
}

// APIError reports a non-success response from the catalog service. Detail
// carries the server's structured "detail" field when the body provided one.
type APIError struct {
	Status int
	Detail string
}

// Error returns the server-provided detail verbatim when present, otherwise a
// generic status-based message.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("unexpected status %d (%s)", e.Status, http.StatusText(e.Status))
}

// apiError mirrors the error payload shape returned by the catalog service.
type apiError struct {
	Detail string `json:"detail"`
}

// ListProducts fetches the full product collection.
func (c *APIClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	result := new([]models.Product)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(apiErr).
		Get("/products/")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &APIError{Status: resp.StatusCode(), Detail: apiErr.Detail}
	}

	return *result, nil
}

// CreateProduct submits a new product and returns the record the server
// created for it.
func (c *APIClient) CreateProduct(ctx context.Context, req models.NewProduct) (*models.Product, error) {
	result := new(models.Product)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(result).
		SetError(apiErr).
		Post("/products/")
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &APIError{Status: resp.StatusCode(), Detail: apiErr.Detail}
	}

	return result, nil
}

// DeleteProduct removes the product with the given id. Only a 204 No Content
// response counts as success.
func (c *APIClient) DeleteProduct(ctx context.Context, id int64) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if resp.StatusCode() != http.StatusNoContent {
		return &APIError{Status: resp.StatusCode(), Detail: apiErr.Detail}
	}

	return nil
}
