package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/sirupsen/logrus"
)

// CatalogClient reads the catalog through the public API.
type CatalogClient interface {
	GetCategories(ctx context.Context) ([]app.CategoryResult, error)
	GetProducts(ctx context.Context, q app.GetProductsQuery) ([]app.ProductResult, error)
}

// APIError is returned when the API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Fields     []app.FieldError
	Body       string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.Field + ": " + f.Description
		}
		return fmt.Sprintf("api returned %d: %s", e.StatusCode, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("api returned %d: %s", e.StatusCode, e.Body)
}

type catalogHTTPClient struct {
	baseURL string
	client  *http.Client
	log     logrus.FieldLogger
}

func NewCatalogHTTPClient(baseURL string, timeout time.Duration, logger logrus.FieldLogger) CatalogClient {
	return &catalogHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger,
	}
}

func (c *catalogHTTPClient) GetCategories(ctx context.Context) ([]app.CategoryResult, error) {
	var categories []app.CategoryResult
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, errors.Wrap(err, "get categories")
	}
	return categories, nil
}

func (c *catalogHTTPClient) GetProducts(ctx context.Context, q app.GetProductsQuery) ([]app.ProductResult, error) {
	var products []app.ProductResult
	if err := c.do(ctx, http.MethodPost, "/api/products", q, &products); err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	return products, nil
}

func (c *catalogHTTPClient) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", url).Error("catalog api request failed")
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":      method,
		"url":         url,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("catalog api call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		if resp.StatusCode == http.StatusBadRequest {
			_ = json.Unmarshal(raw, &apiErr.Fields)
		}
		c.log.WithField("status", resp.StatusCode).Warn("catalog api returned an error")
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
