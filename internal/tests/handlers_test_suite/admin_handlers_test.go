package handlers_test_suite

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

func TestGetCatalogMetricsHandler(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	books := createCategory(r, "Books")
	toys := createCategory(r, "Toys")
	mustCreateProduct(r, "Novel", "10", books.ID)
	mustCreateProduct(r, "Atlas", "20", books.ID)
	mustCreateProduct(r, "Ball", "3", toys.ID)

	w := doJSON(r, http.MethodGet, "/api/admin/metrics", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if m.TotalProducts != 3 || m.TotalCategories != 2 {
		t.Errorf("unexpected totals %+v", m)
	}
	if m.LargestCategory.ID != books.ID || m.LargestCategory.ProductCount != 2 {
		t.Errorf("expected Books to be the largest category, got %+v", m.LargestCategory)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/metrics", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name     string
		payload  any
		expected int
	}{
		{"valid", handler.CredentialsRequest{Username: "admin", Password: "secret"}, http.StatusOK},
		{"wrong password", handler.CredentialsRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", handler.CredentialsRequest{Username: "root", Password: "secret"}, http.StatusUnauthorized},
		{"missing password", handler.CredentialsRequest{Username: "admin"}, http.StatusBadRequest},
		{"malformed body", `{"username":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/login", tt.payload, "")
			if w.Code != tt.expected {
				t.Fatalf("expected %d, got %d: %s", tt.expected, w.Code, w.Body.String())
			}
		})
	}
}

func TestLoginToken_Claims(t *testing.T) {
	claims, err := tokens.Parse("Bearer " + token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "admin" || claims.Role != "admin" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newRouter()
	t.Cleanup(func() { handler.SetHealthCheck() })

	w := doJSON(r, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	handler.SetHealthCheck(
		func(context.Context) error { return nil },
		func(context.Context) error { return errors.New("database unreachable") },
	)
	w = doJSON(r, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var res handler.HealthResult
	_ = json.NewDecoder(w.Body).Decode(&res)
	if res.Status != "unavailable" || res.Error != "database unreachable" {
		t.Errorf("unexpected health result %+v", res)
	}
}
