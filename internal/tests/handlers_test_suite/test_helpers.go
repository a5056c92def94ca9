package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/auth"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/product-catalog/internal/http/router"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
	"github.com/rogerio-castellano/product-catalog/internal/pkg/clock"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/sirupsen/logrus"
)

var (
	token        string
	tokens       *auth.Tokens
	clk          *clock.MockClock
	categoryRepo *repo.InMemoryCategoryRepository
	productRepo  *repo.InMemoryProductRepository
	logger       = logrus.New()
)

func init() {
	logger.SetOutput(io.Discard)
	setupTestRepos("secret")

	var err error
	token, err = generateToken(newRouter(), "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	clk = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository(categoryRepo)
	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, categoryRepo)

	m := mediator.New(mediator.LoggingBehavior(logger, app.IsClientError))
	app.Register(m, app.Dependencies{
		Categories:  categoryRepo,
		Products:    productRepo,
		Metrics:     metricsRepo,
		Clock:       clk,
		MaxPageSize: app.DefaultMaxPageSize,
	})
	handler.SetMediator(m)
	handler.SetLogger(logger)

	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	tokens = auth.NewTokens("test-secret", time.Hour, nil)
	handler.SetAuth(tokens, auth.Admin{Username: "admin", PasswordHash: hash})
}

func newRouter() http.Handler {
	return router.NewRouter(router.Options{Logger: logger, Tokens: tokens})
}

func clearCatalog() {
	productRepo.Clear()
	categoryRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := doJSON(r, http.MethodPost, "/api/login", handler.CredentialsRequest{Username: username, Password: password}, "")
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login returned %d: %s", w.Code, w.Body.String())
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends payload as JSON. A string payload is sent verbatim;
// bearer is added as an Authorization header when not empty.
func doJSON(r http.Handler, method, path string, payload any, bearer string) *httptest.ResponseRecorder {
	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(p)
	default:
		b, _ := json.Marshal(p)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCategory(r http.Handler, name string) app.CategoryResult {
	w := doJSON(r, http.MethodPost, "/api/admin/categories", app.AddCategoryCommand{Name: name, Description: name + " things"}, token)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("create category %q: %d %s", name, w.Code, w.Body.String()))
	}
	var c app.CategoryResult
	_ = json.NewDecoder(w.Body).Decode(&c)
	return c
}

func createProduct(r http.Handler, payload map[string]any) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/api/admin/products", payload, token)
}

func mustCreateProduct(r http.Handler, name, price string, categoryID fmt.Stringer) app.ProductResult {
	w := createProduct(r, map[string]any{"name": name, "price": price, "categoryId": categoryID.String()})
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("create product %q: %d %s", name, w.Code, w.Body.String()))
	}
	var p app.ProductResult
	_ = json.NewDecoder(w.Body).Decode(&p)
	return p
}

func searchProducts(r http.Handler, filter any) ([]app.ProductResult, *httptest.ResponseRecorder) {
	w := doJSON(r, http.MethodPost, "/api/products", filter, "")
	var products []app.ProductResult
	if w.Code == http.StatusOK {
		_ = json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&products)
	}
	return products, w
}

func fieldNames(w *httptest.ResponseRecorder) []string {
	var errs []app.FieldError
	_ = json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&errs)
	names := []string{}
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func pricesOf(products []app.ProductResult) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Price.String()
	}
	return out
}
