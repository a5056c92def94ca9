package handlers_integrated_test_suite

import (
	"encoding/json"
	"net/http"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

func TestProducts_FilterSortPage(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	books := createCategory(t, r, "Books")
	toys := createCategory(t, r, "Toys")
	for _, price := range []string{"5", "15", "25", "35"} {
		createProduct(t, r, "Book "+price, price, books)
	}
	createProduct(t, r, "Ball", "20", toys)

	w := doJSON(r, http.MethodPost, "/api/products", map[string]any{
		"minPrice":      10,
		"maxPrice":      30,
		"sortColumn":    "Price",
		"sortDirection": "Desc",
		"pageSize":      2,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var products []app.ProductResult
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	var prices []string
	for _, p := range products {
		prices = append(prices, p.Price.String())
	}
	if !slices.Equal(prices, []string{"25", "20"}) {
		t.Errorf("expected [25 20], got %v", prices)
	}
	if products[1].Category.Name != "Toys" {
		t.Errorf("expected joined category name, got %+v", products[1].Category)
	}

	w = doJSON(r, http.MethodPost, "/api/products", map[string]any{"categoryId": books.ID, "pageNumber": 2, "pageSize": 3}, "")
	products = nil
	_ = json.NewDecoder(w.Body).Decode(&products)
	if len(products) != 1 {
		t.Errorf("expected one product on the second page, got %d", len(products))
	}
}

func TestProducts_UpdateAndDelete(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	books := createCategory(t, r, "Books")
	p := createProduct(t, r, "Novel", "12.50", books)

	w := doJSON(r, http.MethodPut, "/api/admin/products/"+p.ID.String(),
		map[string]any{"name": "Novella", "price": "9.75", "categoryId": books.ID}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated app.ProductResult
	_ = json.NewDecoder(w.Body).Decode(&updated)
	if updated.Name != "Novella" || !updated.Price.Equal(decimal.RequireFromString("9.75")) {
		t.Errorf("unexpected update %+v", updated)
	}

	w = doJSON(r, http.MethodPut, "/api/admin/products/"+uuid.NewString(),
		map[string]any{"name": "Ghost", "price": 1, "categoryId": books.ID}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/admin/products/"+p.ID.String(), nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	w = doJSON(r, http.MethodGet, "/api/products/"+p.ID.String(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCategories_DeleteRestricted(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	books := createCategory(t, r, "Books")
	createProduct(t, r, "Novel", "10", books)

	w := doJSON(r, http.MethodDelete, "/api/admin/categories/"+books.ID.String(), nil, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/categories", nil, "")
	var categories []app.CategoryResult
	_ = json.NewDecoder(w.Body).Decode(&categories)
	if len(categories) != 1 {
		t.Errorf("expected the category to survive, got %+v", categories)
	}
}

func TestCategories_UpdateVisibleThroughProducts(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	c := createCategory(t, r, "Garden")
	p := createProduct(t, r, "Rake", "19.90", c)

	w := doJSON(r, http.MethodPut, "/api/admin/categories/"+c.ID.String(), map[string]any{"name": "Outdoor"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/categories/"+c.ID.String(), nil, "")
	var got app.CategoryResult
	_ = json.NewDecoder(w.Body).Decode(&got)
	if got.Name != "Outdoor" {
		t.Errorf("expected the renamed category, got %+v", got)
	}

	w = doJSON(r, http.MethodGet, "/api/products/"+p.ID.String(), nil, "")
	var product app.ProductResult
	_ = json.NewDecoder(w.Body).Decode(&product)
	if product.Category.Name != "Outdoor" {
		t.Errorf("expected product to show Outdoor, got %q", product.Category.Name)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	books := createCategory(t, r, "Books")
	createCategory(t, r, "Empty")
	createProduct(t, r, "Novel", "10", books)

	w := doJSON(r, http.MethodGet, "/api/admin/metrics", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var m repo.Metrics
	_ = json.NewDecoder(w.Body).Decode(&m)
	if m.TotalProducts != 1 || m.TotalCategories != 2 || m.LargestCategory.ID != books.ID {
		t.Errorf("unexpected metrics %+v", m)
	}

	w = doJSON(r, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("expected healthy database, got %d: %s", w.Code, w.Body.String())
	}
}
