package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/app"
)

func TestCreateCategoryHandler(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()

	c := createCategory(r, "Garden")

	w := doJSON(r, http.MethodGet, "/api/categories", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var categories []app.CategoryResult
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected exactly one category, got %d", len(categories))
	}
	if categories[0] != c {
		t.Errorf("expected %+v, got %+v", c, categories[0])
	}
	if c.Description != "Garden things" {
		t.Errorf("unexpected description %q", c.Description)
	}
}

func TestCreateCategoryHandler_Invalid(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/api/admin/categories", map[string]any{"name": "  "}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := fieldNames(w); !slices.Equal(got, []string{"name"}) {
		t.Errorf("expected errors [name], got %v", got)
	}

	w = doJSON(r, http.MethodPost, "/api/admin/categories", map[string]any{"name": "Garden"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestGetCategoriesHandler_SortedByName(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	for _, name := range []string{"Toys", "Books", "Music"} {
		createCategory(r, name)
	}

	w := doJSON(r, http.MethodGet, "/api/categories", nil, "")
	var categories []app.CategoryResult
	_ = json.NewDecoder(w.Body).Decode(&categories)

	var names []string
	for _, c := range categories {
		names = append(names, c.Name)
	}
	if !slices.Equal(names, []string{"Books", "Music", "Toys"}) {
		t.Errorf("expected categories ordered by name, got %v", names)
	}
}

func TestGetCategoryByIDHandler(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	c := createCategory(r, "Garden")

	w := doJSON(r, http.MethodGet, "/api/categories/"+c.ID.String(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/categories/"+uuid.NewString(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUpdateCategoryHandler(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	c := createCategory(r, "Garden")
	p := mustCreateProduct(r, "Rake", "19.90", c.ID)

	w := doJSON(r, http.MethodPut, "/api/admin/categories/"+c.ID.String(),
		map[string]any{"name": "Outdoor", "description": "Outside"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/products/"+p.ID.String(), nil, "")
	var got app.ProductResult
	_ = json.NewDecoder(w.Body).Decode(&got)
	if got.Category.Name != "Outdoor" {
		t.Errorf("expected product to show the renamed category, got %q", got.Category.Name)
	}

	w = doJSON(r, http.MethodPut, "/api/admin/categories/"+uuid.NewString(),
		map[string]any{"name": "Nowhere"}, token)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteCategoryHandler(t *testing.T) {
	t.Cleanup(clearCatalog)
	r := newRouter()
	used := createCategory(r, "Books")
	unused := createCategory(r, "Empty")
	mustCreateProduct(r, "Novel", "9.99", used.ID)

	w := doJSON(r, http.MethodDelete, "/api/admin/categories/"+used.ID.String(), nil, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a referenced category, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/admin/categories/"+unused.ID.String(), nil, token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/admin/categories/"+uuid.NewString(), nil, token)
	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for an unknown id, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/categories", nil, "")
	var categories []app.CategoryResult
	_ = json.NewDecoder(w.Body).Decode(&categories)
	if len(categories) != 1 || categories[0].ID != used.ID {
		t.Errorf("expected only the referenced category to remain, got %+v", categories)
	}
}
