package handlers

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
)

// GetProductsHandler godoc
// @Summary Search products
// @Description Filters by price range, creation date range and category, then sorts and pages the result
// @Tags products
// @Accept json
// @Produce json
// @Param filter body app.GetProductsQuery false "Filter, sort and page"
// @Success 200 {array} app.ProductResult
// @Failure 400 {array} app.FieldError
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/products [post]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	var q app.GetProductsQuery
	// an empty body is an unfiltered first page
	if err := readJSON(w, r, &q); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, "body", err.Error())
		return
	}
	sendProductsQuery(w, r, q)
}

// SearchProductsHandler godoc
// @Summary Search products using query parameters
// @Tags products
// @Produce json
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param startDate query string false "Created on or after (date or RFC 3339)"
// @Param endDate query string false "Created on or before (date or RFC 3339)"
// @Param categoryId query string false "Category ID"
// @Param sortColumn query string false "Id, Name, Price or CreatedDate"
// @Param sortDirection query string false "Asc or Desc"
// @Param pageNumber query int false "Page number, from 1"
// @Param pageSize query int false "Page size"
// @Success 200 {array} app.ProductResult
// @Failure 400 {array} app.FieldError
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	q, err := app.ParseProductsQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	sendProductsQuery(w, r, q)
}

func sendProductsQuery(w http.ResponseWriter, r *http.Request, q app.GetProductsQuery) {
	products, err := mediator.Send[app.GetProductsQuery, []app.ProductResult](r.Context(), bus, q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, products)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} app.ProductResult
// @Failure 400 {array} app.FieldError
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	product, err := mediator.Send[app.GetProductByIDQuery, *app.ProductResult](r.Context(), bus, app.GetProductByIDQuery{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if product == nil {
		writeMessage(w, http.StatusNotFound, "product not found")
		return
	}
	respond(w, http.StatusOK, product)
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body app.AddProductCommand true "Product to add"
// @Success 201 {object} app.ProductResult
// @Failure 400 {array} app.FieldError
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/admin/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var cmd app.AddProductCommand
	if err := readJSON(w, r, &cmd); err != nil {
		badRequest(w, "body", err.Error())
		return
	}
	cmd.Actor = actor(r)

	created, err := mediator.Send[app.AddProductCommand, app.ProductResult](r.Context(), bus, cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, created)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body app.UpdateProductCommand true "New product values"
// @Success 200 {object} app.ProductResult
// @Failure 400 {array} app.FieldError
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/admin/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var cmd app.UpdateProductCommand
	if err := readJSON(w, r, &cmd); err != nil {
		badRequest(w, "body", err.Error())
		return
	}
	cmd.ID = id
	cmd.Actor = actor(r)

	updated, err := mediator.Send[app.UpdateProductCommand, app.ProductResult](r.Context(), bus, cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {array} app.FieldError
// @Router /api/admin/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if _, err := mediator.Send[app.DeleteProductCommand, app.Unit](r.Context(), bus, app.DeleteProductCommand{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
