package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/app"
	"github.com/rogerio-castellano/product-catalog/internal/mediator"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} app.CategoryResult
// @Failure 500 {object} middleware.ErrorResponse
// @Router /api/categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := mediator.Send[app.GetAllCategoriesQuery, []app.CategoryResult](r.Context(), bus, app.GetAllCategoriesQuery{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, categories)
}

// GetCategoryByIDHandler godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} app.CategoryResult
// @Failure 400 {array} app.FieldError
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/categories/{id} [get]
func GetCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	category, err := mediator.Send[app.GetCategoryByIDQuery, *app.CategoryResult](r.Context(), bus, app.GetCategoryByIDQuery{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	if category == nil {
		writeMessage(w, http.StatusNotFound, "category not found")
		return
	}
	respond(w, http.StatusOK, category)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body app.AddCategoryCommand true "Category to add"
// @Success 201 {object} app.CategoryResult
// @Failure 400 {array} app.FieldError
// @Router /api/admin/categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var cmd app.AddCategoryCommand
	if err := readJSON(w, r, &cmd); err != nil {
		badRequest(w, "body", err.Error())
		return
	}
	cmd.Actor = actor(r)

	created, err := mediator.Send[app.AddCategoryCommand, app.CategoryResult](r.Context(), bus, cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, created)
}

// UpdateCategoryHandler godoc
// @Summary Update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body app.UpdateCategoryCommand true "New category values"
// @Success 200 {object} app.CategoryResult
// @Failure 400 {array} app.FieldError
// @Failure 404 {object} middleware.ErrorResponse
// @Router /api/admin/categories/{id} [put]
func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var cmd app.UpdateCategoryCommand
	if err := readJSON(w, r, &cmd); err != nil {
		badRequest(w, "body", err.Error())
		return
	}
	cmd.ID = id
	cmd.Actor = actor(r)

	updated, err := mediator.Send[app.UpdateCategoryCommand, app.CategoryResult](r.Context(), bus, cmd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, updated)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Fails with 409 while products reference the category
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 409 {object} middleware.ErrorResponse
// @Router /api/admin/categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if _, err := mediator.Send[app.DeleteCategoryCommand, app.Unit](r.Context(), bus, app.DeleteCategoryCommand{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
