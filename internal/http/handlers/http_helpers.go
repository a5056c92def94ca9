package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/app"
	mw "github.com/rogerio-castellano/product-catalog/internal/http/middleware"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return errors.Wrap(err, "failed to read JSON")
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "failed to encode JSON")
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return errors.Wrap(err, "failed to write to response")
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logger.WithError(err).Warn("failed to write JSON response")
	}
}

// badRequest answers 400 with a single field error.
func badRequest(w http.ResponseWriter, field, description string) {
	respond(w, http.StatusBadRequest, []app.FieldError{{Field: field, Description: description}})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	respond(w, status, mw.ErrorResponse{StatusCode: status, Message: message})
}

// writeError maps an error from the mediator to its HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *app.ValidationError
	switch {
	case errors.As(err, &verr):
		respond(w, http.StatusBadRequest, verr.Errors)
	case errors.Is(err, repo.ErrCategoryInUse):
		writeMessage(w, http.StatusConflict, "category is referenced by products")
	case errors.Is(err, repo.ErrProductNotFound):
		writeMessage(w, http.StatusNotFound, "product not found")
	case errors.Is(err, repo.ErrCategoryNotFound):
		writeMessage(w, http.StatusNotFound, "category not found")
	default:
		logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeMessage(w, http.StatusInternalServerError, mw.GenericErrorMessage)
	}
}

func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "id", "id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func actor(r *http.Request) string {
	if c, ok := claimsFrom(r); ok {
		return c.Subject
	}
	return ""
}
