package validator

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ristiisa/credit-card-validator/validator/models"
)

// API is a HTTP API for the validator service
type API struct {
	validator *Service
}

func NewAPI(validator *Service) *API {
	return &API{
		validator: validator,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/validations", func(r chi.Router) {
		r.Post("/", a.createValidation)
	})
	// GET convenience for quick checks: /validate?date=06%2F24
	r.Get("/validate", a.validateQuery)
}

func (a *API) createValidation(w http.ResponseWriter, r *http.Request) {
	req := models.ValidateRequest{}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.respond(w, req.ExpirationDate)
}

func (a *API) validateQuery(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r.URL.Query().Get("date"))
}

func (a *API) respond(w http.ResponseWriter, raw string) {
	validation, err := a.validator.Check(raw)
	if err != nil {
		// Only contract violations reach here; they are defects, not
		// user errors.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(validation)
}
