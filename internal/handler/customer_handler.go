package handler

import (
	"encoding/json"
	"net/http"

	"eurder/internal/mapper"
	"eurder/internal/model"
	"eurder/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	service service.CustomerService
	logger  zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service service.CustomerService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger.With().Str("handler", "customer").Logger(),
	}
}

// Create handles POST /api/customers requests.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var dto mapper.CustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	customer, err := mapper.CustomerToDomain(dto)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	stored, err := h.service.Create(r.Context(), customer)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, mapper.CustomerToDTO(stored))
}

// GetAll handles GET /api/customers requests.
func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	customers, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	dtos := make([]mapper.CustomerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = mapper.CustomerToDTO(c)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetByID handles GET /api/customers/{id} requests.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	idStr := pathSuffix(r.URL.Path, "/api/customers/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMalformedIdentifier, "customer ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeDomainError(w, model.ErrMalformedIdentifier, h.logger)
		return
	}

	customer, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mapper.CustomerToDTO(customer))
}

// pathSuffix returns the part of path after prefix, or "" when there is none.
func pathSuffix(path, prefix string) string {
	if len(path) <= len(prefix) {
		return ""
	}
	return path[len(prefix):]
}
