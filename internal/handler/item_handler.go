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

// ItemHandler handles catalogue item HTTP requests.
type ItemHandler struct {
	service service.ItemService
	logger  zerolog.Logger
}

// NewItemHandler creates a new item handler.
func NewItemHandler(service service.ItemService, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "item").Logger(),
	}
}

// Create handles POST /api/items requests.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var dto mapper.ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := mapper.ItemToDomain(dto)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	stored, err := h.service.Create(r.Context(), item)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, mapper.ItemToDTO(stored))
}

// Update handles PUT /api/items/{id} requests. The path id wins over any id
// in the body.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	idStr := pathSuffix(r.URL.Path, "/api/items/")
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeDomainError(w, model.ErrMalformedIdentifier, h.logger)
		return
	}

	var dto mapper.ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	dto.ID = id.String()

	item, err := mapper.ItemToDomain(dto)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), item)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mapper.ItemToDTO(updated))
}

// GetAll handles GET /api/items requests.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	items, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	dtos := make([]mapper.ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = mapper.ItemToDTO(item)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// GetByID handles GET /api/items/{id} requests.
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	idStr := pathSuffix(r.URL.Path, "/api/items/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMalformedIdentifier, "item ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeDomainError(w, model.ErrMalformedIdentifier, h.logger)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mapper.ItemToDTO(item))
}
