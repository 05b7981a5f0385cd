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

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. The response is the creation
// acknowledgement carrying the generated order id and computed total.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var dto mapper.OrderCreationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	customerID, groups, err := mapper.OrderCreationToDomain(dto)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), customerID, groups)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, mapper.OrderToAfterCreationDTO(order))
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	idStr := pathSuffix(r.URL.Path, "/api/orders/")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMalformedIdentifier, "order ID is required", h.logger)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeDomainError(w, model.ErrMalformedIdentifier, h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mapper.OrderToDTO(order))
}

// Report handles GET /api/orders/reports requests: the cross-order report
// with a grand total over every order.
func (h *OrderHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, mapper.OrdersToReportDTO(orders))
}
