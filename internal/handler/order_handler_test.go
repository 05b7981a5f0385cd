package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eurder/internal/mapper"
	"eurder/internal/model"
	"eurder/internal/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, customerID uuid.UUID, groups []model.ItemGroup) (model.Order, error) {
	args := m.Called(ctx, customerID, groups)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uuid.UUID) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrderService) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func testOrder(t *testing.T, lines ...struct {
	amount int
	price  string
}) model.Order {
	t.Helper()
	items := make([]model.OrderItem, len(lines))
	for i, l := range lines {
		p, err := money.Parse(l.price)
		require.NoError(t, err)
		item, err := model.NewOrderItem(uuid.New(), l.amount, p)
		require.NoError(t, err)
		items[i] = item
	}
	return model.NewOrder(uuid.New(), uuid.New(), items)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	order := testOrder(t,
		struct {
			amount int
			price  string
		}{5, "10.00"},
		struct {
			amount int
			price  string
		}{1, "20.00"},
	)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockOrderService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Success",
			requestBody: mapper.OrderCreationDTO{
				CustomerID: order.CustomerID.String(),
				ItemGroups: []mapper.ItemGroupDTO{
					{ItemID: uuid.New().String(), OrderedAmount: 5},
				},
			},
			setupMock: func(m *MockOrderService) {
				m.On("Create", mock.Anything, order.CustomerID, mock.AnythingOfType("[]model.ItemGroup")).
					Return(order, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid JSON body",
			requestBody:    "{not json",
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeInvalidJSON,
		},
		{
			name: "Malformed customer ID",
			requestBody: mapper.OrderCreationDTO{
				CustomerID: "not-a-uuid",
			},
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeMalformedIdentifier,
		},
		{
			name: "Unknown customer",
			requestBody: mapper.OrderCreationDTO{
				CustomerID: uuid.New().String(),
				ItemGroups: []mapper.ItemGroupDTO{
					{ItemID: uuid.New().String(), OrderedAmount: 1},
				},
			},
			setupMock: func(m *MockOrderService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]model.ItemGroup")).
					Return(model.Order{}, model.ErrUnknownCustomer)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeUnknownCustomer,
		},
		{
			name: "Invalid quantity",
			requestBody: mapper.OrderCreationDTO{
				CustomerID: uuid.New().String(),
				ItemGroups: []mapper.ItemGroupDTO{
					{ItemID: uuid.New().String(), OrderedAmount: 0},
				},
			},
			setupMock:      func(m *MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrCodeInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			tt.setupMock(mockService)

			h := NewOrderHandler(mockService, logger)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", &body)
			w := httptest.NewRecorder()

			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp mapper.OrderAfterCreationDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, order.ID.String(), resp.OrderID)
				assert.Equal(t, 70.00, resp.TotalPrice)
			} else if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	order := testOrder(t, struct {
		amount int
		price  string
	}{2, "15.00"})

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("GetByID", mock.Anything, order.ID).Return(order, nil)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+order.ID.String(), nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp mapper.OrderDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, order.ID.String(), resp.ID)
		assert.Equal(t, 30.00, resp.TotalPrice)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		mockService := new(MockOrderService)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		id := uuid.New()
		mockService := new(MockOrderService)
		mockService.On("GetByID", mock.Anything, id).Return(model.Order{}, model.ErrNotFound)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/"+id.String(), nil)
		w := httptest.NewRecorder()

		h.GetByID(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_Report(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Sums totals across orders", func(t *testing.T) {
		order1 := testOrder(t,
			struct {
				amount int
				price  string
			}{1, "35.00"},
			struct {
				amount int
				price  string
			}{1, "45.00"},
		)
		order2 := testOrder(t, struct {
			amount int
			price  string
		}{1, "40.00"})

		mockService := new(MockOrderService)
		mockService.On("GetAll", mock.Anything).Return([]model.Order{order1, order2}, nil)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/reports", nil)
		w := httptest.NewRecorder()

		h.Report(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp mapper.OrdersReportDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 120.00, resp.TotalPriceOfAllOrders)
		assert.Len(t, resp.Orders, 2)
	})

	t.Run("Empty store yields zero total", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("GetAll", mock.Anything).Return([]model.Order{}, nil)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/reports", nil)
		w := httptest.NewRecorder()

		h.Report(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp mapper.OrdersReportDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 0.00, resp.TotalPriceOfAllOrders)
		assert.Empty(t, resp.Orders)
	})
}
