package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type HCustomerRepoMock struct{ mock.Mock }

func (m *HCustomerRepoMock) List(ctx context.Context, q repo.CustomerListQuery) ([]model.Customer, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *HCustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

type HOrderRepoMock struct{ mock.Mock }

func (m *HOrderRepoMock) StatsByCustomer(ctx context.Context, customerID int64) (repo.OrderStats, error) {
	args := m.Called(ctx, customerID)
	stats, _ := args.Get(0).(repo.OrderStats)
	return stats, args.Error(1)
}

func (m *HOrderRepoMock) ListByCustomer(ctx context.Context, customerID int64, q repo.OrderListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, customerID, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *HOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func testConfig() config.Config {
	return config.Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
		QueryTimeout:    5 * time.Second,
		APITitle:        "Customer API",
		APIVersion:      "1.0.0",
		GoEnv:           "test",
	}
}

func newCustomerEcho(cRepo *HCustomerRepoMock, oRepo *HOrderRepoMock) *echo.Echo {
	cfg := testConfig()
	uc := usecase.NewCustomerUsecase(cRepo, oRepo, cfg.MaxPageSize)
	h := handler.NewCustomerHandler(uc, cfg)

	e := echo.New()
	h.RegisterRoutes(e.Group("/api"))
	return e
}

func doGet(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, body []byte) handler.ErrorResponse {
	t.Helper()
	var v handler.ErrorResponse
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(ErrorResponse) failed: %v body=%s", err, string(body))
	}
	return v
}

// =====================
// GET /api/customers
// =====================

func TestCustomerHandler_List_OK(t *testing.T) {
	cRepo := new(HCustomerRepoMock)
	e := newCustomerEcho(cRepo, new(HOrderRepoMock))

	cRepo.On("List", mock.Anything, repo.CustomerListQuery{Page: 1, Limit: 10, Search: "ali"}).
		Return([]model.Customer{{ID: 1, FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}}, int64(1), nil)

	rec := doGet(e, "/api/customers?search=ali")
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CustomerListOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, len(out.Customers))
	assert.Equal(t, "ali", out.Search)
	assert.Equal(t, int64(1), out.Pagination.TotalCount)
	assert.Equal(t, int64(1), out.Pagination.TotalPages)
	assert.Equal(t, http.StatusOK, out.Status)
}

func TestCustomerHandler_List_NonIntegerPage(t *testing.T) {
	e := newCustomerEcho(new(HCustomerRepoMock), new(HOrderRepoMock))

	rec := doGet(e, "/api/customers?page=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "Invalid page number", body.Error)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.NotEmpty(t, body.Message)
}

func TestCustomerHandler_List_LimitOutOfRange(t *testing.T) {
	e := newCustomerEcho(new(HCustomerRepoMock), new(HOrderRepoMock))

	rec := doGet(e, "/api/customers?limit=101")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "Invalid limit", body.Error)
}

// =====================
// GET /api/customers/:id
// =====================

func TestCustomerHandler_Detail_NonIntegerID(t *testing.T) {
	e := newCustomerEcho(new(HCustomerRepoMock), new(HOrderRepoMock))

	rec := doGet(e, "/api/customers/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "Invalid Customer ID", body.Error)
}

func TestCustomerHandler_Detail_NonPositiveID(t *testing.T) {
	e := newCustomerEcho(new(HCustomerRepoMock), new(HOrderRepoMock))

	for _, path := range []string{"/api/customers/0", "/api/customers/-1"} {
		rec := doGet(e, path)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)

		body := decodeErrorResponse(t, rec.Body.Bytes())
		assert.Equal(t, "Invalid Customer ID", body.Error, path)
	}
}

func TestCustomerHandler_Detail_NotFound(t *testing.T) {
	cRepo := new(HCustomerRepoMock)
	e := newCustomerEcho(cRepo, new(HOrderRepoMock))

	cRepo.On("FindByID", mock.Anything, int64(999999)).Return(model.Customer{}, repo.ErrNotFound)

	rec := doGet(e, "/api/customers/999999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "Customer Not Found", body.Error)
	assert.Equal(t, http.StatusNotFound, body.Status)
}

func TestCustomerHandler_Detail_OK(t *testing.T) {
	cRepo := new(HCustomerRepoMock)
	oRepo := new(HOrderRepoMock)
	e := newCustomerEcho(cRepo, oRepo)

	cRepo.On("FindByID", mock.Anything, int64(1)).
		Return(model.Customer{ID: 1, FirstName: "Alice", LastName: "Smith", City: "Tokyo"}, nil)
	oRepo.On("StatsByCustomer", mock.Anything, int64(1)).
		Return(repo.OrderStats{TotalOrders: 2, DeliveredOrders: 2, TotalItems: 5}, nil)

	rec := doGet(e, "/api/customers/1")
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CustomerDetailOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Alice Smith", out.Customer.FullName)
	assert.Equal(t, "Tokyo", out.Customer.Location.City)
	assert.Equal(t, int64(2), out.OrderSummary.TotalOrders)
	assert.Equal(t, int64(5), out.OrderSummary.TotalItemsPurchased)
	assert.Nil(t, out.OrderSummary.FirstOrderDate)
}

// orders_by_statusは4キー固定で出る
func TestCustomerHandler_Detail_FixedStatusKeys(t *testing.T) {
	cRepo := new(HCustomerRepoMock)
	oRepo := new(HOrderRepoMock)
	e := newCustomerEcho(cRepo, oRepo)

	cRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Customer{ID: 1}, nil)
	oRepo.On("StatsByCustomer", mock.Anything, int64(1)).Return(repo.OrderStats{}, nil)

	rec := doGet(e, "/api/customers/1")
	assert.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))

	var summary map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw["order_summary"], &summary))

	var byStatus map[string]int64
	assert.NoError(t, json.Unmarshal(summary["orders_by_status"], &byStatus))
	assert.Equal(t, map[string]int64{"pending": 0, "shipped": 0, "delivered": 0, "returned": 0}, byStatus)
}
