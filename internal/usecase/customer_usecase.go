package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	orderRepo    repo.OrderRepository
	maxPageSize  int
}

// DI
func NewCustomerUsecase(
	customerRepo repo.CustomerRepository,
	orderRepo repo.OrderRepository,
	maxPageSize int,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		maxPageSize:  maxPageSize,
	}
}

// GET /customersの入力DTO
type ListCustomersInput struct {
	Page   int
	Limit  int
	Search string
}

// 一覧は顧客の素の射影をそのまま返す。注文集計は詳細側だけで行う。
type CustomerListOutput struct {
	Customers  []model.Customer `json:"customers"`
	Pagination PaginationOutput `json:"pagination"`
	Search     string           `json:"search,omitempty"`
	Status     int              `json:"status"`
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context, in ListCustomersInput) (CustomerListOutput, error) {
	if err := validatePageLimit(in.Page, in.Limit, u.maxPageSize); err != nil {
		return CustomerListOutput{}, err
	}

	search := strings.TrimSpace(in.Search)
	if len(search) > 255 {
		return CustomerListOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid search", "Search term is too long")
	}

	customers, total, err := u.customerRepo.List(ctx, repo.CustomerListQuery{
		Page:   in.Page,
		Limit:  in.Limit,
		Search: search,
	})
	if err != nil {
		return CustomerListOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching customers")
	}

	if customers == nil {
		customers = []model.Customer{}
	}

	return CustomerListOutput{
		Customers:  customers,
		Pagination: buildPagination(in.Page, in.Limit, total),
		Search:     search,
		Status:     http.StatusOK,
	}, nil
}

type CoordinatesOutput struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type LocationOutput struct {
	Address     string            `json:"address"`
	City        string            `json:"city"`
	State       string            `json:"state"`
	PostalCode  string            `json:"postal_code"`
	Country     string            `json:"country"`
	Coordinates CoordinatesOutput `json:"coordinates"`
}

type CustomerOutput struct {
	ID           int64          `json:"id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	FullName     string         `json:"full_name"`
	Email        string         `json:"email"`
	Age          *int           `json:"age"`
	Gender       *string        `json:"gender"`
	Location     LocationOutput `json:"location"`
	SearchTerm   *string        `json:"search_term"`
	RegisteredAt time.Time      `json:"registered_at"`
}

// 4ステータス固定のカウント。存在しないステータスも0で必ず出す。
type OrdersByStatusOutput struct {
	Pending   int64 `json:"pending"`
	Shipped   int64 `json:"shipped"`
	Delivered int64 `json:"delivered"`
	Returned  int64 `json:"returned"`
}

type OrderSummaryOutput struct {
	TotalOrders         int64                `json:"total_orders"`
	OrdersByStatus      OrdersByStatusOutput `json:"orders_by_status"`
	TotalItemsPurchased int64                `json:"total_items_purchased"`
	FirstOrderDate      *time.Time           `json:"first_order_date"`
	LastOrderDate       *time.Time           `json:"last_order_date"`
}

type CustomerDetailOutput struct {
	Customer     CustomerOutput     `json:"customer"`
	OrderSummary OrderSummaryOutput `json:"order_summary"`
	Status       int                `json:"status"`
}

func (u *CustomerUsecase) GetCustomerDetail(ctx context.Context, customerID int64) (CustomerDetailOutput, error) {
	if customerID <= 0 {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusBadRequest,
			"Invalid Customer ID", "Customer ID must be a positive integer")
	}

	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusNotFound,
			"Customer Not Found", fmt.Sprintf("Customer with ID %d does not exist", customerID))
	}
	if err != nil {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching customer details")
	}

	stats, err := u.orderRepo.StatsByCustomer(ctx, customerID)
	if err != nil {
		return CustomerDetailOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching customer details")
	}

	return CustomerDetailOutput{
		Customer:     toCustomerOutput(c),
		OrderSummary: toOrderSummaryOutput(stats),
		Status:       http.StatusOK,
	}, nil
}

func toCustomerOutput(c model.Customer) CustomerOutput {
	return CustomerOutput{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FirstName + " " + c.LastName,
		Email:     c.Email,
		Age:       c.Age,
		Gender:    c.Gender,
		Location: LocationOutput{
			Address:    c.Address,
			City:       c.City,
			State:      c.State,
			PostalCode: c.PostalCode,
			Country:    c.Country,
			Coordinates: CoordinatesOutput{
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
			},
		},
		SearchTerm:   c.SearchTerm,
		RegisteredAt: c.Timestamp,
	}
}

func toOrderSummaryOutput(stats repo.OrderStats) OrderSummaryOutput {
	return OrderSummaryOutput{
		TotalOrders: stats.TotalOrders,
		OrdersByStatus: OrdersByStatusOutput{
			Pending:   stats.PendingOrders,
			Shipped:   stats.ShippedOrders,
			Delivered: stats.DeliveredOrders,
			Returned:  stats.ReturnedOrders,
		},
		TotalItemsPurchased: stats.TotalItems,
		FirstOrderDate:      stats.FirstOrderDate,
		LastOrderDate:       stats.LastOrderDate,
	}
}
