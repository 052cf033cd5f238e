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

type OrderUsecase struct {
	customerRepo repo.CustomerRepository
	orderRepo    repo.OrderRepository
	maxPageSize  int
}

// DI
func NewOrderUsecase(
	customerRepo repo.CustomerRepository,
	orderRepo repo.OrderRepository,
	maxPageSize int,
) *OrderUsecase {
	return &OrderUsecase{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		maxPageSize:  maxPageSize,
	}
}

// GET /customers/:id/ordersの入力DTO
type ListCustomerOrdersInput struct {
	Page   int
	Limit  int
	Status string
}

type OrderOutput struct {
	OrderID     int64      `json:"order_id"`
	UserID      int64      `json:"user_id"`
	Status      string     `json:"status"`
	Gender      *string    `json:"gender"`
	NumOfItems  int64      `json:"num_of_items"`
	CreatedAt   time.Time  `json:"created_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	ReturnedAt  *time.Time `json:"returned_at"`
}

// 一覧応答に載せる顧客の最小エコー
type CustomerRefOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type OrderFilterOutput struct {
	Status string `json:"status"`
}

type CustomerOrdersOutput struct {
	Customer   CustomerRefOutput  `json:"customer"`
	Orders     []OrderOutput      `json:"orders"`
	Pagination PaginationOutput   `json:"pagination"`
	Filter     *OrderFilterOutput `json:"filter,omitempty"`
	Status     int                `json:"status"`
}

func (u *OrderUsecase) ListCustomerOrders(ctx context.Context, customerID int64, in ListCustomerOrdersInput) (CustomerOrdersOutput, error) {
	if customerID <= 0 {
		return CustomerOrdersOutput{}, NewHTTPError(http.StatusBadRequest,
			"Invalid Customer ID", "Customer ID must be a positive integer")
	}
	if err := validatePageLimit(in.Page, in.Limit, u.maxPageSize); err != nil {
		return CustomerOrdersOutput{}, err
	}

	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status != "" && !model.KnownOrderStatus(status) {
		return CustomerOrdersOutput{}, NewHTTPError(http.StatusBadRequest,
			"Invalid status", "Status must be one of pending, shipped, delivered, returned")
	}

	//顧客の存在確認
	c, err := u.customerRepo.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return CustomerOrdersOutput{}, NewHTTPError(http.StatusNotFound,
			"Customer Not Found", fmt.Sprintf("Customer with ID %d does not exist", customerID))
	}
	if err != nil {
		return CustomerOrdersOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching customer orders")
	}

	orders, total, err := u.orderRepo.ListByCustomer(ctx, customerID, repo.OrderListQuery{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: status,
	})
	if err != nil {
		return CustomerOrdersOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching customer orders")
	}

	items := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderOutput(o))
	}

	out := CustomerOrdersOutput{
		Customer: CustomerRefOutput{
			ID:   c.ID,
			Name: c.FirstName + " " + c.LastName,
		},
		Orders:     items,
		Pagination: buildPagination(in.Page, in.Limit, total),
		Status:     http.StatusOK,
	}
	if status != "" {
		out.Filter = &OrderFilterOutput{Status: status}
	}

	return out, nil
}

// 注文詳細のタイムスタンプはまとめて1ブロックで出す
type OrderTimestampsOutput struct {
	CreatedAt   time.Time  `json:"created_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	ReturnedAt  *time.Time `json:"returned_at"`
}

type OrderDetailBodyOutput struct {
	OrderID    int64                 `json:"order_id"`
	UserID     int64                 `json:"user_id"`
	Status     string                `json:"status"`
	Gender     *string               `json:"gender"`
	NumOfItems int64                 `json:"num_of_items"`
	Timestamps OrderTimestampsOutput `json:"timestamps"`
}

// 注文詳細に添える顧客。親顧客が消えていてもnullのまま返す（LEFT JOIN相当）。
type OrderCustomerOutput struct {
	ID        int64                       `json:"id"`
	FirstName *string                     `json:"first_name"`
	LastName  *string                     `json:"last_name"`
	FullName  *string                     `json:"full_name"`
	Email     *string                     `json:"email"`
	Age       *int                        `json:"age"`
	Location  OrderCustomerLocationOutput `json:"location"`
}

type OrderCustomerLocationOutput struct {
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

type OrderDetailOutput struct {
	Order    OrderDetailBodyOutput `json:"order"`
	Customer OrderCustomerOutput   `json:"customer"`
	Status   int                   `json:"status"`
}

func (u *OrderUsecase) GetOrderDetail(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	if orderID <= 0 {
		return OrderDetailOutput{}, NewHTTPError(http.StatusBadRequest,
			"Invalid Order ID", "Order ID must be a positive integer")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderDetailOutput{}, NewHTTPError(http.StatusNotFound,
			"Order Not Found", fmt.Sprintf("Order with ID %d does not exist", orderID))
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching order details")
	}

	out := OrderDetailOutput{
		Order: OrderDetailBodyOutput{
			OrderID:    o.OrderID,
			UserID:     o.UserID,
			Status:     string(o.Status),
			Gender:     o.Gender,
			NumOfItems: o.NumOfItem,
			Timestamps: OrderTimestampsOutput{
				CreatedAt:   o.CreatedAt,
				ShippedAt:   o.ShippedAt,
				DeliveredAt: o.DeliveredAt,
				ReturnedAt:  o.ReturnedAt,
			},
		},
		Customer: OrderCustomerOutput{ID: o.UserID},
		Status:   http.StatusOK,
	}

	c, err := u.customerRepo.FindByID(ctx, o.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		//親のいない注文はデータ異常だが、注文自体は返す
		return out, nil
	}
	if err != nil {
		return OrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError,
			"Database Error", "An error occurred while fetching order details")
	}

	fullName := c.FirstName + " " + c.LastName
	out.Customer = OrderCustomerOutput{
		ID:        c.ID,
		FirstName: &c.FirstName,
		LastName:  &c.LastName,
		FullName:  &fullName,
		Email:     &c.Email,
		Age:       c.Age,
		Location: OrderCustomerLocationOutput{
			City:    &c.City,
			State:   &c.State,
			Country: &c.Country,
		},
	}

	return out, nil
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		Gender:      o.Gender,
		NumOfItems:  o.NumOfItem,
		CreatedAt:   o.CreatedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		ReturnedAt:  o.ReturnedAt,
	}
}
