package order

import "time"

type CheckoutRequest struct {
	UserID        string `json:"userId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Notes         string `json:"notes"`
}

type ListOrdersQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

type OrderItemResponse struct {
	ID           string  `json:"id"`
	ProductID    string  `json:"productId"`
	NameSnapshot string  `json:"nameSnapshot"`
	UnitPrice    float64 `json:"unitPrice"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	UserID        string              `json:"userId"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	Notes         string              `json:"notes,omitempty"`
	TotalAmount   float64             `json:"totalAmount"`
	Items         []OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type OrderStatsResponse struct {
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	CancelledOrders int64   `json:"cancelledOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}
