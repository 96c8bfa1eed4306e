package cart

type AddItemRequest struct {
	UserID    string `json:"userId" binding:"required" validate:"required"`
	ProductID string `json:"productId" binding:"required" validate:"required"`
	Quantity  int32  `json:"quantity" binding:"required,min=1" validate:"required,min=1"`
}

type UpdateItemRequest struct {
	UserID    string `json:"userId" binding:"required" validate:"required"`
	ProductID string `json:"productId" binding:"required" validate:"required"`
	// Quantity <= 0 dieksekusi sebagai penghapusan item.
	Quantity int32 `json:"quantity"`
}

type RemoveItemRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

type CartItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int32   `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
}

// SnapshotResponse adalah potret cart yang selalu dihitung server.
type SnapshotResponse struct {
	UserID      string             `json:"userId"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	TotalItems  int64              `json:"totalItems"`
}
