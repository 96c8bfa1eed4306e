package product

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int32   `json:"stock" binding:"gte=0"`
	CategoryID  string  `json:"categoryId"`
	ImageURL    string  `json:"imageUrl"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Stock       *int32   `json:"stock" binding:"omitempty,gte=0"`
	CategoryID  *string  `json:"categoryId"`
	ImageURL    *string  `json:"imageUrl"`
}

type ListPublicQuery struct {
	Page       int    `form:"page,default=1" binding:"min=1"`
	Limit      int    `form:"limit,default=10" binding:"min=1,max=100"`
	Search     string `form:"search"`
	CategoryID string `form:"category"`
	SortBy     string `form:"sortBy"`
	SortDir    string `form:"sortDir"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int32   `json:"stock"`
	CategoryID  string  `json:"categoryId,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsActive    bool    `json:"isActive"`
}
