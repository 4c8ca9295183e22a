package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ModificationRequest struct {
	IngredientID string           `json:"ingredient_id" binding:"required"`
	Kind         ModificationKind `json:"kind" binding:"required,oneof=add remove extra"`
	Quantity     int              `json:"quantity" binding:"required,gte=1"`
}

type UpdateModificationsRequest struct {
	Modifications []ModificationRequest `json:"modifications" binding:"dive"`
}
