package models

// Product is the catalog record a cart line keeps a denormalized copy of.
// Price is a decimal string such as "22.90".
type Product struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required,numeric"`
	ImageURL    string `json:"imageUrl"`
	CategoryID  string `json:"categoryId"`
	IsFeatured  bool   `json:"isFeatured"`
	IsPromotion bool   `json:"isPromotion"`
}
