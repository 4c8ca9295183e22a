package models

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Ingredient struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name"`
	Price string `json:"price" validate:"omitempty,numeric"`
}
