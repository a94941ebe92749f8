package request

type ProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Status      string   `json:"status" validate:"required,oneof=active inactive"`
	Images      []string `json:"images,omitempty" validate:"dive,url"`
	Price       float64  `json:"price" validate:"required,gte=0"`
}

type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Images      []string `json:"images,omitempty" validate:"dive,url"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}
