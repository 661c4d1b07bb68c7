package api

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name        string   `json:"name" example:"Pen"`
	Description string   `json:"description" example:"Ballpoint, blue ink"`
	Price       *float64 `json:"price" example:"1.5"`
	Category    string   `json:"category" example:"stationery"`
	InStock     *bool    `json:"inStock" example:"true"`
}
