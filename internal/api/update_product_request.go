package api

// UpdateProductRequest is a partial update; absent fields are left as-is.
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string  `json:"name" example:"Pen"`
	Description *string  `json:"description" example:"Ballpoint, blue ink"`
	Price       *float64 `json:"price" example:"1.5"`
	Category    *string  `json:"category" example:"stationery"`
	InStock     *bool    `json:"inStock" example:"false"`
}
