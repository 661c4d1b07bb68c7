package api

// UpdateUserRequest is a partial update; absent fields are left as-is.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  *string `json:"name" example:"Alice"`
	Email *string `json:"email" example:"alice@example.com"`
	Age   *int    `json:"age" example:"30"`
	Role  *string `json:"role" example:"admin"`
}
