package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Age   *int   `json:"age" example:"30"`
	Role  string `json:"role" example:"user"`
}
