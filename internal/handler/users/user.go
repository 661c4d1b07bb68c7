package users

import (
	"errors"
	"net/http"

	"storefront/internal/api"
	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	createUser  = store.CreateUser
	updateUser  = store.UpdateUser
	deleteUser  = store.DeleteUser
)

// @Summary     List users
// @Description Returns every user in store order
// @Tags        users
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error fetching users", err))
		}
		return c.JSON(http.StatusOK, api.List(users, len(users)))
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     string true "User ID (24 hex chars)"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !store.ValidID(id) {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid user ID format"))
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Fail("User not found"))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error fetching user", err))
		}
		return c.JSON(http.StatusOK, api.OK(user))
	}
}

// @Summary     Create a user
// @Description Name and email required; email must be unique (case-insensitive)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body     api.CreateUserRequest true "New user"
// @Success     201  {object} api.Response
// @Failure     400  {object} api.Response
// @Failure     409  {object} api.Response
// @Failure     500  {object} api.Response
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		}

		req.Name = service.NormalizeText(req.Name)
		req.Email = service.NormalizeEmail(req.Email)
		req.Role = service.NormalizeText(req.Role)

		if rule := service.ValidateCreateUser(req); rule != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(rule.Reason))
		}
		if req.Role == "" {
			req.Role = "user"
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:  req.Name,
			Email: req.Email,
			Age:   req.Age,
			Role:  req.Role,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, api.Fail("User with this email already exists"))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error creating user", err))
		}
		return c.JSON(http.StatusCreated, api.OKMessage("User created successfully", user))
	}
}

// @Summary     Update a user
// @Description Partial update; absent fields keep their stored value
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     string                true "User ID (24 hex chars)"
// @Param       user body     api.UpdateUserRequest true "Fields to change"
// @Success     200  {object} api.Response
// @Failure     400  {object} api.Response
// @Failure     404  {object} api.Response
// @Failure     409  {object} api.Response
// @Failure     500  {object} api.Response
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !store.ValidID(id) {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid user ID format"))
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		}

		if _, err := getUserByID(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("User not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fault("Error updating user", err))
		}

		if req.Name != nil {
			*req.Name = service.NormalizeText(*req.Name)
		}
		if req.Email != nil {
			*req.Email = service.NormalizeEmail(*req.Email)
		}
		if req.Role != nil {
			*req.Role = service.NormalizeText(*req.Role)
		}

		if rule := service.ValidateUpdateUser(req); rule != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(rule.Reason))
		}

		patch := store.UserPatch{
			Name:  req.Name,
			Email: req.Email,
			Age:   req.Age,
			Role:  req.Role,
		}
		user, err := updateUser(c.Request().Context(), db, id, patch)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Fail("User not found"))
		}
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, api.Fail("Email already in use by another user"))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error updating user", err))
		}
		if patch.Empty() {
			// updatedAt was still refreshed above.
			return c.JSON(http.StatusBadRequest, api.Fail("No changes made to user"))
		}
		return c.JSON(http.StatusOK, api.OKMessage("User updated successfully", user))
	}
}

// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Param       id  path     string true "User ID (24 hex chars)"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !store.ValidID(id) {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid user ID format"))
		}
		if _, err := getUserByID(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("User not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fault("Error deleting user", err))
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("User not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fault("Error deleting user", err))
		}
		return c.JSON(http.StatusOK, api.OKMessage("User deleted successfully", echo.Map{"id": id}))
	}
}
