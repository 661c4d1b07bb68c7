package products

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
	listProducts   = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct  = store.CreateProduct
	updateProduct  = store.UpdateProduct
	deleteProduct  = store.DeleteProduct
)

// @Summary     List products
// @Description Returns every product in store order
// @Tags        products
// @Produce     json
// @Success     200 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /products [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error fetching products", err))
		}
		return c.JSON(http.StatusOK, api.List(products, len(products)))
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID (24 hex chars)"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     404 {object} api.Response
// @Failure     500 {object} api.Response
// @Router      /products/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !store.ValidID(id) {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid product ID format"))
		}
		product, err := getProductByID(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Fail("Product not found"))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error fetching product", err))
		}
		return c.JSON(http.StatusOK, api.OK(product))
	}
}

// @Summary     Create a product
// @Description Name and price required; price must be >= 0, name >= 2 chars
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       product body     api.CreateProductRequest true "New product"
// @Success     201     {object} api.Response
// @Failure     400     {object} api.Response
// @Failure     401     {object} api.Response
// @Failure     500     {object} api.Response
// @Security    ApiKeyAuth
// @Router      /products [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		}

		req.Name = service.NormalizeText(req.Name)
		req.Description = service.NormalizeText(req.Description)
		req.Category = service.NormalizeText(req.Category)

		if rule := service.ValidateCreateProduct(req); rule != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(rule.Reason))
		}
		if req.Category == "" {
			req.Category = "general"
		}
		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product, err := createProduct(c.Request().Context(), db, &model.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			Category:    req.Category,
			InStock:     inStock,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error creating product", err))
		}
		return c.JSON(http.StatusCreated, api.OKMessage("Product created successfully", product))
	}
}

// @Summary     Update a product
// @Description Partial update; absent fields keep their stored value
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product ID (24 hex chars)"
// @Param       product body     api.UpdateProductRequest true "Fields to change"
// @Success     200     {object} api.Response
// @Failure     400     {object} api.Response
// @Failure     401     {object} api.Response
// @Failure     404     {object} api.Response
// @Failure     500     {object} api.Response
// @Security    ApiKeyAuth
// @Router      /products/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !store.ValidID(id) {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid product ID format"))
		}

		var req api.UpdateProductRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid request body"))
		}

		if _, err := getProductByID(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Product not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fault("Error updating product", err))
		}

		if req.Name != nil {
			*req.Name = service.NormalizeText(*req.Name)
		}
		if req.Description != nil {
			*req.Description = service.NormalizeText(*req.Description)
		}
		if req.Category != nil {
			*req.Category = service.NormalizeText(*req.Category)
		}

		if rule := service.ValidateUpdateProduct(req); rule != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(rule.Reason))
		}

		patch := store.ProductPatch{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			InStock:     req.InStock,
		}
		product, err := updateProduct(c.Request().Context(), db, id, patch)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.Fail("Product not found"))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fault("Error updating product", err))
		}
		if patch.Empty() {
			// updatedAt was still refreshed above.
			return c.JSON(http.StatusBadRequest, api.Fail("No changes made to product"))
		}
		return c.JSON(http.StatusOK, api.OKMessage("Product updated successfully", product))
	}
}

// @Summary     Delete a product
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID (24 hex chars)"
// @Success     200 {object} api.Response
// @Failure     400 {object} api.Response
// @Failure     401 {object} api.Response
// @Failure     404 {object} api.Response
// @Failure     500 {object} api.Response
// @Security    ApiKeyAuth
// @Router      /products/{id} [delete]
func DeleteProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Param("id")
		if !store.ValidID(id) {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid product ID format"))
		}
		if _, err := getProductByID(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Product not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fault("Error deleting product", err))
		}
		if err := deleteProduct(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Product not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fault("Error deleting product", err))
		}
		return c.JSON(http.StatusOK, api.OKMessage("Product deleted successfully", echo.Map{"id": id}))
	}
}
