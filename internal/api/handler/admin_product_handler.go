package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// AdminProductHandler serves the back-office /user/products surface.
type AdminProductHandler struct {
	store ports.ProductStore
}

func NewAdminProductHandler(store ports.ProductStore) *AdminProductHandler {
	return &AdminProductHandler{store: store}
}

type createProductRequest struct {
	Name       string  `json:"name"        validate:"required"`
	Price      string  `json:"price"       validate:"required"`
	SOH        int     `json:"soh"         validate:"required"`
	CategoryID int     `json:"category_id" validate:"required"`
	IsActive   *bool   `json:"is_active"`
	ImageURL   *string `json:"image_url"`
}

type updateProductRequest struct {
	ProductID  int     `json:"product_id" validate:"required"`
	Name       string  `json:"name"`
	Price      string  `json:"price"`
	SOH        int     `json:"soh"`
	CategoryID int     `json:"category_id"`
	IsActive   *bool   `json:"is_active"`
	ImageURL   *string `json:"image_url"`
}

type deleteProductRequest struct {
	ProductID int `json:"product_id" validate:"required"`
}

// List returns every product for the back office.
//
// @Summary      List products (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  envelope.Envelope
// @Router       /user/products [get]
func (h *AdminProductHandler) List(c echo.Context) error {
	env, err := h.store.AdminList(c.Request().Context())
	if err != nil {
		return err
	}
	return send(c, env)
}

// Create adds a product. Note that a stock count of zero fails the required
// check, same as a missing one.
//
// @Summary      Create product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/products [post]
func (h *AdminProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgProductFieldsRequired)
	}

	env, err := h.store.Create(c.Request().Context(), ports.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		SOH:        req.SOH,
		CategoryID: req.CategoryID,
		IsActive:   req.IsActive,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Update modifies a product.
//
// @Summary      Update product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      updateProductRequest  true  "Product fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/products [put]
func (h *AdminProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgProductIDRequired)
	}

	env, err := h.store.Update(c.Request().Context(), ports.ProductInput{
		ProductID:  req.ProductID,
		Name:       req.Name,
		Price:      req.Price,
		SOH:        req.SOH,
		CategoryID: req.CategoryID,
		IsActive:   req.IsActive,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      deleteProductRequest  true  "Product id"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/products [delete]
func (h *AdminProductHandler) Delete(c echo.Context) error {
	var req deleteProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgProductIDRequired)
	}

	env, err := h.store.Delete(c.Request().Context(), req.ProductID)
	if err != nil {
		return err
	}
	return send(c, env)
}
