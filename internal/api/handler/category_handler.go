package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// CategoryHandler serves the back-office /user/categories surface.
type CategoryHandler struct {
	store ports.CategoryStore
}

func NewCategoryHandler(store ports.CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateCategoryRequest struct {
	CategoryID int    `json:"category_id" validate:"required"`
	Name       string `json:"name"        validate:"required"`
}

type deleteCategoryRequest struct {
	CategoryID int `json:"category_id" validate:"required"`
}

// List returns all product categories.
//
// @Summary      List categories
// @Tags         admin
// @Produce      json
// @Success      200  {object}  envelope.Envelope
// @Router       /user/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	env, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return send(c, env)
}

// Create adds a category.
//
// @Summary      Create category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category name"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgCategoryNameRequired)
	}

	env, err := h.store.Create(c.Request().Context(), ports.CategoryInput{Name: req.Name})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Update renames a category.
//
// @Summary      Update category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      updateCategoryRequest  true  "Category fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/categories [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgCategoryFieldsRequired)
	}

	env, err := h.store.Update(c.Request().Context(), ports.CategoryInput{
		CategoryID: req.CategoryID,
		Name:       req.Name,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Delete removes a category. Products referencing it are left untouched.
//
// @Summary      Delete category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      deleteCategoryRequest  true  "Category id"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/categories [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	var req deleteCategoryRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgCategoryIDRequired)
	}

	env, err := h.store.Delete(c.Request().Context(), req.CategoryID)
	if err != nil {
		return err
	}
	return send(c, env)
}
