package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/domain"
	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// ProductHandler serves the public catalog.
type ProductHandler struct {
	store ports.ProductStore
}

func NewProductHandler(store ports.ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// List returns the storefront catalog.
//
// @Summary      List products
// @Tags         product
// @Produce      json
// @Success      200  {object}  envelope.Envelope
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	env, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return send(c, env)
}

// Get returns a single product by id.
//
// @Summary      Get product
// @Tags         product
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  envelope.Envelope
// @Failure      404  {object}  envelope.Envelope
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return domain.ErrProductNotFound
	}

	env, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return send(c, env)
}
