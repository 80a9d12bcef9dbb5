package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// CartHandler serves the /cart surface. The cart key is (member_id,
// product_id); reads and deletes identify it through query parameters,
// writes through the JSON body.
type CartHandler struct {
	store ports.CartStore
}

func NewCartHandler(store ports.CartStore) *CartHandler {
	return &CartHandler{store: store}
}

type cartItemRequest struct {
	MemberID  int `json:"member_id"  validate:"required"`
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity"   validate:"required"`
}

// Get returns a member's cart.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Param        member_id  query     string  true  "Member id"
// @Success      200        {object}  envelope.Envelope
// @Failure      400        {object}  envelope.Envelope
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	memberID := c.QueryParam("member_id")
	if memberID == "" {
		return fail(c, http.StatusBadRequest, msgMemberIDRequired)
	}

	env, err := h.store.Get(c.Request().Context(), memberID)
	if err != nil {
		return err
	}
	return send(c, env)
}

// Add puts a product into the cart. A quantity of zero fails the required
// check, same as a missing one.
//
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      cartItemRequest  true  "Cart item"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgCartFieldsRequired)
	}

	env, err := h.store.Add(c.Request().Context(), ports.CartInput{
		MemberID:  req.MemberID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Update changes the quantity of a cart item.
//
// @Summary      Update cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      cartItemRequest  true  "Cart item"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /cart [put]
func (h *CartHandler) Update(c echo.Context) error {
	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgCartFieldsRequired)
	}

	env, err := h.store.Update(c.Request().Context(), ports.CartInput{
		MemberID:  req.MemberID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Remove deletes a cart item.
//
// @Summary      Remove from cart
// @Tags         cart
// @Produce      json
// @Param        member_id   query     string  true  "Member id"
// @Param        product_id  query     string  true  "Product id"
// @Success      200         {object}  envelope.Envelope
// @Failure      400         {object}  envelope.Envelope
// @Router       /cart [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	memberID := c.QueryParam("member_id")
	productID := c.QueryParam("product_id")
	if memberID == "" || productID == "" {
		return fail(c, http.StatusBadRequest, msgCartKeyRequired)
	}

	env, err := h.store.Remove(c.Request().Context(), memberID, productID)
	if err != nil {
		return err
	}
	return send(c, env)
}
