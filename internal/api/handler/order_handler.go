package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// OrderHandler serves order placement and the back-office order list.
type OrderHandler struct {
	store ports.OrderStore
}

func NewOrderHandler(store ports.OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

type createOrderRequest struct {
	MemberID int `json:"member_id" validate:"required"`
}

// Create places an order from the member's current cart.
//
// @Summary      Create order
// @Tags         order
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Member id"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /order [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgMemberIDRequired)
	}

	env, err := h.store.Create(c.Request().Context(), req.MemberID)
	if err != nil {
		return err
	}
	return send(c, env)
}

// List returns orders, optionally filtered by member_id.
//
// @Summary      List orders
// @Tags         admin
// @Produce      json
// @Param        member_id  query     string  false  "Member id"
// @Success      200        {object}  envelope.Envelope
// @Router       /user/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	env, err := h.store.List(c.Request().Context(), c.QueryParam("member_id"))
	if err != nil {
		return err
	}
	return send(c, env)
}
