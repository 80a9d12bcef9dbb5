package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// AdminMemberHandler serves the back-office /user/members surface. There is no
// authorization check on these routes; any caller who knows the path can
// invoke them.
type AdminMemberHandler struct {
	store ports.MemberStore
}

func NewAdminMemberHandler(store ports.MemberStore) *AdminMemberHandler {
	return &AdminMemberHandler{store: store}
}

type createMemberRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
	CreateAt string `json:"create_at"`
}

// List returns all members, or a single member when member_id is given.
//
// @Summary      List members
// @Tags         admin
// @Produce      json
// @Param        member_id  query     string  false  "Member id"
// @Success      200        {object}  envelope.Envelope
// @Router       /user/members [get]
func (h *AdminMemberHandler) List(c echo.Context) error {
	env, err := h.store.List(c.Request().Context(), c.QueryParam("member_id"))
	if err != nil {
		return err
	}
	return send(c, env)
}

// Create adds a member from the back office.
//
// @Summary      Create member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createMemberRequest  true  "Member fields"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/members [post]
func (h *AdminMemberHandler) Create(c echo.Context) error {
	var req createMemberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgAllFieldsRequired)
	}

	env, err := h.store.Create(c.Request().Context(), ports.CreateMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
		CreateAt: req.CreateAt,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Update modifies a member from the back office.
//
// @Summary      Update member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      updateMemberRequest  true  "Member fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/members [put]
func (h *AdminMemberHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgMemberIDRequired)
	}

	env, err := h.store.AdminUpdate(c.Request().Context(), ports.UpdateMemberInput{
		MemberID: req.MemberID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		CreateAt: req.CreateAt,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Delete removes a member from the back office.
//
// @Summary      Delete member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      deleteMemberRequest  true  "Member id"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/members [delete]
func (h *AdminMemberHandler) Delete(c echo.Context) error {
	var req deleteMemberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgMemberIDRequired)
	}

	env, err := h.store.AdminDelete(c.Request().Context(), req.MemberID)
	if err != nil {
		return err
	}
	return send(c, env)
}
