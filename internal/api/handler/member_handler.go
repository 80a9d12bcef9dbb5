package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// MemberHandler serves the self-service /member surface.
type MemberHandler struct {
	store ports.MemberStore
}

func NewMemberHandler(store ports.MemberStore) *MemberHandler {
	return &MemberHandler{store: store}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateMemberRequest struct {
	MemberID int    `json:"member_id" validate:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	CreateAt string `json:"create_at"`
}

type deleteMemberRequest struct {
	MemberID int `json:"member_id" validate:"required"`
}

type changePasswordRequest struct {
	MemberID    int    `json:"member_id"    validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// Register creates a new member account.
//
// @Summary      Register a member
// @Tags         member
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Member registration fields"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /member [post]
func (h *MemberHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgAllFieldsRequired)
	}

	env, err := h.store.Register(c.Request().Context(), ports.RegisterMemberInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Login authenticates a member.
//
// @Summary      Member login
// @Tags         member
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Failure      401   {object}  envelope.Envelope
// @Router       /member/login [post]
func (h *MemberHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgEmailPasswordRequired)
	}

	env, err := h.store.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return send(c, env)
}

// Get returns the member identified by the member_id query parameter.
//
// @Summary      Get member data
// @Tags         member
// @Produce      json
// @Param        member_id  query     string  true  "Member id"
// @Success      200        {object}  envelope.Envelope
// @Failure      400        {object}  envelope.Envelope
// @Router       /member [get]
func (h *MemberHandler) Get(c echo.Context) error {
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

// Update modifies the member's own profile.
//
// @Summary      Update member data
// @Tags         member
// @Accept       json
// @Produce      json
// @Param        body  body      updateMemberRequest  true  "Member fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /member [put]
func (h *MemberHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgMemberIDRequired)
	}

	env, err := h.store.Update(c.Request().Context(), ports.UpdateMemberInput{
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

// Delete removes the member's own account.
//
// @Summary      Delete member account
// @Tags         member
// @Accept       json
// @Produce      json
// @Param        body  body      deleteMemberRequest  true  "Member id"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /member [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	var req deleteMemberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgMemberIDRequired)
	}

	env, err := h.store.Delete(c.Request().Context(), req.MemberID)
	if err != nil {
		return err
	}
	return send(c, env)
}

// ChangePassword updates the member's password.
//
// @Summary      Change member password
// @Tags         member
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Password change fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /member/password [put]
func (h *MemberHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgPasswordFieldsRequired)
	}

	env, err := h.store.ChangePassword(c.Request().Context(), ports.ChangePasswordInput{
		MemberID:    req.MemberID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}
