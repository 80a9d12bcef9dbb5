package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yu-shop/storefront-api/internal/core/ports"
)

// AdminUserHandler serves the back-office /user/users surface.
type AdminUserHandler struct {
	store ports.AdminUserStore
}

func NewAdminUserHandler(store ports.AdminUserStore) *AdminUserHandler {
	return &AdminUserHandler{store: store}
}

type adminLoginRequest struct {
	Account  string `json:"account"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createAdminUserRequest models level as a pointer: level 0 is a legitimate
// value, only its absence is rejected.
type createAdminUserRequest struct {
	Account  string `json:"account"  validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Level    *int   `json:"level"    validate:"required"`
}

type updateAdminUserRequest struct {
	UserID   int    `json:"userId" validate:"required"`
	Account  string `json:"account"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Level    *int   `json:"level"`
}

type deleteAdminUserRequest struct {
	UserID int `json:"userId" validate:"required"`
}

// Login authenticates a back-office account.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Credentials"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Failure      401   {object}  envelope.Envelope
// @Router       /user/users/login [post]
func (h *AdminUserHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgAccountPasswordRequired)
	}

	env, err := h.store.Login(c.Request().Context(), req.Account, req.Password)
	if err != nil {
		return err
	}
	return send(c, env)
}

// List returns all back-office accounts.
//
// @Summary      List admin users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  envelope.Envelope
// @Router       /user/users [get]
func (h *AdminUserHandler) List(c echo.Context) error {
	env, err := h.store.List(c.Request().Context())
	if err != nil {
		return err
	}
	return send(c, env)
}

// Create adds a back-office account.
//
// @Summary      Create admin user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createAdminUserRequest  true  "Account fields"
// @Success      201   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/users [post]
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req createAdminUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgAllFieldsRequired)
	}

	env, err := h.store.Create(c.Request().Context(), ports.AdminUserInput{
		Account:  req.Account,
		Password: req.Password,
		Name:     req.Name,
		Level:    req.Level,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Update modifies a back-office account.
//
// @Summary      Update admin user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      updateAdminUserRequest  true  "Account fields"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/users [put]
func (h *AdminUserHandler) Update(c echo.Context) error {
	var req updateAdminUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgAdminUserIDRequired)
	}

	env, err := h.store.Update(c.Request().Context(), ports.AdminUserInput{
		UserID:   req.UserID,
		Account:  req.Account,
		Password: req.Password,
		Name:     req.Name,
		Level:    req.Level,
	})
	if err != nil {
		return err
	}
	return send(c, env)
}

// Delete removes a back-office account.
//
// @Summary      Delete admin user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      deleteAdminUserRequest  true  "Account id"
// @Success      200   {object}  envelope.Envelope
// @Failure      400   {object}  envelope.Envelope
// @Router       /user/users [delete]
func (h *AdminUserHandler) Delete(c echo.Context) error {
	var req deleteAdminUserRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, msgAdminUserIDRequired)
	}

	env, err := h.store.Delete(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return send(c, env)
}
