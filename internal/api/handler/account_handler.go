package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
)

// AccountHandler serves the identity endpoints behind the Auth middleware.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Me returns the account of the authenticated caller.
//
// @Summary      Current user
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Get(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, user)
}

// SetEnabled enables or disables an account. Admin only. Disabling takes
// effect on the next login or refresh; outstanding access tokens stay valid
// until they expire.
//
// @Summary      Enable or disable a user account
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      setEnabledRequest  true  "Enabled flag"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id}/enabled [patch]
func (h *AccountHandler) SetEnabled(c echo.Context) error {
	var req setEnabledRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.accounts.SetEnabled(c.Request().Context(), c.Param("id"), *req.Enabled)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, user)
}
