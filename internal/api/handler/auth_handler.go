package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/booklore/booklore/internal/api/metrics"
	"github.com/booklore/booklore/internal/core/domain"
	"github.com/booklore/booklore/internal/core/ports"
)

// LoginThrottle rate-limits login attempts per email at the transport
// boundary (Redis-backed in production). A nil throttle disables limiting.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	Reset(ctx context.Context, email string) error
}

type AuthHandler struct {
	registration ports.RegistrationService
	auth         ports.AuthService
	refresh      ports.TokenRefreshService
	throttle     LoginThrottle
	log          zerolog.Logger
}

func NewAuthHandler(
	registration ports.RegistrationService,
	auth ports.AuthService,
	refresh ports.TokenRefreshService,
	throttle LoginThrottle,
	log zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		registration: registration,
		auth:         auth,
		refresh:      refresh,
		throttle:     throttle,
		log:          log,
	}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.registration.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameExists), errors.Is(err, domain.ErrEmailExists):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			h.log.Error().Err(err).Msg("registration failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, registerResponse{User: user})
}

// Login authenticates a user and returns an access/refresh token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	start := time.Now()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		allowed, err := h.throttle.Allow(ctx, req.Email)
		if err != nil {
			// Throttle outage must not lock everyone out.
			h.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many login attempts"})
		}
	}

	res, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.log.Error().Err(err).Msg("login failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	if h.throttle != nil {
		if err := h.throttle.Reset(ctx, req.Email); err != nil {
			h.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	metrics.LoginDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, tokenResponse{
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}

// Refresh exchanges a valid refresh token for a new token pair.
//
// @Summary      Refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	res, err := h.refresh.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRefreshTokenExpired):
			metrics.TokenRefreshesTotal.WithLabelValues("expired").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrInvalidRefreshToken):
			metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.TokenRefreshesTotal.WithLabelValues("user_not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrAccountDisabled):
			metrics.TokenRefreshesTotal.WithLabelValues("disabled").Inc()
			return c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
		default:
			metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
			h.log.Error().Err(err).Msg("token refresh failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}

	metrics.TokenRefreshesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, tokenResponse{
		User:         res.User,
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
	})
}
