package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase  usecase.AuthUseCase
	userCommands commands.UserCommands
	cfg          config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, userCommands commands.UserCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		userCommands: userCommands,
		cfg:          cfg,
	}
}

// @Summary Register
// @Description Create a guest account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} queries.AuthorizedUserView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.userCommands.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrEmailAlreadyUsed) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Email address already registered", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	token, user, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cfg.Cookie, token, h.cfg.JWT.Duration)

	response := resdto.LoginResponse{
		AccessToken: token,
		User:        user,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary User logout
// @Description Logout current user session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserContext, "User not authenticated", nil)
		return
	}

	user, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, usecase.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
