// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fablite/fablite/internal/auth/model"
	"github.com/fablite/fablite/internal/auth/service"
	"github.com/fablite/fablite/internal/middleware"
	userModel "github.com/fablite/fablite/internal/user/model"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register requests.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	_, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, userModel.ErrEmailTaken) {
			errorResponse(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.logger.Errorw("error registering user", "email", req.Email, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	messageResponse(c, http.StatusCreated, "User registered successfully")
}

// Login handles POST /auth/login requests.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	accessToken, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			errorResponse(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Errorw("error logging in", "email", req.Email, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{AccessToken: accessToken})
}

// Protected handles GET /auth/protected requests. The auth middleware has
// already resolved the token; a token for a deleted account still fails here.
func (h *Handler) Protected(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	user, err := h.service.Whoami(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		h.logger.Errorw("error resolving identity", "user_id", userID, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, model.WhoamiResponse{Email: user.Email})
}
