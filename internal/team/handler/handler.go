// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fablite/fablite/internal/middleware"
	teamModel "github.com/fablite/fablite/internal/team/model"
	"github.com/fablite/fablite/internal/team/service"
	userModel "github.com/fablite/fablite/internal/user/model"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateTeam handles POST /new_team requests. The caller becomes the leader.
func (h *Handler) CreateTeam(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), userID, req.TeamName)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamExists) {
			errorResponse(c, http.StatusBadRequest, "Team name already exists")
			return
		}
		if errors.Is(err, userModel.ErrUserNotFound) {
			errorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		h.logger.Errorw("error creating team", "team_name", req.TeamName, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// AddMember handles POST /:team/add_member requests. Deliberately
// unauthenticated: anyone holding the invite link can join.
func (h *Handler) AddMember(c *gin.Context) {
	teamName := c.Param("team")

	var req teamModel.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	_, err := h.service.AddMember(c.Request.Context(), teamName, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			errorResponse(c, http.StatusNotFound, "Team not found")
			return
		}
		if errors.Is(err, userModel.ErrEmailTaken) {
			errorResponse(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.logger.Errorw("error adding member", "team_name", teamName, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	messageResponse(c, http.StatusCreated, "Member added successfully")
}

// RemoveMember handles DELETE /:team/:email requests. Leader only.
func (h *Handler) RemoveMember(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	teamName := c.Param("team")
	email := c.Param("email")

	err := h.service.RemoveMember(c.Request.Context(), teamName, email, userID)
	if err != nil {
		switch {
		case errors.Is(err, userModel.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "User not found")
		case errors.Is(err, teamModel.ErrTeamNotFound):
			errorResponse(c, http.StatusNotFound, "Team not found")
		case errors.Is(err, teamModel.ErrForbidden):
			errorResponse(c, http.StatusForbidden, "Unauthorized access")
		case errors.Is(err, teamModel.ErrNotAMember):
			errorResponse(c, http.StatusBadRequest, "User does not belong to this team")
		default:
			h.logger.Errorw("error removing member",
				"team_name", teamName, "email", email, "error", err)
			errorResponse(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	messageResponse(c, http.StatusOK, "User removed from team successfully")
}

// UpdateProfile handles PUT /:team/:email/profile requests. Self-service only.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		errorResponse(c, http.StatusUnauthorized, "Missing authorization token")
		return
	}

	teamName := c.Param("team")
	email := c.Param("email")

	var req teamModel.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	err := h.service.UpdateProfile(c.Request.Context(), teamName, email, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, userModel.ErrUserNotFound):
			errorResponse(c, http.StatusNotFound, "User not found")
		case errors.Is(err, teamModel.ErrForbidden):
			errorResponse(c, http.StatusForbidden, "Unauthorized access")
		default:
			h.logger.Errorw("error updating profile", "email", email, "error", err)
			errorResponse(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	messageResponse(c, http.StatusOK, "Profile updated successfully")
}

// GetMembers handles GET /:team requests. Public listing.
func (h *Handler) GetMembers(c *gin.Context) {
	teamName := c.Param("team")

	resp, err := h.service.GetMembers(c.Request.Context(), teamName)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			errorResponse(c, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.Errorw("error listing members", "team_name", teamName, "error", err)
		errorResponse(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resp)
}
