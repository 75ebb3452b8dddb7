// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fablite/fablite/internal/auth/token"
	"github.com/fablite/fablite/internal/middleware"
	"github.com/fablite/fablite/internal/team/handler"
	"github.com/fablite/fablite/internal/team/repository"
	"github.com/fablite/fablite/internal/team/service"
	userRepository "github.com/fablite/fablite/internal/user/repository"
)

// RegisterRoutes registers team module routes. inviteBase is the public base
// URL invite links are derived from.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *token.Manager, logger *zap.SugaredLogger, inviteBase string) {
	repo := repository.New(db, logger)
	users := userRepository.New(db, logger)
	svc := service.New(repo, users, db, logger, inviteBase)
	h := handler.New(svc, logger)

	auth := middleware.Auth(tokens, logger)

	r.POST("/new_team", auth, h.CreateTeam)
	r.POST("/:team/add_member", h.AddMember)
	r.DELETE("/:team/:email", auth, h.RemoveMember)
	r.PUT("/:team/:email/profile", auth, h.UpdateProfile)
	r.GET("/:team", h.GetMembers)
}
