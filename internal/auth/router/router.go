// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fablite/fablite/internal/auth/handler"
	"github.com/fablite/fablite/internal/auth/service"
	"github.com/fablite/fablite/internal/auth/token"
	"github.com/fablite/fablite/internal/middleware"
	userRepository "github.com/fablite/fablite/internal/user/repository"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *token.Manager, logger *zap.SugaredLogger) {
	users := userRepository.New(db, logger)
	svc := service.New(users, tokens, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/protected", middleware.Auth(tokens, logger), h.Protected)
}
