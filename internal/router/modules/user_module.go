package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stocknest/backend/internal/container"
	handlers "github.com/stocknest/backend/internal/interface/http"
	"github.com/stocknest/backend/internal/interface/middleware"
	"github.com/stocknest/backend/pkg/helpers"
)

// UserModule wires account HTTP handlers into routes.
// Public: POST /api/register, POST /api/login, POST /api/refresh,
// GET /api/user/:id.
// Protected: POST /api/logout, GET /api/profile.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limiting; no-op when Redis is absent
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)
	rg.GET("/user/:id", m.Handler.GetUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	// Authenticated routes are limited per user, not per IP
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile", m.Handler.Profile)
		auth.POST("/logout", m.Handler.Logout)
	}
}
