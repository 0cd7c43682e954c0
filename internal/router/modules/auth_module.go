package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oktarian/shopstock/internal/container"
	handlers "github.com/oktarian/shopstock/internal/interface/http"
	"github.com/oktarian/shopstock/internal/interface/middleware"
)

// AuthModule wires the login endpoint.
// Public: POST /api/login (tight per-IP rate limit; the endpoint compares
// credentials, so brute-force pressure lands here first)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil) // 10 req/min per IP

	rg.POST("/login", loginLimiter, m.Handler.Login)
}
