package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oktarian/shopstock/internal/application"
	pginfra "github.com/oktarian/shopstock/internal/infrastructure/postgres"
	"github.com/oktarian/shopstock/pkg/response"
	"github.com/oktarian/shopstock/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Audit  *pginfra.AuditRepository
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, audit *pginfra.AuditRepository, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Audit: audit, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func audit(c *gin.Context, repo *pginfra.AuditRepository, logger *logrus.Logger, email, action string, metadata map[string]any) {
	if repo == nil {
		return
	}
	entry := pginfra.AuditEntry{
		Email:     email,
		Action:    action,
		IP:        clientIP(c),
		UserAgent: c.GetHeader("User-Agent"),
		Metadata:  metadata,
	}
	if err := repo.Insert(c.Request.Context(), entry); err != nil && logger != nil {
		logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Verify(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			audit(c, h.Audit, h.Logger, req.Email, "login_rejected", nil)
			response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
			return
		}
		response.Error[any](c, http.StatusServiceUnavailable, application.ErrUnavailable.Error(), nil)
		return
	}

	audit(c, h.Audit, h.Logger, res.Email, "login_ok", map[string]any{"name": res.Name})
	response.Success(c, http.StatusOK, res, "login successful", nil)
}
