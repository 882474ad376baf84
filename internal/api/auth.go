package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lezzetli-tarifler/backend/internal/logger"
	"github.com/lezzetli-tarifler/backend/internal/middleware"
	"github.com/lezzetli-tarifler/backend/internal/service"
	"github.com/lezzetli-tarifler/backend/internal/types"
)

type AuthHandler struct {
	authService    service.IAuthService
	authMiddleware gin.HandlerFunc
	validate       *validator.Validate
}

func NewAuthHandler(authService service.IAuthService, authMiddleware gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		authMiddleware: authMiddleware,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.authMiddleware, h.Logout)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": registerValidationMessage(err)})
		return
	}

	user, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUsernameTaken})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailTaken})
		case errors.Is(err, service.ErrPasswordTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgPasswordTooLong})
		default:
			logger.Error(ctx).Err(err).Str("username", req.Username).Msg("failed to register user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgRegisterFailed})
		}
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		logger.Error(ctx).Err(err).Str("user_id", user.ID.String()).Msg("failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgRegisterFailed})
		return
	}

	logger.Info(ctx).Str("user_id", user.ID.String()).Msg("user registered")
	c.JSON(http.StatusCreated, types.AuthResponse{
		Message: msgRegisterSuccess,
		User:    user,
		Token:   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidRequest})
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgLoginMissing})
		return
	}

	user, err := h.authService.Login(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msgLoginInvalid})
			return
		}
		logger.Error(ctx).Err(err).Msg("failed to log in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoginFailed})
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		logger.Error(ctx).Err(err).Str("user_id", user.ID.String()).Msg("failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoginFailed})
		return
	}

	c.JSON(http.StatusOK, types.AuthResponse{
		Message: msgLoginSuccess,
		User:    user,
		Token:   token,
	})
}

// Logout revokes the bearer token used for this request
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}

	if err := h.authService.RevokeToken(ctx, claims); err != nil {
		logger.Error(ctx).Err(err).Str("user_id", claims.UserID.String()).Msg("failed to revoke token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLogoutFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgLogoutSuccess})
}

func registerValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return msgInvalidRequest
	}
	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return msgRegisterMissing
		}
	}
	switch fe := validationErrors[0]; fe.Tag() {
	case "email":
		return msgInvalidEmail
	case "min":
		return msgPasswordTooShort
	case "max":
		if fe.Field() == "Password" {
			return msgPasswordTooLong
		}
		return msgFieldTooLong
	default:
		return msgInvalidRequest
	}
}
