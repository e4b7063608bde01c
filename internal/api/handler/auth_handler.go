package handler

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/pkg/response"
	"Pulse/internal/pkg/util"
	"Pulse/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.authSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

// OAuthLogin 用第三方授权码换取会话
func (h *AuthHandler) OAuthLogin(c *gin.Context) {
	provider := c.Param("provider")

	var oauthDTO dto.OAuthDTO
	if err := c.ShouldBind(&oauthDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&oauthDTO); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.authSvc.OAuthLogin(c.Request.Context(), provider, &oauthDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

// GetSession 还原会话。无令牌时返回未登录态而不是错误
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.authSvc.GetSession(c.Request.Context(), bearerToken(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		response.Success(c, &dto.SessionDTO{State: dto.SessionSignedOut})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.SessionDTO{State: dto.SessionSignedOut})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
