package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshop/internal/application/auth"
	"bookshop/internal/interface/http/dto"
	"bookshop/internal/interface/http/mapper"
	"bookshop/internal/interface/http/middleware"
	"bookshop/pkg/response"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	auth *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{auth: uc}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "credentials"
// @Success 201 {object} dto.UserResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	u, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Nickname)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, mapper.ToUserResponse(u))
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.TokenResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token.AccessToken,
		TokenType: token.TokenType,
		ExpiresIn: token.ExpiresIn,
	})
}

// Logout godoc
// @Summary Revoke the presented bearer token
// @Tags auth
// @Success 204
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
