package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/request"
	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/errorx"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// Login 凭据校验并签发 token
// username 字段同时接受用户名或邮箱
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestValidation(c, err)
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrAdminNotFound):
			ginx.Message(c, http.StatusUnauthorized, "Username or email not found. Please check your credentials or sign up to create a new account.")
		case errors.Is(err, errorx.ErrWrongPassword):
			ginx.Message(c, http.StatusUnauthorized, "Password is incorrect")
		default:
			log.Printf("[ERROR] login failed: %v", err)
			ginx.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}
