package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/pkg/ginx"
	"ixp/apiserver/internal/app/server/middlewares"
)

// Logout 注销当前 token，拉黑到它自然过期
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(middlewares.TokenHeader)

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		log.Printf("[ERROR] logout failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	ginx.Message(c, http.StatusOK, "Logout successful")
}
