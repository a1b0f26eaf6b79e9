package auth

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
	"ixp/apiserver/internal/app/pkg/jwtx"
	"ixp/apiserver/internal/app/server/middlewares"
)

// LoggedInAdmin 按 token 载荷返回当前管理员，口令哈希不回传
func (h *AuthHandler) LoggedInAdmin(c *gin.Context) {
	value, ok := c.Get(middlewares.CtxClaimsKey)
	if !ok {
		ginx.Message(c, http.StatusUnauthorized, "Token is missing")
		return
	}
	claims := value.(*jwtx.Claims)

	adminID, err := claims.ParseAdminID()
	if err != nil {
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	admin, err := h.authService.CurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		log.Printf("[ERROR] load logged-in admin failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if admin == nil {
		ginx.Message(c, http.StatusNotFound, "Admin not found")
		return
	}
	c.JSON(http.StatusOK, response.FromAdminEntity(admin))
}
