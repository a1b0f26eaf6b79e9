package auth

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/request"
	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/errorx"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// Signup 注册管理员
func (h *AuthHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestValidation(c, err)
		return
	}

	admin, err := h.authService.Signup(c.Request.Context(),
		req.Fullname, req.Username, req.Password, req.Email, req.ProfilePhoto)
	if err != nil {
		switch {
		case errors.Is(err, errorx.ErrEmailRegistered):
			ginx.Message(c, http.StatusBadRequest, "An account is already registered with this email. Please log in instead.")
		case errors.Is(err, errorx.ErrPasswordRequired):
			ginx.Message(c, http.StatusBadRequest, "Password is required.")
		default:
			log.Printf("[ERROR] signup failed: %v", err)
			ginx.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, response.SignupResponse{
		Message: "Admin created successfully!",
		AdminID: strconv.FormatInt(admin.ID, 10),
	})
}
