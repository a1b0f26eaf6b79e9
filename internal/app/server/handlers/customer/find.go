package customer

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// ByMembershipStatus 按会员状态查询客户
func (h *CustomerHandler) ByMembershipStatus(c *gin.Context) {
	status := c.Query("membership_status")
	if status == "" {
		ginx.Error(c, http.StatusBadRequest, "Missing membership_status parameter")
		return
	}

	customers, err := h.customerService.GetCustomersByMembershipStatus(c.Request.Context(), status)
	if err != nil {
		log.Printf("[ERROR] find customers by membership status failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(customers) == 0 {
		ginx.Error(c, http.StatusNotFound, "No customers found with the provided membership status")
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerEntities(customers))
}

// ByEmail 按嵌套联系邮箱精确查询（大小写敏感），命中为空返回 200 空数组
func (h *CustomerHandler) ByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		ginx.Error(c, http.StatusBadRequest, "Missing email parameter")
		return
	}

	customers, err := h.customerService.GetCustomersByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[ERROR] find customers by email failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerEntities(customers))
}
