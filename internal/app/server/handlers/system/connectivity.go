package system

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServerConnectivity 服务连通性探活
func (h *SystemHandler) ServerConnectivity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is working!"})
}

// DBConnectivity 数据库连通性探活，底层执行一次 ping
func (h *SystemHandler) DBConnectivity(c *gin.Context) {
	if err := h.ping(c.Request.Context()); err != nil {
		log.Printf("[ERROR] DBConnectivity ping failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": 1})
}
