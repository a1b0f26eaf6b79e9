package routers

import (
	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/pkg/logger"
	"ixp/apiserver/internal/app/pkg/metrics"
	"ixp/apiserver/internal/app/server/handlers/auth"
	"ixp/apiserver/internal/app/server/handlers/customer"
	"ixp/apiserver/internal/app/server/handlers/order"
	"ixp/apiserver/internal/app/server/handlers/product"
	"ixp/apiserver/internal/app/server/handlers/system"
	"ixp/apiserver/internal/app/server/middlewares"
)

// Handlers 路由装配所需的全部接口实现
type Handlers struct {
	System   *system.SystemHandler
	Product  *product.ProductHandler
	Customer *customer.CustomerHandler
	Order    *order.OrderHandler
	Auth     *auth.AuthHandler
}

// SetupRoutes 装配路由与中间件
// authMW 只挂在需要登录态的接口上，读接口保持匿名可访问
func SetupRoutes(h *Handlers, log logger.Logger, reg *metrics.Registry, authMW gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(
		middlewares.RequestID(),
		middlewares.CORS(),
		middlewares.AccessLog(log),
		middlewares.Metrics(reg),
		middlewares.ErrorHandler(),
	)

	router.GET("/metrics", gin.WrapH(reg.Handler()))

	api := router.Group("/api")
	{
		// 探活
		api.GET("/db_connectivity", h.System.DBConnectivity)
		api.GET("/server_connectivity", h.System.ServerConnectivity)

		// 商品
		api.GET("/all-products", h.Product.All)
		api.GET("/find-products-by-product-ids", h.Product.ByIDs)
		api.GET("/find-products-by-multiple-categories", h.Product.ByCategories)
		api.GET("/find-products-within-price-range", h.Product.WithinPriceRange)
		api.GET("/products-sorted-by-price", h.Product.SortedByPrice)
		api.GET("/search-products-by-name", h.Product.SearchByName)

		// 客户
		api.GET("/all-customers", h.Customer.All)
		api.GET("/get-customer-by-customer-id", h.Customer.ByID)
		api.GET("/find-customers-by-membership-status", h.Customer.ByMembershipStatus)
		api.GET("/find-customer-by-email", h.Customer.ByEmail)
		api.GET("/search-customers-by-name", h.Customer.SearchByName)

		// 订单与报表
		api.GET("/all-orders", h.Order.All)
		api.GET("/find-orders-by-order-ids", h.Order.ByIDs)
		api.GET("/fetch-orders-with-details", h.Order.WithDetails)
		api.GET("/orders-with-number-of-products", h.Order.WithProductCount)
		api.GET("/total-sales-per-customer", h.Order.TotalSales)
		api.GET("/total-orders-per-customer", h.Order.TotalOrders)
		api.PUT("/update-order-status", h.Order.UpdateStatus)

		// 认证
		api.POST("/signup", h.Auth.Signup)
		api.POST("/login", h.Auth.Login)
		api.GET("/logout", authMW, h.Auth.Logout)
		api.GET("/logged-in-admin", authMW, h.Auth.LoggedInAdmin)
	}

	return router
}
