package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/config"
	"ixp/apiserver/internal/app/domains/modules/mdadmin"
	"ixp/apiserver/internal/app/domains/modules/mdcustomer"
	"ixp/apiserver/internal/app/domains/modules/mdorder"
	"ixp/apiserver/internal/app/domains/modules/mdproduct"
	"ixp/apiserver/internal/app/domains/repo/rpadmin"
	"ixp/apiserver/internal/app/domains/repo/rpcustomer"
	"ixp/apiserver/internal/app/domains/repo/rporder"
	"ixp/apiserver/internal/app/domains/repo/rpproduct"
	"ixp/apiserver/internal/app/domains/services/svauth"
	"ixp/apiserver/internal/app/domains/services/svcustomer"
	"ixp/apiserver/internal/app/domains/services/svorder"
	"ixp/apiserver/internal/app/domains/services/svproduct"
	"ixp/apiserver/internal/app/infra/persistence/mongodb"
	"ixp/apiserver/internal/app/infra/persistence/redis"
	"ixp/apiserver/internal/app/pkg/logger"
	"ixp/apiserver/internal/app/pkg/metrics"
	"ixp/apiserver/internal/app/server/handlers/auth"
	"ixp/apiserver/internal/app/server/handlers/customer"
	"ixp/apiserver/internal/app/server/handlers/order"
	"ixp/apiserver/internal/app/server/handlers/product"
	"ixp/apiserver/internal/app/server/handlers/system"
	"ixp/apiserver/internal/app/server/middlewares"
	"ixp/apiserver/internal/app/server/routers"
)

// App 聚合应用运行所需的全部组件
type App struct {
	Router *gin.Engine
	Logger logger.Logger
}

// InitializeApp 按依赖顺序手工装配应用
// 自底向上：基础设施 → 仓储 → 模块 → 服务 → 接口 → 路由
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	db, dbCleanup, err := mongodb.NewDatabase(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("init mongodb failed: %w", err)
	}

	tokenStore, err := redis.NewTokenStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}

	cleanup := func() {
		_ = tokenStore.Close()
		dbCleanup()
		_ = log.Sync()
	}

	// 仓储层
	productRepo := rpproduct.NewProductRepository(db)
	customerRepo := rpcustomer.NewCustomerRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	adminRepo := rpadmin.NewAdminRepository(db)
	if err := adminRepo.EnsureIndexes(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("ensure admin indexes failed: %w", err)
	}

	// 模块层
	productModule := mdproduct.NewProductModule(productRepo)
	customerModule := mdcustomer.NewCustomerModule(customerRepo)
	orderModule := mdorder.NewOrderModule(orderRepo, customerRepo, productRepo)
	adminModule := mdadmin.NewAdminModule(adminRepo, tokenStore)

	// 服务层
	productService := svproduct.NewProductService(productModule)
	customerService := svcustomer.NewCustomerService(customerModule)
	orderService := svorder.NewOrderService(orderModule)
	authService := svauth.NewAuthService(adminModule, cfg.Auth.SecretKey, cfg.Auth.TokenTTL)

	// 接口层
	handlers := &routers.Handlers{
		System: system.NewSystemHandler(func(ctx context.Context) error {
			return mongodb.Ping(ctx, db)
		}),
		Product:  product.NewProductHandler(productService),
		Customer: customer.NewCustomerHandler(customerService),
		Order:    order.NewOrderHandler(orderService),
		Auth:     auth.NewAuthHandler(authService),
	}

	reg := metrics.NewRegistry()
	authMW := middlewares.JWTAuth(cfg.Auth.SecretKey, tokenStore)
	router := routers.SetupRoutes(handlers, log, reg, authMW)

	return &App{Router: router, Logger: log}, cleanup, nil
}
