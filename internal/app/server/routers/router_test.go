package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/entity/etproduct"
	"ixp/apiserver/internal/app/domains/modules/mdadmin"
	"ixp/apiserver/internal/app/domains/modules/mdcustomer"
	"ixp/apiserver/internal/app/domains/modules/mdorder"
	"ixp/apiserver/internal/app/domains/modules/mdproduct"
	"ixp/apiserver/internal/app/domains/repo/repotest"
	"ixp/apiserver/internal/app/domains/services/svauth"
	"ixp/apiserver/internal/app/domains/services/svcustomer"
	"ixp/apiserver/internal/app/domains/services/svorder"
	"ixp/apiserver/internal/app/domains/services/svproduct"
	"ixp/apiserver/internal/app/pkg/logger"
	"ixp/apiserver/internal/app/pkg/metrics"
	"ixp/apiserver/internal/app/server/handlers/auth"
	"ixp/apiserver/internal/app/server/handlers/customer"
	"ixp/apiserver/internal/app/server/handlers/order"
	"ixp/apiserver/internal/app/server/handlers/product"
	"ixp/apiserver/internal/app/server/handlers/system"
	"ixp/apiserver/internal/app/server/middlewares"
)

const testSecret = "router-test-secret"

// newTestRouter 用内存仓储装配一套完整路由
func newTestRouter(t *testing.T) (*gin.Engine, *repotest.OrderRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := &repotest.ProductRepo{Products: []*etproduct.Product{
		{ID: 201, Name: "MALM Bed Frame", Price: 25, Category: "Beds"},
		{ID: 202, Name: "KALLAX Shelf", Price: 40, Category: "Storage"},
	}}
	customerRepo := &repotest.CustomerRepo{Customers: []*etcustomer.Customer{
		{ID: 301, Name: "Alice Andersson", MembershipStatus: "Gold",
			Contact: etcustomer.Contact{Email: "alice@example.com"}},
	}}
	orderRepo := &repotest.OrderRepo{Orders: []*etorder.Order{
		{ID: 401, CustomerID: 301, OrderDate: "2024-03-15",
			DeliveryStatus: "Pending", OrderStatus: "Awaiting",
			Products: []etorder.LineItem{
				{ProductID: 201, Quantity: 2},
				{ProductID: 202, Quantity: 1},
			}},
	}}
	adminRepo := &repotest.AdminRepo{}
	tokenStore := repotest.NewTokenStore()

	productModule := mdproduct.NewProductModule(productRepo)
	customerModule := mdcustomer.NewCustomerModule(customerRepo)
	orderModule := mdorder.NewOrderModule(orderRepo, customerRepo, productRepo)
	adminModule := mdadmin.NewAdminModule(adminRepo, tokenStore)

	handlers := &Handlers{
		System: system.NewSystemHandler(func(context.Context) error { return nil }),
		Product: product.NewProductHandler(
			svproduct.NewProductService(productModule)),
		Customer: customer.NewCustomerHandler(
			svcustomer.NewCustomerService(customerModule)),
		Order: order.NewOrderHandler(
			svorder.NewOrderService(orderModule)),
		Auth: auth.NewAuthHandler(
			svauth.NewAuthService(adminModule, testSecret, 24*time.Hour)),
	}

	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	authMW := middlewares.JWTAuth(testSecret, tokenStore)
	return SetupRoutes(handlers, log, metrics.NewRegistry(), authMW), orderRepo
}

func doRequest(router *gin.Engine, method, path string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServerConnectivity(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/server_connectivity", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"API is working!"}`, w.Body.String())
}

func TestFetchOrdersWithDetails(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/fetch-orders-with-details", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, float64(301), got["customerId"])
	assert.Equal(t, "Alice Andersson", got["customerName"])
	assert.Equal(t, "15-03-2024", got["orderDate"])
	assert.Equal(t, "90.00", got["totalPrice"])
	assert.Equal(t, float64(3), got["totalQuantity"])
	assert.Equal(t, "90.00", got["totalSales"])
	assert.Equal(t, "Awaiting", got["orderStatus"])
	assert.Equal(t, float64(401), got["id"])

	lines := got["products"].([]interface{})
	require.Len(t, lines, 2)
	first := lines[0].(map[string]interface{})
	assert.Equal(t, "MALM Bed Frame", first["name"])
	assert.Equal(t, "50.00", first["totalPrice"])
}

func TestOrdersWithNumberOfProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/orders-with-number-of-products?num_products=2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var matched []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matched))
	assert.Len(t, matched, 1)

	w = doRequest(router, http.MethodGet, "/api/orders-with-number-of-products?num_products=5", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &matched))
	assert.Empty(t, matched)
}

func TestUpdateOrderStatus(t *testing.T) {
	router, orderRepo := newTestRouter(t)

	body := []byte(`{"order_id": 401, "order_status": "Delivered"}`)
	w := doRequest(router, http.MethodPut, "/api/update-order-status", body, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Order 401 marked as Delivered successfully !"}`, w.Body.String())
	assert.Equal(t, "Delivered", orderRepo.Orders[0].OrderStatus)

	body = []byte(`{"order_id": 999, "order_status": "Delivered"}`)
	w = doRequest(router, http.MethodPut, "/api/update-order-status", body, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Failed to update the status for this order. Please try again!"}`, w.Body.String())
}

func TestTotalSalesPerCustomer(t *testing.T) {
	router, orderRepo := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/total-sales-per-customer", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"customer_id":301,"total_sale":90}]`, w.Body.String())

	// 没有任何订单时 404
	orderRepo.Orders = nil
	w = doRequest(router, http.MethodGet, "/api/total-sales-per-customer", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No orders found"}`, w.Body.String())
}

func TestFindProductsByIDs(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/find-products-by-product-ids?product_ids=201&product_ids=202", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
	assert.Equal(t, float64(201), products[0]["_id"])

	w = doRequest(router, http.MethodGet, "/api/find-products-by-product-ids?product_ids=999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No products found."}`, w.Body.String())
}

func TestGetCustomerByID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/get-customer-by-customer-id?customer_id=301", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Alice Andersson", got["name"])

	// 未命中时 404 回显查询的客户ID
	w = doRequest(router, http.MethodGet, "/api/get-customer-by-customer-id?customer_id=777", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"No customer found.","See":777}`, w.Body.String())
}

func TestFindCustomersByMembershipStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/find-customers-by-membership-status", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing membership_status parameter"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/find-customers-by-membership-status?membership_status=Platinum", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/find-customers-by-membership-status?membership_status=Gold", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	// 注册
	signupBody := []byte(`{"fullname":"Alice Andersson","username":"alice","password":"s3cret","email":"alice@example.com"}`)
	w := doRequest(router, http.MethodPost, "/api/signup", signupBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// 重复邮箱被拒
	w = doRequest(router, http.MethodPost, "/api/signup", signupBody, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 登录
	loginBody := []byte(`{"username":"alice","password":"s3cret"}`)
	w = doRequest(router, http.MethodPost, "/api/login", loginBody, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)
	tokenHeader := map[string]string{"x-access-token": loginResp.Token}

	// 无 token 访问受保护接口
	w = doRequest(router, http.MethodGet, "/api/logged-in-admin", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Token is missing"}`, w.Body.String())

	// 带 token 取当前管理员，口令不回传
	w = doRequest(router, http.MethodGet, "/api/logged-in-admin", nil, tokenHeader)
	require.Equal(t, http.StatusOK, w.Code)
	var admin map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &admin))
	assert.Equal(t, "alice", admin["username"])
	assert.NotContains(t, admin, "password")

	// 注销
	w = doRequest(router, http.MethodGet, "/api/logout", nil, tokenHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Logout successful"}`, w.Body.String())

	// 注销后的 token 视为无效
	w = doRequest(router, http.MethodGet, "/api/logged-in-admin", nil, tokenHeader)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWrongCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/login",
		[]byte(`{"username":"ghost","password":"whatever"}`), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Username or email not found. Please check your credentials or sign up to create a new account."}`, w.Body.String())

	signupBody := []byte(`{"fullname":"Alice","username":"alice","password":"s3cret","email":"alice@example.com"}`)
	w = doRequest(router, http.MethodPost, "/api/signup", signupBody, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/login",
		[]byte(`{"username":"alice","password":"wrong"}`), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Password is incorrect"}`, w.Body.String())
}

func TestFindOrdersByIDsEchoesQuery(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/find-orders-by-order-ids?order_ids=777", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":[777]}`, w.Body.String())
}

func TestMetricsExposition(t *testing.T) {
	router, _ := newTestRouter(t)

	// 先产生一次请求，再抓指标
	doRequest(router, http.MethodGet, "/api/server_connectivity", nil, nil)
	w := doRequest(router, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ixp_http_requests_total")
}
