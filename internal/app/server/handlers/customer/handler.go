package customer

import (
	"ixp/apiserver/internal/app/domains/services/svcustomer"
)

// CustomerHandler 客户查询接口
type CustomerHandler struct {
	customerService *svcustomer.CustomerService
}

// NewCustomerHandler 创建 CustomerHandler
func NewCustomerHandler(customerService *svcustomer.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}
