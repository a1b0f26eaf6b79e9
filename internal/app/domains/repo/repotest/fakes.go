// Package repotest 提供各仓储接口的内存假实现，供服务与接口层测试使用
package repotest

import (
	"context"
	"sort"
	"strings"
	"time"

	"ixp/apiserver/internal/app/domains/entity/etadmin"
	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/entity/etproduct"
)

// ProductRepo 商品仓储的内存实现
type ProductRepo struct {
	Products []*etproduct.Product
}

func (r *ProductRepo) ListAll(_ context.Context) ([]*etproduct.Product, error) {
	return r.Products, nil
}

func (r *ProductRepo) GetByIDs(_ context.Context, ids []int64) ([]*etproduct.Product, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*etproduct.Product
	for _, p := range r.Products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) GetByCategories(_ context.Context, categories []string) ([]*etproduct.Product, error) {
	want := make(map[string]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	var out []*etproduct.Product
	for _, p := range r.Products {
		if want[p.Category] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) GetByPriceRange(_ context.Context, minPrice, maxPrice float64) ([]*etproduct.Product, error) {
	var out []*etproduct.Product
	for _, p := range r.Products {
		if p.Price >= minPrice && p.Price <= maxPrice {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) SearchByName(_ context.Context, query string) ([]*etproduct.Product, error) {
	var out []*etproduct.Product
	for _, p := range r.Products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) ListSortedByPrice(_ context.Context, descending bool) ([]*etproduct.Product, error) {
	out := make([]*etproduct.Product, len(r.Products))
	copy(out, r.Products)
	sort.Slice(out, func(i, j int) bool {
		if descending {
			return out[i].Price > out[j].Price
		}
		return out[i].Price < out[j].Price
	})
	return out, nil
}

// CustomerRepo 客户仓储的内存实现
type CustomerRepo struct {
	Customers []*etcustomer.Customer
}

func (r *CustomerRepo) ListAll(_ context.Context) ([]*etcustomer.Customer, error) {
	return r.Customers, nil
}

func (r *CustomerRepo) GetByID(_ context.Context, customerID int64) (*etcustomer.Customer, error) {
	for _, c := range r.Customers {
		if c.ID == customerID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) GetByMembershipStatus(_ context.Context, status string) ([]*etcustomer.Customer, error) {
	var out []*etcustomer.Customer
	for _, c := range r.Customers {
		if c.MembershipStatus == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerRepo) GetByEmail(_ context.Context, email string) ([]*etcustomer.Customer, error) {
	var out []*etcustomer.Customer
	for _, c := range r.Customers {
		if c.Contact.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *CustomerRepo) SearchByName(_ context.Context, query string) ([]*etcustomer.Customer, error) {
	var out []*etcustomer.Customer
	for _, c := range r.Customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(query)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// OrderRepo 订单仓储的内存实现
type OrderRepo struct {
	Orders []*etorder.Order
}

func (r *OrderRepo) ListAll(_ context.Context) ([]*etorder.Order, error) {
	return r.Orders, nil
}

func (r *OrderRepo) GetByIDs(_ context.Context, ids []int64) ([]*etorder.Order, error) {
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*etorder.Order
	for _, o := range r.Orders {
		if want[o.ID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, orderID int64, status string) (bool, error) {
	for _, o := range r.Orders {
		if o.ID == orderID {
			o.OrderStatus = status
			return true, nil
		}
	}
	return false, nil
}

// AdminRepo 管理员仓储的内存实现
type AdminRepo struct {
	Admins []*etadmin.Admin
}

func (r *AdminRepo) Create(_ context.Context, admin *etadmin.Admin) error {
	r.Admins = append(r.Admins, admin)
	return nil
}

func (r *AdminRepo) GetByID(_ context.Context, adminID int64) (*etadmin.Admin, error) {
	for _, a := range r.Admins {
		if a.ID == adminID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepo) GetByUsername(_ context.Context, username string) (*etadmin.Admin, error) {
	for _, a := range r.Admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepo) GetByEmail(_ context.Context, email string) (*etadmin.Admin, error) {
	for _, a := range r.Admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepo) EnsureIndexes(_ context.Context) error {
	return nil
}

// TokenStore token 黑名单的内存实现
type TokenStore struct {
	Blacklisted map[string]bool
}

func NewTokenStore() *TokenStore {
	return &TokenStore{Blacklisted: make(map[string]bool)}
}

func (s *TokenStore) Blacklist(_ context.Context, token string, _ time.Duration) error {
	s.Blacklisted[token] = true
	return nil
}

func (s *TokenStore) IsBlacklisted(_ context.Context, token string) (bool, error) {
	return s.Blacklisted[token], nil
}
