package etcustomer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerValidate(t *testing.T) {
	valid := &Customer{ID: 301, Name: "Alice Andersson",
		Contact: Contact{Email: "alice@example.com"}, MembershipStatus: "Gold"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&Customer{Name: "Alice"}).Validate(), ErrInvalidCustomerID)
	assert.ErrorIs(t, (&Customer{ID: 301}).Validate(), ErrInvalidName)
}
