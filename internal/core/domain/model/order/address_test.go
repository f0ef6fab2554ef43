package order_test

import (
	"strings"
	"testing"

	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usAddress() order.CheckedAddress {
	return order.CheckedAddress{
		AddressLine1: "1 Infinite Loop",
		City:         "Cupertino",
		ZipCode:      "95014",
		State:        "CA",
		Country:      "US",
	}
}

func TestNewAddress(t *testing.T) {
	t.Run("should accept a US address", func(t *testing.T) {
		a, err := order.NewAddress(usAddress())

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.IsUS())
		assert.Equal(t, "CA", a.State().Value())
		assert.Nil(t, a.AddressLine2())
	})

	t.Run("should keep optional lines", func(t *testing.T) {
		checked := usAddress()
		checked.AddressLine2 = "Building 4"

		a, err := order.NewAddress(checked)

		require.NoError(t, err)
		require.NotNil(t, a.AddressLine2())
		assert.Equal(t, "Building 4", a.AddressLine2().Value())
	})

	t.Run("should accept free-form codes outside the US", func(t *testing.T) {
		a, err := order.NewAddress(order.CheckedAddress{
			AddressLine1: "Unter den Linden 1",
			City:         "Berlin",
			ZipCode:      "10117",
			State:        "Berlin",
			Country:      "DE",
		})

		require.NoError(t, err)
		assert.False(t, a.IsUS())
		assert.Equal(t, "Berlin", a.State().Value())
	})

	t.Run("should accept a non-US address without a region", func(t *testing.T) {
		a, err := order.NewAddress(order.CheckedAddress{
			AddressLine1: "Unter den Linden 1",
			City:         "Berlin",
			ZipCode:      "10117",
			Country:      "DE",
		})

		require.NoError(t, err)
		assert.False(t, a.IsUS())
		assert.Empty(t, a.State().Value())
		assert.Equal(t, "10117", a.ZipCode().Value())
	})

	t.Run("should accept a non-US address without a postal code", func(t *testing.T) {
		a, err := order.NewAddress(order.CheckedAddress{
			AddressLine1: "1 Harbour Road",
			City:         "Hong Kong",
			Country:      "HK",
		})

		require.NoError(t, err)
		assert.Empty(t, a.ZipCode().Value())
	})

	t.Run("should still require a state for a US address", func(t *testing.T) {
		checked := usAddress()
		checked.State = ""

		_, err := order.NewAddress(checked)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a malformed US zip code", func(t *testing.T) {
		checked := usAddress()
		checked.ZipCode = "ABCDE"

		_, err := order.NewAddress(checked)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "ZipCode")
	})

	t.Run("should reject an unknown US state", func(t *testing.T) {
		checked := usAddress()
		checked.State = "ZZ"

		_, err := order.NewAddress(checked)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "State")
	})

	t.Run("should require the first address line", func(t *testing.T) {
		checked := usAddress()
		checked.AddressLine1 = ""

		_, err := order.NewAddress(checked)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "AddressLine1")
	})

	t.Run("should reject an overlong optional line", func(t *testing.T) {
		checked := usAddress()
		checked.AddressLine3 = strings.Repeat("x", 51)

		_, err := order.NewAddress(checked)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "AddressLine3")
	})
}

func TestNewCustomerInfo(t *testing.T) {
	t.Run("should validate all fields", func(t *testing.T) {
		c, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
			FirstName:    "Jane",
			LastName:     "Doe",
			EmailAddress: "jane@example.com",
			VipStatus:    "vip",
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane", c.Name().FirstName.Value())
		assert.Equal(t, "jane@example.com", c.EmailAddress().Value())
		assert.Equal(t, "VIP", c.VipStatus().String())
	})

	t.Run("should report the first invalid field", func(t *testing.T) {
		_, err := order.NewCustomerInfo(order.UnvalidatedCustomerInfo{
			FirstName:    "Jane",
			LastName:     "",
			EmailAddress: "not-an-email",
			VipStatus:    "gold",
		})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "LastName")
		assert.NotContains(t, err.Error(), "EmailAddress")
	})
}
