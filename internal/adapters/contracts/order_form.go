// Package contracts defines the JSON shapes the service exchanges with its
// clients and with downstream consumers of its events.
package contracts

import (
	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
)

type CustomerInfoDto struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	VipStatus    string `json:"vipStatus"`
}

type AddressDto struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	State        string `json:"state"`
	Country      string `json:"country"`
}

type OrderFormLineDto struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
}

// OrderFormDto is the order as submitted. Nothing in it is trusted.
type OrderFormDto struct {
	OrderID         string             `json:"orderId"`
	CustomerInfo    CustomerInfoDto    `json:"customerInfo"`
	ShippingAddress AddressDto         `json:"shippingAddress"`
	BillingAddress  AddressDto         `json:"billingAddress"`
	Lines           []OrderFormLineDto `json:"lines"`
	PromotionCode   string             `json:"promotionCode,omitempty"`
}

// ToUnvalidatedOrder copies the form into the workflow's input. It performs no
// checks of its own.
func (f OrderFormDto) ToUnvalidatedOrder() order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(f.Lines))
	for _, l := range f.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: l.OrderLineID,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
		})
	}

	return order.UnvalidatedOrder{
		OrderID: f.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    f.CustomerInfo.FirstName,
			LastName:     f.CustomerInfo.LastName,
			EmailAddress: f.CustomerInfo.EmailAddress,
			VipStatus:    f.CustomerInfo.VipStatus,
		},
		ShippingAddress: f.ShippingAddress.toUnvalidated(),
		BillingAddress:  f.BillingAddress.toUnvalidated(),
		Lines:           lines,
		PromotionCode:   f.PromotionCode,
	}
}

func (a AddressDto) toUnvalidated() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
		State:        a.State,
		Country:      a.Country,
	}
}

// FromAddress renders a validated address; absent optional lines are empty.
func FromAddress(a order.Address) AddressDto {
	return AddressDto{
		AddressLine1: a.AddressLine1().Value(),
		AddressLine2: optional(a.AddressLine2()),
		AddressLine3: optional(a.AddressLine3()),
		AddressLine4: optional(a.AddressLine4()),
		City:         a.City().Value(),
		ZipCode:      a.ZipCode().Value(),
		State:        a.State().Value(),
		Country:      a.Country().Value(),
	}
}

func optional(s *kernel.String50) string {
	if s == nil {
		return ""
	}
	return s.Value()
}
