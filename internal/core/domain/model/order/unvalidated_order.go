package order

// UnvalidatedOrder is the order as submitted by a client. Nothing in it has
// been checked.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
	PromotionCode   string
}

type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
	VipStatus    string
}

type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
	State        string
	Country      string
}

type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    float64
}
