package services

import (
	"context"
	"errors"
	"fmt"

	"placeorder/internal/core/domain/model/kernel"
	"placeorder/internal/core/domain/model/order"
	"placeorder/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

const maxConcurrentProductChecks = 8

var (
	// ProductCatalogService describes the catalog when it fails without naming itself.
	ProductCatalogService = order.ServiceInfo{Name: "ProductCatalog"}
	// AddressCheckService describes the address checker when it fails without naming itself.
	AddressCheckService = order.ServiceInfo{Name: "AddressCheck"}
)

// OrderValidator turns untrusted input into a ValidatedOrder.
//
// Errors are always *order.ValidationError or *order.RemoteServiceError.
// Validation stops at the first failure: customer fields, then the shipping
// address, then the billing address, then the lines in submission order.
//
// Example usage:
//
//	validator := services.NewOrderValidator(catalog, addressChecker)
//	validated, err := validator.Validate(ctx, unvalidated)
//	var remote *order.RemoteServiceError
//	if errors.As(err, &remote) {
//	    // a collaborator is down
//	}
type OrderValidator struct {
	catalog   ports.ProductCatalog
	addresses ports.AddressChecker
}

func NewOrderValidator(catalog ports.ProductCatalog, addresses ports.AddressChecker) OrderValidator {
	return OrderValidator{catalog: catalog, addresses: addresses}
}

// Validate checks the shipping and billing addresses concurrently, then the
// lines, whose product existence checks also run concurrently. Results are
// still reported in a fixed order, so the same input always yields the same
// error.
func (v OrderValidator) Validate(ctx context.Context, unvalidated order.UnvalidatedOrder) (order.ValidatedOrder, error) {
	orderID, err := kernel.NewOrderID(unvalidated.OrderID)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(err.Error())
	}

	customerInfo, err := order.NewCustomerInfo(unvalidated.CustomerInfo)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(err.Error())
	}

	shippingAddress, billingAddress, err := v.checkAddresses(
		ctx, unvalidated.ShippingAddress, unvalidated.BillingAddress,
	)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	lines, err := v.validateLines(ctx, unvalidated.Lines)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	validated, err := order.NewValidatedOrder(
		orderID,
		customerInfo,
		shippingAddress,
		billingAddress,
		lines,
		order.NewPricingMethod(unvalidated.PromotionCode),
	)
	if err != nil {
		return order.ValidatedOrder{}, order.NewValidationError(err.Error())
	}

	return validated, nil
}

func (v OrderValidator) checkAddresses(
	ctx context.Context,
	shipping, billing order.UnvalidatedAddress,
) (order.Address, order.Address, error) {
	var (
		g                               errgroup.Group
		shippingChecked, billingChecked order.CheckedAddress
		shippingErr, billingErr         error
	)

	// Each check records its own outcome; a failure of one must not cancel the
	// other, or the cancellation would be reported instead of the real error.
	g.Go(func() error {
		shippingChecked, shippingErr = v.addresses.CheckAddress(ctx, shipping)
		return nil
	})
	g.Go(func() error {
		billingChecked, billingErr = v.addresses.CheckAddress(ctx, billing)
		return nil
	})
	_ = g.Wait()

	shippingAddress, err := toAddress(shippingChecked, shippingErr)
	if err != nil {
		return order.Address{}, order.Address{}, err
	}

	billingAddress, err := toAddress(billingChecked, billingErr)
	if err != nil {
		return order.Address{}, order.Address{}, err
	}

	return shippingAddress, billingAddress, nil
}

func toAddress(checked order.CheckedAddress, checkErr error) (order.Address, error) {
	var remote *order.RemoteServiceError
	switch {
	case checkErr == nil:
	case errors.As(checkErr, &remote):
		return order.Address{}, remote
	case errors.Is(checkErr, order.ErrAddressNotFound):
		return order.Address{}, order.NewValidationError("address not found")
	case errors.Is(checkErr, order.ErrInvalidFormat):
		return order.Address{}, order.NewValidationError("bad format")
	default:
		return order.Address{}, order.NewRemoteServiceError(AddressCheckService, checkErr)
	}

	address, err := order.NewAddress(checked)
	if err != nil {
		return order.Address{}, order.NewValidationError(err.Error())
	}
	return address, nil
}

// draftLine is a line whose local checks passed and whose product still has to
// be confirmed by the catalog.
type draftLine struct {
	orderLineID kernel.OrderLineID
	productCode kernel.ProductCode
	quantity    kernel.OrderQuantity
}

func (v OrderValidator) validateLines(
	ctx context.Context,
	unvalidated []order.UnvalidatedOrderLine,
) ([]order.ValidatedOrderLine, error) {
	// Local checks run first, in order, up to the first failing line. Only the
	// lines before it are sent to the catalog.
	drafts := make([]draftLine, 0, len(unvalidated))
	var localErr error
	for _, line := range unvalidated {
		draft, err := draftOrderLine(line)
		if err != nil {
			localErr = err
			break
		}
		drafts = append(drafts, draft)
	}

	existErrs := v.checkProducts(ctx, drafts)

	lines := make([]order.ValidatedOrderLine, 0, len(drafts))
	for i, draft := range drafts {
		if existErrs[i] != nil {
			return nil, existErrs[i]
		}

		line, err := order.NewValidatedOrderLine(draft.orderLineID, draft.productCode, draft.quantity)
		if err != nil {
			return nil, order.NewValidationError(err.Error())
		}
		lines = append(lines, line)
	}

	if localErr != nil {
		return nil, order.NewValidationError(localErr.Error())
	}

	return lines, nil
}

func draftOrderLine(line order.UnvalidatedOrderLine) (draftLine, error) {
	orderLineID, err := kernel.NewOrderLineID(line.OrderLineID)
	if err != nil {
		return draftLine{}, err
	}

	productCode, err := kernel.NewProductCode(line.ProductCode)
	if err != nil {
		return draftLine{}, err
	}

	quantity, err := kernel.NewOrderQuantity(productCode, line.Quantity)
	if err != nil {
		return draftLine{}, err
	}

	return draftLine{orderLineID: orderLineID, productCode: productCode, quantity: quantity}, nil
}

// checkProducts returns one error slot per draft, nil where the product exists.
func (v OrderValidator) checkProducts(ctx context.Context, drafts []draftLine) []error {
	results := make([]error, len(drafts))

	var g errgroup.Group
	g.SetLimit(maxConcurrentProductChecks)
	for i, draft := range drafts {
		g.Go(func() error {
			results[i] = v.checkProduct(ctx, draft.productCode)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (v OrderValidator) checkProduct(ctx context.Context, code kernel.ProductCode) error {
	exists, err := v.catalog.ProductExists(ctx, code)
	if err != nil {
		var remote *order.RemoteServiceError
		if errors.As(err, &remote) {
			return remote
		}
		return order.NewRemoteServiceError(ProductCatalogService, err)
	}
	if !exists {
		return order.NewValidationError(fmt.Sprintf("invalid product: %s", code.Value()))
	}
	return nil
}
