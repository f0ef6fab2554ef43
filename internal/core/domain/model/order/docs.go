// Package order holds the records that flow through the place-order workflow.
// Each stage produces a new, more refined record and never mutates its input:
//
//	UnvalidatedOrder -> ValidatedOrder -> PricedOrder -> PricedOrderWithShippingMethod
//
// The package includes:
//   - UnvalidatedOrder and friends: raw, untrusted input owned by the caller
//   - ValidatedOrder: every field replaced by a constrained kernel type, plus the
//     PricingMethod resolved from the promotion code
//   - PricedOrder: per-line prices (ProductLine or CommentLine) and the amount to bill
//   - PricedOrderWithShippingMethod: the priced order and its ShippingInfo
//   - OrderAcknowledgment and SendResult: the customer notification
//   - PlaceOrderError: the closed error taxonomy surfaced to callers
//
// PricingMethod, PricedOrderLine and PlaceOrderError are closed unions. Their
// implementations are the types in this package; switches over them handle
// every variant and panic in the default branch.
package order
