// Package services implements the stages of the place-order workflow:
//
//   - OrderValidator: UnvalidatedOrder to ValidatedOrder, consulting the product
//     catalog and the address checker
//   - PriceOrder: ValidatedOrder to PricedOrder, using the pricing function that
//     GetPricingFunction resolves for the order's PricingMethod
//   - AddShippingInfo and FreeVipShipping: shipping cost and method
//   - Acknowledge: renders and sends the customer letter
//   - CreateEvents: the ordered events emitted for a placed order
//
// Apart from the validator and Acknowledge, which call out through ports, the
// stages are pure functions of their input.
package services
