// Package kernel provides the constrained value objects shared by the order
// workflow: identifiers, names, contact details, product codes, quantities and
// money amounts.
//
// The package includes:
//   - String50, OrderID, OrderLineID: bounded strings (non-blank, at most 50 chars)
//   - EmailAddress, ZipCode, StateCode: pattern-constrained strings
//   - VipStatus: customer tier (Normal or VIP)
//   - ProductCode: closed union of WidgetCode and GizmoCode
//   - OrderQuantity: closed union of UnitQuantity and KilogramQuantity
//   - Price, BillingAmount: bounded decimals
//   - PromotionCode: the code a customer entered with the order
//
// Constructors never panic on bad input; they return the typed errors of package
// errs. The Must* variants exist for values derived from already validated ones
// and panic when such a derivation breaks an invariant, which indicates a bug.
package kernel
