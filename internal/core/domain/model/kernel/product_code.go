package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/errs"
	"placeorder/internal/pkg/guard"
)

var (
	ErrWidgetCodeIsNotConstructed = errors.New("WidgetCode must be created via NewWidgetCode constructor")
	ErrGizmoCodeIsNotConstructed  = errors.New("GizmoCode must be created via NewGizmoCode constructor")

	widgetCodePattern = regexp.MustCompile(`^W\d{4}$`)
	gizmoCodePattern  = regexp.MustCompile(`^G\d{3}$`)
)

// ProductCode is either a WidgetCode or a GizmoCode. The set of implementations
// is closed; switches over it must handle both and panic on anything else.
type ProductCode interface {
	Value() string
	Validate() error

	isProductCode()
}

// WidgetCode is "W" followed by four digits. Widgets are counted in units.
type WidgetCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewWidgetCode(s string) (WidgetCode, error) {
	value, err := constrained.Like("WidgetCode", widgetCodePattern, s)
	if err != nil {
		return WidgetCode{}, err
	}
	return WidgetCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c WidgetCode) Validate() error { return c.guard.Validate(ErrWidgetCodeIsNotConstructed) }
func (c WidgetCode) Value() string   { return c.value }
func (c WidgetCode) String() string  { return c.value }
func (WidgetCode) isProductCode()    {}

// GizmoCode is "G" followed by three digits. Gizmos are sold by weight.
type GizmoCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewGizmoCode(s string) (GizmoCode, error) {
	value, err := constrained.Like("GizmoCode", gizmoCodePattern, s)
	if err != nil {
		return GizmoCode{}, err
	}
	return GizmoCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c GizmoCode) Validate() error { return c.guard.Validate(ErrGizmoCodeIsNotConstructed) }
func (c GizmoCode) Value() string   { return c.value }
func (c GizmoCode) String() string  { return c.value }
func (GizmoCode) isProductCode()    {}

// NewProductCode classifies s by its leading letter and validates it against
// the pattern of that product kind.
//
// Example:
//
//	code, err := kernel.NewProductCode("G123")
//	// code is a kernel.GizmoCode
func NewProductCode(s string) (ProductCode, error) {
	switch {
	case strings.TrimSpace(s) == "":
		return nil, errs.NewValueIsRequiredErrorWithCause("ProductCode", fmt.Errorf("must not be blank"))
	case strings.HasPrefix(s, "W"):
		code, err := NewWidgetCode(s)
		if err != nil {
			return nil, err
		}
		return code, nil
	case strings.HasPrefix(s, "G"):
		code, err := NewGizmoCode(s)
		if err != nil {
			return nil, err
		}
		return code, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"ProductCode", fmt.Errorf("format not recognized '%s'", s),
		)
	}
}
