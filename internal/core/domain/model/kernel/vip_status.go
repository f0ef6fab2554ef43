package kernel

import (
	"fmt"
	"strings"

	"placeorder/internal/pkg/errs"
)

// VipStatus is the customer tier. VIP customers get free shipping.
type VipStatus int

const (
	// UnknownVipStatus is the zero value and never produced by NewVipStatus.
	UnknownVipStatus VipStatus = iota
	Normal
	VIP
)

func getVipStatusStrings() map[VipStatus]string {
	return map[VipStatus]string{
		UnknownVipStatus: "Unknown",
		Normal:           "Normal",
		VIP:              "VIP",
	}
}

// NewVipStatus parses "Normal" or "VIP", ignoring case.
func NewVipStatus(s string) (VipStatus, error) {
	switch {
	case strings.EqualFold(s, "normal"):
		return Normal, nil
	case strings.EqualFold(s, "vip"):
		return VIP, nil
	default:
		return UnknownVipStatus, errs.NewValueIsInvalidErrorWithCause(
			"VipStatus", fmt.Errorf("'%s' must be one of 'Normal', 'VIP'", s),
		)
	}
}

// Validate rejects the zero value and out-of-range integers.
func (v VipStatus) Validate() error {
	if v != Normal && v != VIP {
		return errs.NewValueIsInvalidErrorWithCause("VipStatus", fmt.Errorf("%d is not a valid status", v))
	}
	return nil
}

func (v VipStatus) String() string {
	if str, ok := getVipStatusStrings()[v]; ok {
		return str
	}
	return "Unknown"
}
