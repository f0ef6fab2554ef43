package kernel

import (
	"errors"
	"regexp"

	"placeorder/internal/pkg/constrained"
	"placeorder/internal/pkg/guard"
)

var (
	ErrZipCodeIsNotConstructed   = errors.New("ZipCode must be created via a ZipCode constructor")
	ErrStateCodeIsNotConstructed = errors.New("StateCode must be created via a StateCode constructor")

	usZipCodePattern   = regexp.MustCompile(`^\d{5}$`)
	usStateCodePattern = regexp.MustCompile(
		`^(A[KLRZ]|C[AOT]|D[CE]|FL|GA|HI|I[ADLN]|K[SY]|LA|M[ADEINOST]|N[CDEHJMVY]|O[HKR]|P[AR]|RI|S[CD]|T[NX]|UT|V[AIT]|W[AIVY])$`,
	)
)

// ZipCode is a postal code. US codes are exactly five digits; other countries
// accept any bounded string, including none.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewUsZipCode(s string) (ZipCode, error) {
	value, err := constrained.Like("ZipCode", usZipCodePattern, s)
	if err != nil {
		return ZipCode{}, err
	}
	return ZipCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewZipCode accepts any code of up to 50 characters, or a blank one for
// countries without postal codes; Value is then empty.
func NewZipCode(s string) (ZipCode, error) {
	value, _, err := constrained.StringOption("ZipCode", string50MaxLength, s)
	if err != nil {
		return ZipCode{}, err
	}
	return ZipCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

func (z ZipCode) Value() string {
	return z.value
}

// StateCode is a region within a country. US codes are the two-letter postal
// abbreviations; other countries accept any bounded string, including none.
type StateCode struct {
	value string
	guard guard.ConstructorGuard
}

func NewUsStateCode(s string) (StateCode, error) {
	value, err := constrained.Like("State", usStateCodePattern, s)
	if err != nil {
		return StateCode{}, err
	}
	return StateCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// NewStateCode accepts any code of up to 50 characters, or a blank one for
// countries without regions; Value is then empty.
func NewStateCode(s string) (StateCode, error) {
	value, _, err := constrained.StringOption("State", string50MaxLength, s)
	if err != nil {
		return StateCode{}, err
	}
	return StateCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (s StateCode) Validate() error {
	return s.guard.Validate(ErrStateCodeIsNotConstructed)
}

func (s StateCode) Value() string {
	return s.value
}
