package kernel

// PromotionCode is the code a customer entered. It is not checked against the
// promotion catalog; an unknown code simply has no price overrides.
type PromotionCode string

func (c PromotionCode) String() string {
	return string(c)
}
