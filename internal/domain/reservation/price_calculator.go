package reservation

// PriceCalculator derives the nightly-rate total for a stay. The core does not
// enforce it against the caller-supplied total; it is used for mismatch reporting.
type PriceCalculator interface {
	ExpectedTotal(pricePerNight Money, stay StayRange) Money
}

type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) ExpectedTotal(pricePerNight Money, stay StayRange) Money {
	return pricePerNight.Times(stay.Nights())
}
