package assetreturns

// SecondPropertySurcharge is added to every stamp duty band rate when buying
// an additional property.
const SecondPropertySurcharge = 0.05

// stamp duty bands, each band taxes the value above its lower bound at rate.
var stampDutyBands = []struct {
	lower float64
	rate  float64
}{
	{0, 0.00},
	{125000, 0.02},
	{250000, 0.05},
	{925000, 0.10},
	{1500000, 0.12},
}

// First time buyer relief.
const (
	firstTimeBuyerThreshold = 300000
	firstTimeBuyerCeiling   = 500000
	firstTimeBuyerRate      = 0.05
)

// Capital gains.
const (
	CapitalGainsAllowance    = 12300
	propertyCapitalGainsRate = 0.28
	otherCapitalGainsRate    = 0.20
)

// StampDuty returns the stamp duty land tax due when buying a property of a
// given value.
//
// First time buyers pay nothing up to 300k and 5% of the excess up to 500k;
// above 500k, or on a second property, the relief does not apply.
func StampDuty(secondProperty bool, value float64, firstTimeBuyer bool) float64 {
	if value <= 0 {
		return 0
	}
	if firstTimeBuyer && !secondProperty && value <= firstTimeBuyerCeiling {
		if value <= firstTimeBuyerThreshold {
			return 0
		}
		return (value - firstTimeBuyerThreshold) * firstTimeBuyerRate
	}

	var tax float64
	remaining := value
	for i := len(stampDutyBands) - 1; i >= 0; i-- {
		band := stampDutyBands[i]
		if band.lower >= remaining {
			continue
		}
		rate := band.rate
		if secondProperty {
			rate += SecondPropertySurcharge
		}
		tax += (remaining - band.lower) * rate
		remaining = band.lower
	}
	return tax
}

// CapitalGains returns the capital gains tax due on a gain, after the annual allowance.
func CapitalGains(property bool, gain float64) float64 {
	if gain <= CapitalGainsAllowance {
		return 0
	}
	rate := otherCapitalGainsRate
	if property {
		rate = propertyCapitalGainsRate
	}
	return (gain - CapitalGainsAllowance) * rate
}
