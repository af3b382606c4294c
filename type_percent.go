package assetreturns

import "fmt"

// Percent is a ratio expressed in percent: 5 is 5%.
type Percent float64

// Ratio converts a ratio (0.05) to a Percent (5%).
func Ratio(r float64) Percent { return Percent(100 * r) }

// Ratio returns the percent as a ratio (5% is 0.05).
func (p Percent) Ratio() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}
