package assetreturns

import "fmt"

// Estimated dealing costs of a broker account holding foreign stocks.
const (
	FXSpread       = 0.00259669736
	FXCharge       = 0.00998212157
	BuyCommission  = 11.95
	SellCommission = 11.95
)

// Stock is a stock holding growing with its earnings.
//
// Every year the holding grows by 1/PriceToEarnings, then the top-up of that
// year, if any, is added.
type Stock struct {
	Value           float64
	PriceToEarnings float64
	TopUps          []float64 // TopUps[0] is added at the end of the first year
}

// NewStock returns a stock holding bought for value.
func NewStock(value, priceToEarnings float64, topUps ...float64) *Stock {
	return &Stock{
		Value:           value,
		PriceToEarnings: priceToEarnings,
		TopUps:          topUps,
	}
}

func (s *Stock) BuyPrice() float64          { return s.Value }
func (s *Stock) InitialEquityCost() float64 { return s.Value }

// BuyExpenses are the FX costs and commission of the purchase.
func (s *Stock) BuyExpenses() float64 {
	return (FXSpread+FXCharge)*s.Value + BuyCommission
}

// Profits are the earnings compounded over years, top-ups included.
func (s *Stock) Profits(years int) (float64, error) {
	if years < 0 {
		return 0, fmt.Errorf("negative holding period %d: %w", years, ErrInvalidArgument)
	}
	value := s.Value
	for year := 1; year <= years; year++ {
		value *= 1 + 1.0/s.PriceToEarnings
		if year <= len(s.TopUps) {
			value += s.TopUps[year-1]
		}
	}
	return value - s.Value, nil
}

// SaleExpenses are the FX charge and commission. Capital gains are ignored:
// they are usually sheltered.
func (s *Stock) SaleExpenses(salePrice float64, years int) (float64, error) {
	return FXCharge*s.Value + SellCommission, nil
}
