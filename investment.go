package assetreturns

import (
	"fmt"
	"math"

	"github.com/etnz/assetreturns/mortgage"
)

// ErrInvalidArgument is returned when a forecast is asked outside of its domain.
var ErrInvalidArgument = mortgage.ErrInvalidArgument

// Asset is an investment held for a number of years and then sold.
type Asset interface {
	// BuyPrice is the price paid for the asset, expenses excluded.
	BuyPrice() float64
	// BuyExpenses are the taxes and fees paid on top of the price when buying.
	BuyExpenses() float64
	// SaleExpenses are the taxes, fees and debts settled out of the sale price
	// when selling after years.
	SaleExpenses(salePrice float64, years int) (float64, error)
	// Profits is the net income cumulated over years of holding.
	Profits(years int) (float64, error)
	// InitialEquityCost is the buyer's own money committed.
	InitialEquityCost() float64
}

// SalePrice is the price of a after years of appreciation at an annual rate.
func SalePrice(a Asset, years int, appreciation float64) float64 {
	return a.BuyPrice() * math.Pow(1+appreciation, float64(years))
}

// NominalReturn is what holding a for years returns on top of the initial
// equity, when its price changes by appreciation every year.
//
// inflation is not taken into account yet.
func NominalReturn(a Asset, years int, appreciation, inflation float64) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("holding period must be positive, got %d years: %w", years, ErrInvalidArgument)
	}
	salePrice := SalePrice(a, years, appreciation)
	saleExpenses, err := a.SaleExpenses(salePrice, years)
	if err != nil {
		return 0, fmt.Errorf("sale expenses after %d years: %w", years, err)
	}
	profits, err := a.Profits(years)
	if err != nil {
		return 0, fmt.Errorf("profits over %d years: %w", years, err)
	}
	return salePrice - saleExpenses - a.BuyExpenses() + profits - a.InitialEquityCost(), nil
}

// PercentageReturn is the nominal return as a ratio of the initial equity.
func PercentageReturn(a Asset, years int, appreciation, inflation float64) (float64, error) {
	nominal, err := NominalReturn(a, years, appreciation, inflation)
	if err != nil {
		return 0, err
	}
	return nominal / a.InitialEquityCost(), nil
}

// AnnualPercentageReturn is the percentage return spread geometrically over
// the years.
//
// A negative total is annualized as its opposite and the sign restored: a
// negative number has no fractional power.
func AnnualPercentageReturn(a Asset, years int, appreciation, inflation float64) (float64, error) {
	total, err := PercentageReturn(a, years, appreciation, inflation)
	if err != nil {
		return 0, err
	}
	return annualize(total, years), nil
}

func annualize(total float64, years int) float64 {
	if total < 0 {
		return -(math.Pow(-total+1, 1/float64(years)) - 1)
	}
	return math.Pow(total+1, 1/float64(years)) - 1
}
