package assetreturns

import (
	"fmt"

	"github.com/etnz/assetreturns/mortgage"
)

// PropertyForecast returns a property financed by the largest residential
// mortgage up to ltv of its price.
func PropertyForecast(terms PropertyTerms, ltv float64, build mortgage.Builder, annualRate float64) (*Property, error) {
	m, err := mortgage.SearchResidential(build, terms.MonthlyGrossRental, terms.Price, ltv, annualRate)
	if err != nil {
		return nil, fmt.Errorf("sizing mortgage: %w", err)
	}
	return NewProperty(terms, m), nil
}

// LeaseholdForecast returns a leasehold property financed by the mortgage
// search finds.
func LeaseholdForecast(terms LeaseholdTerms, ltv float64, search mortgage.Searcher, build mortgage.Builder, annualRate float64) (*Leasehold, error) {
	m, err := search(build, terms.MonthlyGrossRental, terms.Price, ltv, annualRate)
	if err != nil {
		return nil, fmt.Errorf("sizing mortgage: %w", err)
	}
	return NewLeasehold(terms, m), nil
}

// LiveInLandlordForecast returns a property its owner lives in while letting
// rooms: the mortgage is exactly ltv of the price, no affordability check.
func LiveInLandlordForecast(terms PropertyTerms, ltv float64, build mortgage.Builder, annualRate float64) (*Property, error) {
	m, err := build(terms.Price*ltv, annualRate)
	if err != nil {
		return nil, fmt.Errorf("building mortgage: %w", err)
	}
	return NewProperty(terms, m), nil
}
