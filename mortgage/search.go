package mortgage

import "fmt"

const (
	// BenchmarkRate is the stressed annual rate lenders use to test affordability.
	BenchmarkRate = 0.05
	// BuyToLetCoverage is how many times the gross rental must cover the installment.
	BuyToLetCoverage = 1.4
	// ResidentialCeiling is an installment no residential search will ever reach.
	ResidentialCeiling = 999999
)

// Builder builds a mortgage of a given principal at a given annual rate.
type Builder func(principal, annualRate float64) (Mortgage, error)

// RepaymentBuilder builds repayment mortgages over lengthYears.
func RepaymentBuilder(lengthYears int, early EarlyRepayments) Builder {
	return func(principal, annualRate float64) (Mortgage, error) {
		return NewRepayment(principal, lengthYears, annualRate, early)
	}
}

// InterestOnlyBuilder builds interest only mortgages over lengthYears.
func InterestOnlyBuilder(lengthYears int) Builder {
	return func(principal, annualRate float64) (Mortgage, error) {
		return NewInterestOnly(principal, lengthYears, annualRate)
	}
}

// TaxDeductibleBuilder wraps every mortgage built by inner in a TaxDeductible.
func TaxDeductibleBuilder(taxRate float64, inner Builder) Builder {
	return func(principal, annualRate float64) (Mortgage, error) {
		m, err := inner(principal, annualRate)
		if err != nil {
			return nil, err
		}
		return NewTaxDeductible(taxRate, m), nil
	}
}

// EarlyRepaymentBuilder wraps every mortgage built by inner in an EarlyRepayment.
func EarlyRepaymentBuilder(taxRate float64, inner Builder) Builder {
	return func(principal, annualRate float64) (Mortgage, error) {
		m, err := inner(principal, annualRate)
		if err != nil {
			return nil, err
		}
		return NewEarlyRepayment(taxRate, m), nil
	}
}

// Searcher sizes a mortgage for a property.
type Searcher func(build Builder, monthlyGrossRental, propertyPrice, ltv, annualRate float64) (Mortgage, error)

// Search returns the mortgage with the largest principal in [low, high] whose
// installment, at BenchmarkRate, does not exceed ceiling. The returned mortgage
// is built at annualRate.
//
// If nothing above low is affordable, the mortgage is built at low.
func Search(build Builder, ceiling, low, high, annualRate float64) (Mortgage, error) {
	best := low
	for low < high {
		mid := (low + high) / 2
		m, err := build(mid, BenchmarkRate)
		if err != nil {
			return nil, fmt.Errorf("evaluating a %.2f principal: %w", mid, err)
		}
		if m.MonthlyInstallment() > ceiling {
			high = mid - 1
		} else {
			best = mid
			low = mid + 1
		}
	}
	return build(best, annualRate)
}

// SearchBuyToLet sizes a buy to let mortgage: up to ltv of the price, as long
// as the rental covers the stressed installment BuyToLetCoverage times.
func SearchBuyToLet(build Builder, monthlyGrossRental, propertyPrice, ltv, annualRate float64) (Mortgage, error) {
	if err := checkSearch(propertyPrice, ltv); err != nil {
		return nil, err
	}
	if monthlyGrossRental < 0 {
		return nil, fmt.Errorf("negative monthly rental %v: %w", monthlyGrossRental, ErrInvalidArgument)
	}
	return Search(build, monthlyGrossRental/BuyToLetCoverage, 0, propertyPrice*ltv, annualRate)
}

// SearchResidential sizes a residential mortgage: rental income is not
// considered, so it is always ltv of the price.
func SearchResidential(build Builder, _, propertyPrice, ltv, annualRate float64) (Mortgage, error) {
	if err := checkSearch(propertyPrice, ltv); err != nil {
		return nil, err
	}
	return Search(build, ResidentialCeiling, 0, propertyPrice*ltv, annualRate)
}

func checkSearch(propertyPrice, ltv float64) error {
	if propertyPrice < 0 {
		return fmt.Errorf("negative property price %v: %w", propertyPrice, ErrInvalidArgument)
	}
	if ltv < 0 || ltv > 1 {
		return fmt.Errorf("loan to value %v is outside of [0,1]: %w", ltv, ErrInvalidArgument)
	}
	return nil
}
