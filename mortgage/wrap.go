package mortgage

// wrapped delegates everything to an inner mortgage but the interest, which
// goes through interest.
type wrapped struct {
	inner    Mortgage
	interest func(float64) float64
}

func (w wrapped) Schedule() *Schedule         { return w.inner.Schedule() }
func (w wrapped) MonthlyInstallment() float64 { return w.inner.MonthlyInstallment() }
func (w wrapped) Principal() float64          { return w.inner.Principal() }
func (w wrapped) LengthYears() int            { return w.inner.LengthYears() }
func (w wrapped) ArrangementFee() float64     { return w.inner.ArrangementFee() }

func (w wrapped) TotalInterest(years int) (float64, error) {
	i, err := w.inner.TotalInterest(years)
	if err != nil {
		return 0, err
	}
	return w.interest(i), nil
}

// Unwrap returns the mortgage being wrapped.
func (w wrapped) Unwrap() Mortgage { return w.inner }

// TaxDeductible is a mortgage whose interest is deductible from taxed income
// at TaxRate.
type TaxDeductible struct {
	wrapped
	TaxRate float64
}

// NewTaxDeductible wraps m, reporting only the share of interest left after tax relief.
func NewTaxDeductible(taxRate float64, m Mortgage) *TaxDeductible {
	return &TaxDeductible{
		wrapped: wrapped{
			inner:    m,
			interest: func(i float64) float64 { return i * (1 - taxRate) },
		},
		TaxRate: taxRate,
	}
}

// EarlyRepayment is a mortgage carrying early repayments, reported as is.
//
// TaxRate is recorded but does not affect the reported interest.
type EarlyRepayment struct {
	wrapped
	TaxRate float64
}

// NewEarlyRepayment wraps m without changing anything it reports.
func NewEarlyRepayment(taxRate float64, m Mortgage) *EarlyRepayment {
	return &EarlyRepayment{
		wrapped: wrapped{
			inner:    m,
			interest: func(i float64) float64 { return i },
		},
		TaxRate: taxRate,
	}
}
