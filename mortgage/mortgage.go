// Package mortgage simulates UK mortgages month by month.
//
// A Mortgage is built once, with its whole amortization schedule, and is read
// only afterwards. Repayment and InterestOnly are the two installment policies;
// TaxDeductible and EarlyRepayment wrap any other Mortgage and only change how
// its interest is reported.
package mortgage

import (
	"fmt"
	"math"
)

// Arrangement fees charged on top of the interest.
const (
	RepaymentFee    = 1000
	InterestOnlyFee = 2000
)

// Mortgage is what every mortgage variant can tell about itself.
type Mortgage interface {
	// Schedule returns the amortization schedule, shared, never copied.
	Schedule() *Schedule
	MonthlyInstallment() float64
	// Principal is the amount originally borrowed.
	Principal() float64
	LengthYears() int
	ArrangementFee() float64
	// TotalInterest is the interest paid during the first years, as reported
	// by this variant.
	TotalInterest(years int) (float64, error)
}

// TotalPayments sums what has been paid during the first years.
func TotalPayments(m Mortgage, years int) (float64, error) {
	return m.Schedule().Payments(years)
}

// TotalPrincipalPaid is the part of the payments that was not interest.
func TotalPrincipalPaid(m Mortgage, years int) (float64, error) {
	payments, err := TotalPayments(m, years)
	if err != nil {
		return 0, err
	}
	interest, err := m.TotalInterest(years)
	if err != nil {
		return 0, err
	}
	return payments - interest, nil
}

// TotalFees is the cost of the mortgage over the first years: interest and
// arrangement fee.
func TotalFees(m Mortgage, years int) (float64, error) {
	interest, err := m.TotalInterest(years)
	if err != nil {
		return 0, err
	}
	return interest + m.ArrangementFee(), nil
}

// amortized holds the state common to the installment policies.
type amortized struct {
	principal   float64
	lengthYears int
	installment float64
	schedule    *Schedule
}

func (a *amortized) Schedule() *Schedule         { return a.schedule }
func (a *amortized) MonthlyInstallment() float64 { return a.installment }
func (a *amortized) Principal() float64          { return a.principal }
func (a *amortized) LengthYears() int            { return a.lengthYears }

func (a *amortized) TotalInterest(years int) (float64, error) {
	return a.schedule.Interest(years)
}

// InterestOnly only pays the interest each month, the principal is settled
// with the last payment.
type InterestOnly struct {
	amortized
}

// NewInterestOnly returns an interest only mortgage. The periodic rate is the
// annual rate divided by 12, as lenders quote them.
func NewInterestOnly(principal float64, lengthYears int, annualRate float64) (*InterestOnly, error) {
	rate := annualRate / 12
	installment := principal * rate
	s, err := Amortize(principal, lengthYears, rate, installment, nil)
	if err != nil {
		return nil, fmt.Errorf("interest only mortgage: %w", err)
	}
	return &InterestOnly{amortized{
		principal:   principal,
		lengthYears: lengthYears,
		installment: installment,
		schedule:    s,
	}}, nil
}

func (*InterestOnly) ArrangementFee() float64 { return InterestOnlyFee }

// Repayment pays a constant installment that retires the loan at term.
type Repayment struct {
	amortized
	early EarlyRepayments
}

// NewRepayment returns a repayment mortgage. The annual rate is converted to a
// compounded monthly rate. early can be nil.
func NewRepayment(principal float64, lengthYears int, annualRate float64, early EarlyRepayments) (*Repayment, error) {
	if lengthYears <= 0 {
		return nil, fmt.Errorf("repayment mortgage: length must be positive, got %d years: %w", lengthYears, ErrInvalidArgument)
	}
	if early == nil {
		early = EarlyRepayments{}
	}
	rate := math.Pow(1+annualRate, 1.0/12) - 1
	installment := annuity(principal, rate, lengthYears*12)
	s, err := Amortize(principal, lengthYears, rate, installment, early)
	if err != nil {
		return nil, fmt.Errorf("repayment mortgage: %w", err)
	}
	return &Repayment{
		amortized: amortized{
			principal:   principal,
			lengthYears: lengthYears,
			installment: installment,
			schedule:    s,
		},
		early: early,
	}, nil
}

func (*Repayment) ArrangementFee() float64 { return RepaymentFee }

// EarlyRepayments returns a copy of the early repayments the mortgage was built with.
func (r *Repayment) EarlyRepayments() EarlyRepayments {
	early := make(EarlyRepayments, len(r.early))
	for m, f := range r.early {
		early[m] = f
	}
	return early
}

// annuity returns the constant installment repaying principal in n periods.
func annuity(principal, rate float64, n int) float64 {
	if rate == 0 {
		return principal / float64(n)
	}
	f := math.Pow(1+rate, float64(n))
	return principal * f / ((f - 1) / rate)
}
