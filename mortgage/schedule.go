package mortgage

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidArgument is returned when a mortgage is built or queried outside of its domain.
var ErrInvalidArgument = errors.New("invalid argument")

// EarlyRepayments maps a 1-based month number to the fraction of the
// principal outstanding at the start of that year to repay on top of the
// regular installment.
type EarlyRepayments map[int]float64

// Row is one month of an amortization schedule.
type Row struct {
	Principal      float64 // outstanding at the start of the month
	Interest       float64 // accrued during the month
	Payment        float64 // paid during the month, early repayment included
	EarlyRepayment float64
}

// Balance returns what is left to repay once the month's payment is made.
func (r Row) Balance() float64 { return r.Principal + r.Interest - r.Payment }

// Schedule is the month by month ledger of a loan.
// It is built once by Amortize and cannot be modified afterwards.
type Schedule struct {
	rows []Row
}

// Amortize builds the schedule of a loan of principal over lengthYears, charging
// periodicRate every month and collecting installment plus any early repayment.
//
// A payment never exceeds what is owed, and the last payment settles the
// remaining balance whatever the installment is. An installment too small to
// cover the interest makes the balance grow.
func Amortize(principal float64, lengthYears int, periodicRate, installment float64, early EarlyRepayments) (*Schedule, error) {
	if lengthYears <= 0 {
		return nil, fmt.Errorf("mortgage length must be positive, got %d years: %w", lengthYears, ErrInvalidArgument)
	}
	months := lengthYears * 12
	for month, fraction := range early {
		if month < 1 || month > months {
			return nil, fmt.Errorf("early repayment month %d is outside of 1..%d: %w", month, months, ErrInvalidArgument)
		}
		if fraction < 0 || fraction > 1 {
			return nil, fmt.Errorf("early repayment fraction %v for month %d is outside of [0,1]: %w", fraction, month, ErrInvalidArgument)
		}
	}

	rows := make([]Row, months)
	for i := range rows {
		var start float64
		if i == 0 {
			start = principal
		} else {
			start = rows[i-1].Balance()
		}
		row := Row{Principal: start, Interest: start * periodicRate}

		if fraction, ok := early[i+1]; ok {
			yearStart := start
			if i%12 != 0 {
				yearStart = rows[i/12*12].Principal
			}
			row.EarlyRepayment = fraction * yearStart
		}
		row.Payment = min(installment+row.EarlyRepayment, row.Principal+row.Interest)
		rows[i] = row
	}
	last := &rows[months-1]
	last.Payment = last.Principal + last.Interest

	return &Schedule{rows: rows}, nil
}

// Len returns the number of months in the schedule.
func (s *Schedule) Len() int { return len(s.rows) }

// Row returns the i-th month (0-based).
func (s *Schedule) Row(i int) Row { return s.rows[i] }

// Rows returns a copy of all the months.
func (s *Schedule) Rows() []Row {
	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Months iterates over 0-based month indexes and their rows.
func (s *Schedule) Months() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, r := range s.rows {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Balance returns the amount still owed after the scheduled payment of
// month (0-based).
func (s *Schedule) Balance(month int) (float64, error) {
	if month < 0 || month >= len(s.rows) {
		return 0, fmt.Errorf("month %d is outside of the %d months schedule: %w", month, len(s.rows), ErrInvalidArgument)
	}
	return s.rows[month].Balance(), nil
}

// window returns the first years*12 rows.
func (s *Schedule) window(years int) ([]Row, error) {
	if years < 0 || years*12 > len(s.rows) {
		return nil, fmt.Errorf("%d years do not fit in a %d years schedule: %w", years, len(s.rows)/12, ErrInvalidArgument)
	}
	return s.rows[:years*12], nil
}

// Payments sums the payments made during the first years.
func (s *Schedule) Payments(years int) (float64, error) {
	rows, err := s.window(years)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, r := range rows {
		total += r.Payment
	}
	return total, nil
}

// Interest sums the interest accrued during the first years.
func (s *Schedule) Interest(years int) (float64, error) {
	rows, err := s.window(years)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, r := range rows {
		total += r.Interest
	}
	return total, nil
}
