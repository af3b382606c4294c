package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/assetreturns"
	"github.com/etnz/assetreturns/mortgage"
)

// ScheduleMarkdown renders the amortization schedule of m, month by month or
// aggregated per year.
func ScheduleMarkdown(title string, m mortgage.Mortgage, yearly bool) string {
	var b strings.Builder
	s := m.Schedule()
	gbp := assetreturns.GBP

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Borrowed %s over %d years, paying %s a month. Arrangement fee: %s.\n\n",
		gbp(m.Principal()), m.LengthYears(), gbp(m.MonthlyInstallment()), gbp(m.ArrangementFee()))

	if yearly {
		fmt.Fprintln(&b, "| Year | Owed | Interest | Payments | Early Repayments | Balance |")
		fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
		var year mortgage.Row
		for i, r := range s.Months() {
			if i%12 == 0 {
				year = mortgage.Row{Principal: r.Principal}
			}
			year.Interest += r.Interest
			year.Payment += r.Payment
			year.EarlyRepayment += r.EarlyRepayment
			if i%12 == 11 {
				fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
					i/12+1, gbp(year.Principal), gbp(year.Interest), gbp(year.Payment),
					gbp(year.EarlyRepayment).SignedString(), gbp(r.Balance()))
			}
		}
	} else {
		fmt.Fprintln(&b, "| Month | Owed | Interest | Payment | Early Repayment | Balance |")
		fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
		for i, r := range s.Months() {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
				i+1, gbp(r.Principal), gbp(r.Interest), gbp(r.Payment),
				gbp(r.EarlyRepayment).SignedString(), gbp(r.Balance()))
		}
	}

	payments, err := mortgage.TotalPayments(m, m.LengthYears())
	if err != nil {
		return fmt.Sprintf("error computing payments: %v", err)
	}
	interest, err := m.TotalInterest(m.LengthYears())
	if err != nil {
		return fmt.Sprintf("error computing interest: %v", err)
	}
	fmt.Fprintf(&b, "\nTotal paid: %s, of which interest: %s.\n", gbp(payments), gbp(interest))

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\nEarly repayments:\n\n")
		found := false
		for i, r := range s.Months() {
			if r.EarlyRepayment > 0 {
				fmt.Fprintf(w, "- month %d: %s\n", i+1, gbp(r.EarlyRepayment))
				found = true
			}
		}
		return found
	})

	return b.String()
}
