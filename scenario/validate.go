package scenario

import (
	"errors"
	"fmt"
)

// Validate reports every problem found in the scenario at once.
func (s *File) Validate() error {
	var errs []error
	if s.Horizon <= 0 {
		errs = append(errs, fmt.Errorf("horizon must be positive, got %d", s.Horizon))
	}
	if s.ReportYear <= 0 || s.ReportYear > s.Horizon {
		errs = append(errs, fmt.Errorf("report year %d is outside of 1..%d", s.ReportYear, s.Horizon))
	}
	if len(s.Assets) == 0 {
		errs = append(errs, errors.New("no assets"))
	}
	names := make(map[string]bool)
	for i, a := range s.Assets {
		if a.Name == "" {
			errs = append(errs, fmt.Errorf("asset #%d has no name", i+1))
		} else if names[a.Name] {
			errs = append(errs, fmt.Errorf("asset %q is declared twice", a.Name))
		}
		names[a.Name] = true
		if err := a.validate(); err != nil {
			errs = append(errs, fmt.Errorf("asset %q: %w", a.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (a Asset) validate() error {
	switch a.Kind {
	case Stock:
		var errs []error
		if a.Value <= 0 {
			errs = append(errs, fmt.Errorf("value must be positive, got %v", a.Value))
		}
		if a.PriceToEarnings == 0 {
			errs = append(errs, errors.New("pe is missing"))
		}
		if a.Mortgage != nil {
			errs = append(errs, errors.New("a stock cannot have a mortgage"))
		}
		return errors.Join(errs...)
	case Property, Leasehold, LiveIn:
	case "":
		return errors.New("kind is missing")
	default:
		return fmt.Errorf("unknown kind %q", a.Kind)
	}

	var errs []error
	if a.Price <= 0 {
		errs = append(errs, fmt.Errorf("price must be positive, got %v", a.Price))
	}
	if a.LTV < 0 || a.LTV > 1 {
		errs = append(errs, fmt.Errorf("ltv %v is outside of [0,1]", a.LTV))
	}
	if a.MonthsOccupied < 0 || a.MonthsOccupied > 12 {
		errs = append(errs, fmt.Errorf("months occupied %v is outside of [0,12]", a.MonthsOccupied))
	}
	for name, v := range map[string]float64{"rental_tax": a.RentalTax, "agency": a.Agency} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s %v is outside of [0,1]", name, v))
		}
	}
	if a.Kind != Leasehold && (a.ServiceCharge != 0 || a.GroundRent != 0) {
		errs = append(errs, errors.New("only a leasehold pays service charge and ground rent"))
	}
	if a.Mortgage == nil {
		errs = append(errs, errors.New("mortgage is missing"))
	} else if err := a.Mortgage.validate(a.Kind); err != nil {
		errs = append(errs, fmt.Errorf("mortgage: %w", err))
	}
	return errors.Join(errs...)
}

func (m Mortgage) validate(kind Kind) error {
	var errs []error
	switch m.Type {
	case Repayment, InterestOnly:
	default:
		errs = append(errs, fmt.Errorf("unknown type %q", m.Type))
	}
	if m.Length <= 0 {
		errs = append(errs, fmt.Errorf("length must be positive, got %d", m.Length))
	}
	if m.TaxDeductible != nil && (*m.TaxDeductible < 0 || *m.TaxDeductible > 1) {
		errs = append(errs, fmt.Errorf("tax_deductible %v is outside of [0,1]", *m.TaxDeductible))
	}
	if len(m.EarlyRepayments) > 0 && m.Type != Repayment {
		errs = append(errs, errors.New("early repayments need a repayment mortgage"))
	}
	for month, fraction := range m.EarlyRepayments {
		if month < 1 || month > m.Length*12 {
			errs = append(errs, fmt.Errorf("early repayment month %d is outside of 1..%d", month, m.Length*12))
		}
		if fraction < 0 || fraction > 1 {
			errs = append(errs, fmt.Errorf("early repayment fraction %v is outside of [0,1]", fraction))
		}
	}
	switch {
	case kind == LiveIn && m.Search != Residential:
		errs = append(errs, errors.New("a live-in property mortgage is not searched"))
	case m.Search != Residential && m.Search != BuyToLet:
		errs = append(errs, fmt.Errorf("unknown search %q", m.Search))
	}
	return errors.Join(errs...)
}
