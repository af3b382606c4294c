package assetreturns

import (
	"fmt"

	"github.com/etnz/assetreturns/mortgage"
)

// Solicitor fees.
const (
	PurchaseSolicitorFees = 3776
	SaleSolicitorFees     = 4000
)

// PropertyTerms describes a property bought to let.
type PropertyTerms struct {
	SecondProperty     bool
	FirstTimeBuyer     bool
	Price              float64
	MonthlyGrossRental float64
	RentalTax          float64 // share of the rental paid in income tax
	MonthsOccupied     float64 // per year
	AgencyFees         float64 // share of the rental paid to the letting agency
}

// Property is a mortgaged property, let for a number of months every year.
type Property struct {
	PropertyTerms
	Mortgage mortgage.Mortgage

	buyExpenses float64
}

// NewProperty returns a property bought with m.
func NewProperty(terms PropertyTerms, m mortgage.Mortgage) *Property {
	return &Property{
		PropertyTerms: terms,
		Mortgage:      m,
		buyExpenses:   StampDuty(terms.SecondProperty, terms.Price, terms.FirstTimeBuyer) + PurchaseSolicitorFees,
	}
}

func (p *Property) BuyPrice() float64    { return p.Price }
func (p *Property) BuyExpenses() float64 { return p.buyExpenses }

// InitialEquityCost is the deposit: the part of the price not borrowed.
func (p *Property) InitialEquityCost() float64 { return p.Price - p.Mortgage.Principal() }

// NetRental is the rental left after agency fees and tax over years.
func (p *Property) NetRental(years int) float64 {
	return p.MonthlyGrossRental * p.MonthsOccupied * float64(years) * (1 - p.AgencyFees - p.RentalTax)
}

// Profits is the net rental minus the cost of the mortgage. Past the
// mortgage term there is no more cost.
func (p *Property) Profits(years int) (float64, error) {
	fees, err := mortgage.TotalFees(p.Mortgage, min(years, p.Mortgage.LengthYears()))
	if err != nil {
		return 0, fmt.Errorf("mortgage fees: %w", err)
	}
	return p.NetRental(years) - fees, nil
}

// SaleExpenses are the capital gains tax, the solicitor, and the mortgage
// balance still owed after years.
func (p *Property) SaleExpenses(salePrice float64, years int) (float64, error) {
	payoff, err := p.Payoff(years)
	if err != nil {
		return 0, err
	}
	return CapitalGains(true, salePrice-p.Price) + SaleSolicitorFees + payoff, nil
}

// Payoff is the balance to repay when selling after years.
func (p *Property) Payoff(years int) (float64, error) {
	s := p.Mortgage.Schedule()
	if s.Len() <= years*12 {
		return 0, nil
	}
	return s.Balance(years*12 - 1)
}

// LeaseholdTerms adds the leaseholder's charges to a property.
type LeaseholdTerms struct {
	PropertyTerms
	AnnualServiceCharge float64
	AnnualGroundRent    float64
	OwnerOccupied       bool // charges are not deductible from the rental
}

// Leasehold is a property paying service charge and ground rent every year.
type Leasehold struct {
	Property
	AnnualServiceCharge float64
	AnnualGroundRent    float64
	OwnerOccupied       bool
}

// NewLeasehold returns a leasehold property bought with m.
func NewLeasehold(terms LeaseholdTerms, m mortgage.Mortgage) *Leasehold {
	return &Leasehold{
		Property:            *NewProperty(terms.PropertyTerms, m),
		AnnualServiceCharge: terms.AnnualServiceCharge,
		AnnualGroundRent:    terms.AnnualGroundRent,
		OwnerOccupied:       terms.OwnerOccupied,
	}
}

// Profits are the property profits minus the charges. A landlord deducts the
// charges from the taxed rental.
func (l *Leasehold) Profits(years int) (float64, error) {
	profits, err := l.Property.Profits(years)
	if err != nil {
		return 0, err
	}
	charges := (l.AnnualServiceCharge + l.AnnualGroundRent) * float64(years)
	if !l.OwnerOccupied {
		charges *= 1 - l.RentalTax
	}
	return profits - charges, nil
}
