package assetreturns

import "fmt"

// YearPoint is the state of an investment sold after Year years.
type YearPoint struct {
	Year             int
	Nominal          Money   // nominal return
	Percentage       Percent // return on the initial equity
	AnnualPercentage Percent // Percentage annualized
	PercentageGained Percent // Percentage gained during that year only
	Profit           Money   // profits made during that year only
}

// Projection is the year by year outcome of holding an asset.
type Projection struct {
	Name          string
	InitialEquity Money
	Appreciation  Percent
	Inflation     Percent
	Years         []YearPoint // Years[i] is the outcome of selling after i+1 years
}

// Project computes the outcome of selling a after each year from 1 to years.
//
// Returns are relative to the initial equity, so an asset bought without any
// equity cannot be projected.
func Project(name string, a Asset, years int, appreciation, inflation float64) (*Projection, error) {
	if years <= 0 {
		return nil, fmt.Errorf("%s: projection horizon must be positive, got %d: %w", name, years, ErrInvalidArgument)
	}
	equity := a.InitialEquityCost()
	if equity <= 0 {
		return nil, fmt.Errorf("%s: initial equity must be positive, got %v: %w", name, equity, ErrInvalidArgument)
	}
	p := &Projection{
		Name:          name,
		InitialEquity: GBP(equity),
		Appreciation:  Ratio(appreciation),
		Inflation:     Ratio(inflation),
		Years:         make([]YearPoint, 0, years),
	}
	var previousPercentage, previousProfits float64
	for year := 1; year <= years; year++ {
		nominal, err := NominalReturn(a, year, appreciation, inflation)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		profits, err := a.Profits(year)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		percentage := nominal / equity
		p.Years = append(p.Years, YearPoint{
			Year:             year,
			Nominal:          GBP(nominal),
			Percentage:       Ratio(percentage),
			AnnualPercentage: Ratio(annualize(percentage, year)),
			PercentageGained: Ratio(percentage - previousPercentage),
			Profit:           GBP(profits - previousProfits),
		})
		previousPercentage, previousProfits = percentage, profits
	}
	return p, nil
}

// At returns the outcome of selling after year years.
func (p *Projection) At(year int) (YearPoint, bool) {
	if year < 1 || year > len(p.Years) {
		return YearPoint{}, false
	}
	return p.Years[year-1], true
}

func (y YearPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("year", y.Year)
	w.Append("nominal", y.Nominal)
	w.Append("percentage", y.Percentage)
	w.Append("annualPercentage", y.AnnualPercentage)
	w.Append("percentageGained", y.PercentageGained)
	w.Append("profit", y.Profit)
	return w.MarshalJSON()
}

func (p *Projection) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", p.Name)
	w.Append("initialEquity", p.InitialEquity)
	w.Optional("appreciation", p.Appreciation)
	w.Optional("inflation", p.Inflation)
	w.Append("years", p.Years)
	return w.MarshalJSON()
}
