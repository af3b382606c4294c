package scenario

import (
	"fmt"

	"github.com/etnz/assetreturns"
	"github.com/etnz/assetreturns/mortgage"
	"go.uber.org/zap"
)

// Named is an asset ready to be forecast.
type Named struct {
	Name     string
	Asset    assetreturns.Asset
	Mortgage mortgage.Mortgage // nil for stocks
}

// Build turns every asset of the scenario into an investment, in order.
func (s *File) Build(logger *zap.Logger) ([]Named, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	assets := make([]Named, 0, len(s.Assets))
	for _, a := range s.Assets {
		n, err := a.build()
		if err != nil {
			return nil, fmt.Errorf("building %q: %w", a.Name, err)
		}
		fields := []zap.Field{
			zap.String("asset", a.Name),
			zap.String("kind", string(a.Kind)),
			zap.Float64("initialEquity", n.Asset.InitialEquityCost()),
		}
		if n.Mortgage != nil {
			fields = append(fields,
				zap.Float64("principal", n.Mortgage.Principal()),
				zap.Float64("installment", n.Mortgage.MonthlyInstallment()),
			)
		}
		logger.Debug("asset built", fields...)
		assets = append(assets, n)
	}
	return assets, nil
}

func (a Asset) build() (Named, error) {
	if a.Kind == Stock {
		return Named{Name: a.Name, Asset: assetreturns.NewStock(a.Value, a.PriceToEarnings, a.TopUps...)}, nil
	}

	terms := assetreturns.PropertyTerms{
		SecondProperty:     a.SecondProperty,
		FirstTimeBuyer:     a.FirstTimeBuyer,
		Price:              a.Price,
		MonthlyGrossRental: a.MonthlyRental,
		RentalTax:          a.RentalTax,
		MonthsOccupied:     a.MonthsOccupied,
		AgencyFees:         a.Agency,
	}
	build := a.Mortgage.builder()
	rate := a.Mortgage.Rate

	switch a.Kind {
	case LiveIn:
		p, err := assetreturns.LiveInLandlordForecast(terms, a.LTV, build, rate)
		if err != nil {
			return Named{}, err
		}
		return Named{Name: a.Name, Asset: p, Mortgage: p.Mortgage}, nil
	case Leasehold:
		l, err := assetreturns.LeaseholdForecast(assetreturns.LeaseholdTerms{
			PropertyTerms:       terms,
			AnnualServiceCharge: a.ServiceCharge,
			AnnualGroundRent:    a.GroundRent,
			OwnerOccupied:       a.OwnerOccupied == nil || *a.OwnerOccupied,
		}, a.LTV, a.Mortgage.searcher(), build, rate)
		if err != nil {
			return Named{}, err
		}
		return Named{Name: a.Name, Asset: l, Mortgage: l.Mortgage}, nil
	default:
		if a.Mortgage.Search == BuyToLet {
			m, err := mortgage.SearchBuyToLet(build, terms.MonthlyGrossRental, terms.Price, a.LTV, rate)
			if err != nil {
				return Named{}, err
			}
			return Named{Name: a.Name, Asset: assetreturns.NewProperty(terms, m), Mortgage: m}, nil
		}
		p, err := assetreturns.PropertyForecast(terms, a.LTV, build, rate)
		if err != nil {
			return Named{}, err
		}
		return Named{Name: a.Name, Asset: p, Mortgage: p.Mortgage}, nil
	}
}

// builder composes the mortgage variants: repayment or interest only, marked
// as carrying early repayments, then relieved from tax.
func (m *Mortgage) builder() mortgage.Builder {
	var b mortgage.Builder
	switch m.Type {
	case InterestOnly:
		b = mortgage.InterestOnlyBuilder(m.Length)
	default:
		b = mortgage.RepaymentBuilder(m.Length, mortgage.EarlyRepayments(m.EarlyRepayments))
		if len(m.EarlyRepayments) > 0 {
			var taxRate float64
			if m.TaxDeductible != nil {
				taxRate = *m.TaxDeductible
			}
			b = mortgage.EarlyRepaymentBuilder(taxRate, b)
		}
	}
	if m.TaxDeductible != nil {
		b = mortgage.TaxDeductibleBuilder(*m.TaxDeductible, b)
	}
	return b
}

func (m *Mortgage) searcher() mortgage.Searcher {
	if m.Search == BuyToLet {
		return mortgage.SearchBuyToLet
	}
	return mortgage.SearchResidential
}

// Project forecasts every asset over the scenario horizon.
func (s *File) Project(assets []Named) ([]*assetreturns.Projection, error) {
	projections := make([]*assetreturns.Projection, 0, len(assets))
	for _, a := range assets {
		p, err := assetreturns.Project(a.Name, a.Asset, s.Horizon, s.Appreciation, s.Inflation)
		if err != nil {
			return nil, err
		}
		projections = append(projections, p)
	}
	return projections, nil
}
