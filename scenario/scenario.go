// Package scenario reads portfolio scenarios: a YAML description of named
// assets, and the assumptions to forecast them with.
//
//	horizon: 25
//	appreciation: 0.01
//	assets:
//	  - name: Cookham House
//	    kind: leasehold
//	    second_property: true
//	    price: 750000
//	    ltv: 0.75
//	    monthly_rental: 2800
//	    rental_tax: 0.45
//	    months_occupied: 10
//	    agency: 0.2
//	    service_charge: 1500
//	    ground_rent: 90
//	    mortgage:
//	      type: repayment
//	      length: 25
//	      rate: 0.0259
//	      tax_deductible: 0.2
//	  - name: BRK.B
//	    kind: stock
//	    value: 250000
//	    pe: 21.73
package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHorizon is the number of years forecast when a scenario does not say.
const DefaultHorizon = 25

// Kind of asset.
type Kind string

const (
	Property  Kind = "property"  // let property, mortgage sized by search
	Leasehold Kind = "leasehold" // let property with service charge and ground rent
	LiveIn    Kind = "live-in"   // owner lives in and lets rooms, mortgage is ltv of the price
	Stock     Kind = "stock"
)

// Mortgage types.
const (
	Repayment    = "repayment"
	InterestOnly = "interest-only"
)

// Mortgage searches.
const (
	Residential = "residential"
	BuyToLet    = "buy-to-let"
)

// File is a scenario file.
type File struct {
	Horizon      int     `yaml:"horizon,omitempty"`
	Appreciation float64 `yaml:"appreciation,omitempty"`
	Inflation    float64 `yaml:"inflation,omitempty"`
	// ReportYear is the holding period of the summary. Defaults to Horizon.
	ReportYear int     `yaml:"report_year,omitempty"`
	Assets     []Asset `yaml:"assets,omitempty"`
}

// Asset is one named asset of the scenario.
type Asset struct {
	Name string `yaml:"name"`
	Kind Kind   `yaml:"kind"`

	// properties
	SecondProperty bool      `yaml:"second_property,omitempty"`
	FirstTimeBuyer bool      `yaml:"first_time_buyer,omitempty"`
	Price          float64   `yaml:"price,omitempty"`
	LTV            float64   `yaml:"ltv,omitempty"`
	MonthlyRental  float64   `yaml:"monthly_rental,omitempty"`
	RentalTax      float64   `yaml:"rental_tax,omitempty"`
	MonthsOccupied float64   `yaml:"months_occupied,omitempty"`
	Agency         float64   `yaml:"agency,omitempty"`
	ServiceCharge  float64   `yaml:"service_charge,omitempty"`
	GroundRent     float64   `yaml:"ground_rent,omitempty"`
	OwnerOccupied  *bool     `yaml:"owner_occupied,omitempty"` // leasehold only, defaults to true
	Mortgage       *Mortgage `yaml:"mortgage,omitempty"`

	// stocks
	Value           float64   `yaml:"value,omitempty"`
	PriceToEarnings float64   `yaml:"pe,omitempty"`
	TopUps          []float64 `yaml:"top_ups,omitempty"`
}

// Mortgage describes how a property is financed.
type Mortgage struct {
	Type   string  `yaml:"type,omitempty"`
	Length int     `yaml:"length,omitempty"`
	Rate   float64 `yaml:"rate,omitempty"`
	// TaxDeductible is the tax rate at which interest is relieved, if set.
	TaxDeductible   *float64        `yaml:"tax_deductible,omitempty"`
	EarlyRepayments map[int]float64 `yaml:"early_repayments,omitempty"`
	// Search is the mortgage sizing: residential (default) or buy-to-let.
	Search string `yaml:"search,omitempty"`
}

// Load reads and validates the scenario file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return s, nil
}

// Decode reads and validates a scenario. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s File
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	s.defaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes the scenario as YAML.
func Encode(w io.Writer, s *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}
	return enc.Close()
}

func (s *File) defaults() {
	if s.Horizon == 0 {
		s.Horizon = DefaultHorizon
	}
	if s.ReportYear == 0 {
		s.ReportYear = s.Horizon
	}
	for i := range s.Assets {
		a := &s.Assets[i]
		if a.Kind == Leasehold && a.OwnerOccupied == nil {
			yes := true
			a.OwnerOccupied = &yes
		}
		if m := a.Mortgage; m != nil {
			if m.Type == "" {
				m.Type = Repayment
			}
			if m.Search == "" {
				m.Search = Residential
			}
		}
	}
}
