// Package mortgage computes the aggregate totals of a single fixed-rate
// mortgage: total principal and interest repaid over the term, the monthly
// payment, and how the payment splits between principal and interest, tax
// and HOA dues.
package mortgage

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
)

var (
	// ErrInvalidTerm indicates a negative loan term.
	ErrInvalidTerm = errors.New("term must not be negative")
	// ErrNegativeAmount indicates a negative price, downpayment, rate or due.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrDownpaymentExceedsPrice indicates a downpayment larger than the price.
	ErrDownpaymentExceedsPrice = errors.New("downpayment exceeds price")
	// ErrInvalidSignPosition indicates a sign position other than before/after.
	ErrInvalidSignPosition = errors.New("invalid sign position")
)

// Values is a parsed snapshot of every calculator input. Term is in years
// and Interest is an annual percentage.
type Values struct {
	Term               int                 `json:"term" yaml:"term" mapstructure:"term"`
	Interest           float64             `json:"interest" yaml:"interest" mapstructure:"interest"`
	Price              float64             `json:"price" yaml:"price" mapstructure:"price"`
	Downpayment        float64             `json:"downpayment" yaml:"downpayment" mapstructure:"downpayment"`
	DownpaymentPercent float64             `json:"downpaymentPercent" yaml:"downpaymentPercent" mapstructure:"downpaymentPercent"`
	Tax                float64             `json:"tax" yaml:"tax" mapstructure:"tax"`
	HOA                float64             `json:"hoa" yaml:"hoa" mapstructure:"hoa"`
	Insurance          float64             `json:"insurance,omitempty" yaml:"insurance,omitempty" mapstructure:"insurance"`
	CurrencySign       string              `json:"currencySign,omitempty" yaml:"currencySign,omitempty" mapstructure:"currencySign"`
	SignPosition       format.SignPosition `json:"signPosition,omitempty" yaml:"signPosition,omitempty" mapstructure:"signPosition"`
}

// Loan returns the borrowed amount.
func (v Values) Loan() float64 {
	return v.Price - v.Downpayment
}

// Validate checks that the values describe a loan that can be quoted. The
// reactive calculator never calls it; it keeps computing whatever the fields
// hold.
func (v Values) Validate() error {
	if v.Term < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTerm, v.Term)
	}

	amounts := []struct {
		name  string
		value float64
	}{
		{"price", v.Price},
		{"downpayment", v.Downpayment},
		{"interest", v.Interest},
		{"tax", v.Tax},
		{"hoa", v.HOA},
		{"insurance", v.Insurance},
	}
	for _, amount := range amounts {
		if amount.value < 0 {
			return fmt.Errorf("%w: %s is %.2f", ErrNegativeAmount, amount.name, amount.value)
		}
	}

	if v.Downpayment > v.Price {
		return fmt.Errorf("%w: %.2f > %.2f", ErrDownpaymentExceedsPrice, v.Downpayment, v.Price)
	}

	if v.SignPosition != "" && !v.SignPosition.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSignPosition, v.SignPosition)
	}
	return nil
}

// WithDefaults fills the display fields the page may leave blank.
func (v Values) WithDefaults() Values {
	if v.CurrencySign == "" {
		v.CurrencySign = constants.DefaultCurrencySign
	}
	if v.SignPosition == "" {
		v.SignPosition = format.SignBefore
	}
	return v
}
