package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// Quote is a validated set of inputs together with their computed result.
type Quote struct {
	Values Values `json:"values"`
	Result Result `json:"result"`
}

// ResolveDownpayment fills in whichever of the downpayment amount and
// percentage is missing. A given amount wins over a given percentage.
func (v Values) ResolveDownpayment() Values {
	switch {
	case v.Downpayment == 0 && v.DownpaymentPercent != 0:
		v.Downpayment = mathutil.RoundHalfUp(mathutil.ApplyPercentage(v.Price, v.DownpaymentPercent))
	case v.Downpayment != 0:
		v.DownpaymentPercent = mathutil.CalculatePercentage(v.Downpayment, mathutil.Max(v.Price, v.Downpayment))
	}
	return v
}

// NewQuote resolves, validates and computes v.
func NewQuote(v Values) (Quote, error) {
	v = v.WithDefaults().ResolveDownpayment()
	if err := v.Validate(); err != nil {
		return Quote{}, fmt.Errorf("invalid mortgage values: %w", err)
	}
	return Quote{Values: v, Result: Compute(v)}, nil
}

// Loan returns the borrowed amount of the quote.
func (q Quote) Loan() float64 {
	return q.Values.Loan()
}

// TotalRepayment returns everything repaid over the term, dues included.
func (q Quote) TotalRepayment() float64 {
	return TotalRepayment(q.Values)
}

// FormatAmount renders amount with the quote's currency sign and position.
func (q Quote) FormatAmount(amount float64) string {
	return format.Amount(amount, q.Values.CurrencySign, q.Values.SignPosition)
}
