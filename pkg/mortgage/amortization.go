package mortgage

import (
	"math"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
)

// Percentage is the share of the total payment taken by each component.
// The three parts add up to 100 whenever the total is positive.
type Percentage struct {
	PI  float64 `json:"principalInterest"`
	Tax float64 `json:"tax"`
	HOA float64 `json:"hoa"`
}

// Result holds the derived values for one set of inputs.
type Result struct {
	PrincipalInterest float64    `json:"principalInterest"`
	PaymentPerMonth   float64    `json:"paymentPerMonth"`
	Percentage        Percentage `json:"percentage"`
}

// MonthlyPayment returns the fixed monthly installment that repays loan over
// periods months at the given annual interest percent. Zero interest divides
// the loan evenly.
func MonthlyPayment(loan, annualInterest float64, periods int) float64 {
	if periods <= 0 {
		return loan
	}
	if annualInterest == 0 {
		return loan / float64(periods)
	}

	rate := annualInterest / constants.MonthlyRateDivisor
	power := math.Pow(1+rate, float64(periods))
	return loan * rate * power / (power - 1)
}

// TotalRepayment returns everything paid over the term: the amortized loan
// plus tax, insurance and HOA scaled by the term in years.
//
// A term of zero (or less) leaves nothing to amortize: the loan is due at
// once and no recurring costs accrue.
func TotalRepayment(v Values) float64 {
	loan := v.Loan()
	if v.Term <= 0 {
		return loan
	}

	periods := constants.MonthsPerYear * v.Term
	total := loan
	if v.Interest != 0 {
		total = MonthlyPayment(loan, v.Interest, periods) * float64(periods)
	}

	term := float64(v.Term)
	return total + v.Tax*term + v.Insurance*term + v.HOA*term
}

// Amortize returns the total principal and interest repaid and the monthly
// payment, both rounded to cents. With a non-positive term the monthly
// payment is the full amount.
func Amortize(v Values) (principalInterest, paymentPerMonth float64) {
	total := TotalRepayment(v)
	principalInterest = mathutil.Round(total)

	if v.Term <= 0 {
		return principalInterest, principalInterest
	}
	periods := float64(constants.MonthsPerYear * v.Term)
	return principalInterest, mathutil.Round(total / periods)
}

// Breakdown splits principalInterest + tax + hoa into percentages. A zero
// total yields all-zero percentages.
func Breakdown(principalInterest, tax, hoa float64) Percentage {
	total := principalInterest + tax + hoa
	if total == 0 || !mathutil.IsFinite(total) {
		return Percentage{}
	}
	return Percentage{
		PI:  mathutil.CalculatePercentage(principalInterest, total),
		Tax: mathutil.CalculatePercentage(tax, total),
		HOA: mathutil.CalculatePercentage(hoa, total),
	}
}

// Compute runs the amortization and the breakdown for v.
func Compute(v Values) Result {
	pi, monthly := Amortize(v)
	return Result{
		PrincipalInterest: pi,
		PaymentPerMonth:   monthly,
		Percentage:        Breakdown(pi, v.Tax, v.HOA),
	}
}

// Cumulative returns the running totals p_i, p_i+tax and p_i+tax+hoa used to
// stack the circular graph bands.
func (p Percentage) Cumulative() [3]float64 {
	return [3]float64{p.PI, p.PI + p.Tax, p.PI + p.Tax + p.HOA}
}

// Sum returns the total of all three shares.
func (p Percentage) Sum() float64 {
	return p.PI + p.Tax + p.HOA
}
