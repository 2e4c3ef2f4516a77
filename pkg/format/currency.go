// Package format renders amounts and percentages the way the calculator
// displays them: en-US digit grouping, no forced decimals, and a currency
// glyph on the configured side.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
	"github.com/iwvelando/mortgage-calc/pkg/numeric"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// SignPosition says on which side of an amount the currency glyph goes.
type SignPosition string

const (
	SignBefore SignPosition = constants.SignPositionBefore
	SignAfter  SignPosition = constants.SignPositionAfter
)

// ParseSignPosition maps a raw field value onto a SignPosition. Only "after"
// moves the glyph behind the amount; blank and unknown values keep it in
// front.
func ParseSignPosition(raw string) SignPosition {
	if strings.TrimSpace(raw) == constants.SignPositionAfter {
		return SignAfter
	}
	return SignBefore
}

// Valid reports whether p is one of the known positions.
func (p SignPosition) Valid() bool {
	return p == SignBefore || p == SignAfter
}

var printer = message.NewPrinter(language.AmericanEnglish)

// fractionScale is 10^MaxFractionDigits.
var fractionScale = math.Pow10(constants.MaxFractionDigits)

// Grouped returns amount with thousands separators and at most three
// fraction digits, trailing zeros dropped (e.g. "1,234.5"). Ties round away
// from zero ("1.0625" -> "1.063").
func Grouped(amount float64) string {
	if !mathutil.IsFinite(amount) {
		amount = 0
	}
	amount = math.Round(amount*fractionScale) / fractionScale
	return printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(constants.MaxFractionDigits)))
}

// Amount returns a grouped amount with the currency sign placed per pos
// (e.g. "$250,000" or "250,000€"). An empty sign falls back to "$".
func Amount(amount float64, sign string, pos SignPosition) string {
	if sign == "" {
		sign = constants.DefaultCurrencySign
	}
	grouped := Grouped(amount)
	if pos == SignAfter {
		return grouped + sign
	}
	return sign + grouped
}

// AmountString normalizes raw text (which may already be formatted) and
// formats it like Amount. Formatting is idempotent: feeding the output back
// in yields the same string.
func AmountString(raw, sign string, pos SignPosition) string {
	return Amount(numeric.ParseFloat(raw), sign, pos)
}

// Percent renders v with two decimals and strips a trailing ".00"
// ("20", "12.50", "33.33"). Ties round up ("12.125" -> "12.13").
func Percent(v float64) string {
	if !mathutil.IsFinite(v) {
		v = 0
	}
	return strings.TrimSuffix(strconv.FormatFloat(mathutil.Round(v), 'f', 2, 64), ".00")
}

// Number renders v in its shortest plain decimal form, as written into
// slider values and informational labels.
func Number(v float64) string {
	if !mathutil.IsFinite(v) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PercentText appends the percent suffix to an already-normalized value.
func PercentText(normalized string) string {
	return normalized + constants.PercentSuffix
}
