// Package output provides utilities for formatting and displaying mortgage quotes.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one labelled line of a quote summary.
type Row struct {
	Label string
	Value string
	Raw   float64
}

// Rows lists the quote summary in display order. Raw holds the unformatted
// number behind Value.
func Rows(q mortgage.Quote) []Row {
	v, r := q.Values, q.Result
	return []Row{
		{Label: "Home price", Value: q.FormatAmount(v.Price), Raw: v.Price},
		{Label: "Downpayment", Value: fmt.Sprintf("%s (%s%%)", q.FormatAmount(v.Downpayment), format.Percent(v.DownpaymentPercent)), Raw: v.Downpayment},
		{Label: "Loan amount", Value: q.FormatAmount(q.Loan()), Raw: q.Loan()},
		{Label: "Term", Value: fmt.Sprintf("%d years", v.Term), Raw: float64(v.Term)},
		{Label: "Interest rate", Value: format.Number(v.Interest) + constants.PercentSuffix, Raw: v.Interest},
		{Label: "Property tax", Value: q.FormatAmount(v.Tax) + " / month", Raw: v.Tax},
		{Label: "HOA dues", Value: q.FormatAmount(v.HOA) + " / month", Raw: v.HOA},
		{Label: "Principal & interest", Value: q.FormatAmount(r.PrincipalInterest), Raw: r.PrincipalInterest},
		{Label: "Monthly payment", Value: q.FormatAmount(r.PaymentPerMonth), Raw: r.PaymentPerMonth},
	}
}

// BreakdownRows lists the share of the payment taken by each component.
func BreakdownRows(q mortgage.Quote) []Row {
	pct := q.Result.Percentage
	return []Row{
		{Label: "Principal & interest", Value: format.Percent(pct.PI) + constants.PercentSuffix, Raw: pct.PI},
		{Label: "Tax", Value: format.Percent(pct.Tax) + constants.PercentSuffix, Raw: pct.Tax},
		{Label: "HOA", Value: format.Percent(pct.HOA) + constants.PercentSuffix, Raw: pct.HOA},
	}
}

// Write renders q in the named output format.
func Write(w io.Writer, outputFormat string, q mortgage.Quote) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, q)
	case constants.OutputFormatCSV:
		_, err := io.WriteString(w, CsvString(q))
		return err
	case constants.OutputFormatJSON:
		return JSONFormat(w, q)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, q mortgage.Quote) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("--- Mortgage quote ---\n")
	for _, row := range Rows(q) {
		_, _ = p.Fprintf(&b, "%-21s| %s\n", row.Label, row.Value)
	}
	b.WriteString("\n--- Payment breakdown ---\n")
	for _, row := range BreakdownRows(q) {
		_, _ = p.Fprintf(&b, "%-21s| %s\n", row.Label, row.Value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// CsvString returns the quote in comma-separated value format.
func CsvString(q mortgage.Quote) string {
	var b strings.Builder
	b.WriteString(`"field","value"` + "\n")
	fields := []struct {
		name  string
		value float64
	}{
		{"price", q.Values.Price},
		{"downpayment", q.Values.Downpayment},
		{"downpayment_percent", q.Values.DownpaymentPercent},
		{"loan", q.Loan()},
		{"term", float64(q.Values.Term)},
		{"interest", q.Values.Interest},
		{"tax", q.Values.Tax},
		{"hoa", q.Values.HOA},
		{"principal_interest", q.Result.PrincipalInterest},
		{"payment_per_month", q.Result.PaymentPerMonth},
		{"percent_principal_interest", q.Result.Percentage.PI},
		{"percent_tax", q.Result.Percentage.Tax},
		{"percent_hoa", q.Result.Percentage.HOA},
	}
	for _, field := range fields {
		fmt.Fprintf(&b, `"%s","%.2f"`+"\n", field.name, field.value)
	}
	return b.String()
}

type jsonQuote struct {
	mortgage.Quote
	Loan      float64           `json:"loan"`
	Formatted map[string]string `json:"formatted"`
}

// JSONFormat outputs the quote and its formatted totals as indented JSON.
func JSONFormat(w io.Writer, q mortgage.Quote) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonQuote{
		Quote: q,
		Loan:  q.Loan(),
		Formatted: map[string]string{
			"principalInterest": q.FormatAmount(q.Result.PrincipalInterest),
			"paymentPerMonth":   q.FormatAmount(q.Result.PaymentPerMonth),
			"loan":              q.FormatAmount(q.Loan()),
		},
	})
}
