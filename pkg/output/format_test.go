package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
)

func testQuote(t *testing.T) mortgage.Quote {
	t.Helper()

	q, err := mortgage.NewQuote(mortgage.Values{
		Term:               30,
		Interest:           0,
		Price:              300000,
		DownpaymentPercent: 20,
		Tax:                250,
		HOA:                100,
	})
	if err != nil {
		t.Fatalf("NewQuote() error = %v", err)
	}
	return q
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, testQuote(t)); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	expected := []string{
		"--- Mortgage quote ---",
		"Home price           | $300,000",
		"Downpayment          | $60,000 (20%)",
		"Loan amount          | $240,000",
		"Term                 | 30 years",
		"Interest rate        | 0%",
		"Property tax         | $250 / month",
		"--- Payment breakdown ---",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat missing %q in:\n%s", want, output)
		}
	}
}

func TestCsvString(t *testing.T) {
	csv := CsvString(testQuote(t))
	lines := strings.Split(strings.TrimSpace(csv), "\n")

	if lines[0] != `"field","value"` {
		t.Errorf("unexpected header %s", lines[0])
	}
	if len(lines) != 14 {
		t.Fatalf("expected 14 lines, got %d", len(lines))
	}

	expected := []string{
		`"price","300000.00"`,
		`"downpayment","60000.00"`,
		`"loan","240000.00"`,
		`"term","30.00"`,
	}
	for _, want := range expected {
		if !strings.Contains(csv, want) {
			t.Errorf("CsvString missing %s", want)
		}
	}
}

func TestJSONFormat(t *testing.T) {
	q := testQuote(t)

	var buf bytes.Buffer
	if err := JSONFormat(&buf, q); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded struct {
		Values    mortgage.Values   `json:"values"`
		Result    mortgage.Result   `json:"result"`
		Loan      float64           `json:"loan"`
		Formatted map[string]string `json:"formatted"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}

	if decoded.Loan != 240000 {
		t.Errorf("expected loan 240000, got %v", decoded.Loan)
	}
	if decoded.Result != q.Result {
		t.Errorf("expected result %+v, got %+v", q.Result, decoded.Result)
	}
	if decoded.Formatted["loan"] != "$240,000" {
		t.Errorf("expected formatted loan, got %q", decoded.Formatted["loan"])
	}
}

func TestWrite(t *testing.T) {
	q := testQuote(t)

	tests := []struct {
		format    string
		contains  string
		expectErr bool
	}{
		{format: "pretty", contains: "--- Mortgage quote ---"},
		{format: "csv", contains: `"field","value"`},
		{format: "json", contains: `"paymentPerMonth"`},
		{format: "xml", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, tt.format, q)
			if tt.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output missing %q", tt.contains)
			}
		})
	}
}

func TestBreakdownRows(t *testing.T) {
	rows := BreakdownRows(testQuote(t))
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	var sum float64
	for _, row := range rows {
		sum += row.Raw
		if !strings.HasSuffix(row.Value, "%") {
			t.Errorf("row %s value %q lacks percent sign", row.Label, row.Value)
		}
	}
	if sum < 99.999 || sum > 100.001 {
		t.Errorf("breakdown sums to %v", sum)
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	report := NewPDFReport(testQuote(t), time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	if err := report.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestPDFNonDollarSign(t *testing.T) {
	q := testQuote(t)
	q.Values.CurrencySign = "€"
	q.Values.SignPosition = format.SignAfter

	var buf bytes.Buffer
	if err := PDF(&buf, q); err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected PDF output")
	}
}
