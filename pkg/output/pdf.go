package output

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	labelWidth   = 80.0
)

// PDFReport renders a single-page quote summary.
type PDFReport struct {
	pdf         *fpdf.Fpdf
	quote       mortgage.Quote
	generatedAt time.Time
	tr          func(string) string
}

// NewPDFReport prepares a report for q dated generatedAt.
func NewPDFReport(q mortgage.Quote, generatedAt time.Time) *PDFReport {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Mortgage quote", true)

	return &PDFReport{
		pdf:         pdf,
		quote:       q,
		generatedAt: generatedAt,
		// Core fonts are cp1252; this keeps signs like € and £ intact.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// PDF writes the quote summary of q to w.
func PDF(w io.Writer, q mortgage.Quote) error {
	return NewPDFReport(q, time.Now()).Write(w)
}

// Write lays out the report and writes it to w.
func (r *PDFReport) Write(w io.Writer) error {
	r.pdf.AddPage()
	r.addHeader()
	r.addTable("Loan summary", Rows(r.quote))
	r.addTable("Payment breakdown", BreakdownRows(r.quote))
	r.addBreakdownBar()

	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (r *PDFReport) addHeader() {
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Mortgage Quote", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", r.generatedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")

	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 0, 0)
	monthly := r.quote.FormatAmount(r.quote.Result.PaymentPerMonth)
	r.pdf.CellFormat(contentWidth, 10, r.tr(monthly+" per month"), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *PDFReport) addTable(title string, rows []Row) {
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, title, "1", 1, "L", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	for _, row := range rows {
		r.pdf.CellFormat(labelWidth, 7, r.tr(row.Label), "LB", 0, "L", false, 0, "")
		r.pdf.CellFormat(contentWidth-labelWidth, 7, r.tr(row.Value), "RB", 1, "R", false, 0, "")
	}
	r.pdf.Ln(6)
}

// addBreakdownBar draws the payment split as one stacked bar.
func (r *PDFReport) addBreakdownBar() {
	pct := r.quote.Result.Percentage
	segments := []struct {
		share   float64
		r, g, b int
	}{
		{pct.PI, 30, 166, 154},
		{pct.Tax, 11, 130, 120},
		{pct.HOA, 200, 200, 200},
	}

	x, y := r.pdf.GetXY()
	for _, seg := range segments {
		width := contentWidth * seg.share / 100
		if width <= 0 {
			continue
		}
		r.pdf.SetFillColor(seg.r, seg.g, seg.b)
		r.pdf.Rect(x, y, width, 8, "F")
		x += width
	}
	r.pdf.Ln(10)
}
