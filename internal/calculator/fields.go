// Package calculator keeps a mortgage calculator's inputs, sliders and
// result displays consistent. A Calculator is bound to one calculator block
// on a page; every edit re-reads the fields, propagates the edit to the
// sibling fields, recomputes the loan totals and renders them back.
package calculator

// Field names one logical element of a calculator block.
type Field string

const (
	FieldTerm               Field = "term"
	FieldInterestText       Field = "interest_text"
	FieldInterestSlider     Field = "interest_slider"
	FieldPriceText          Field = "price_text"
	FieldPriceSlider        Field = "price_slider"
	FieldDownpaymentText    Field = "downpayment_text"
	FieldDownpaymentTextP   Field = "downpayment_text_p"
	FieldDownpaymentSlider  Field = "downpayment_slider"
	FieldTax                Field = "tax"
	FieldHOA                Field = "hoa"
	FieldCurrencySign       Field = "currency_sign"
	FieldSignPosition       Field = "sign_position"
	FieldInfoTerm           Field = "info_term"
	FieldInfoInterest       Field = "info_interest"
	FieldInfoCostInterest   Field = "info_cost_interest"
	FieldInfoCostTotal      Field = "info_cost_total"
	FieldGraphInterest      Field = "graph_interest"
	FieldGraphTax           Field = "graph_tax"
	FieldGraphHOA           Field = "graph_hoa"
)

// Selectors used by the page template.
const (
	BlockSelector         = ".rh_property__mc"
	CostOverGraphSelector = ".mc_cost_over_graph"

	// CostPrefixAttr holds the text shown after the monthly amount in the
	// circular variant (e.g. "/mo").
	CostPrefixAttr = "data-cost-prefix"
	// RadiusAttr is the circle radius attribute of a circular graph band.
	RadiusAttr = "r"
)

var fieldSelectors = []struct {
	field    Field
	selector string
}{
	{FieldTerm, "select.mc_term"},
	{FieldInterestText, ".mc_interset"},
	{FieldInterestSlider, ".mc_interset_slider"},
	{FieldPriceText, ".mc_home_price"},
	{FieldPriceSlider, ".mc_home_price_slider"},
	{FieldDownpaymentText, ".mc_downpayment"},
	{FieldDownpaymentTextP, ".mc_downpayment_percent"},
	{FieldDownpaymentSlider, ".mc_downpayment_slider"},
	{FieldTax, ".mc_cost_tax_value"},
	{FieldHOA, ".mc_cost_hoa_value"},
	{FieldCurrencySign, ".mc_currency_sign"},
	{FieldSignPosition, ".mc_sign_position"},
	{FieldInfoTerm, ".mc_term_value"},
	{FieldInfoInterest, ".mc_interest_value"},
	{FieldInfoCostInterest, ".mc_cost_interest span"},
	{FieldInfoCostTotal, ".mc_cost_total span"},
	{FieldGraphInterest, ".mc_graph_interest"},
	{FieldGraphTax, ".mc_graph_tax"},
	{FieldGraphHOA, ".mc_graph_hoa"},
}

// Selector returns the CSS selector that locates f inside a block.
func Selector(f Field) (string, bool) {
	for _, fs := range fieldSelectors {
		if fs.field == f {
			return fs.selector, true
		}
	}
	return "", false
}

// Input reports whether f is a form control a visitor edits. Display fields
// and the page's currency settings are written by rendering only.
func (f Field) Input() bool {
	switch f {
	case FieldTerm, FieldInterestText, FieldInterestSlider,
		FieldPriceText, FieldPriceSlider,
		FieldDownpaymentText, FieldDownpaymentTextP, FieldDownpaymentSlider,
		FieldTax, FieldHOA:
		return true
	}
	return false
}

// AllFields lists every field in binding order.
func AllFields() []Field {
	fields := make([]Field, 0, len(fieldSelectors))
	for _, fs := range fieldSelectors {
		fields = append(fields, fs.field)
	}
	return fields
}

// Element is a handle on one element of the presentation surface.
type Element interface {
	// Value is the form value (input value or selected option).
	Value() string
	SetValue(value string)
	SetText(text string)
	SetHTML(html string)
	Attr(name string) (string, bool)
	SetStyle(property, value string)
}

// Block is one calculator container. Find returns nil when nothing inside
// the block matches selector.
type Block interface {
	ID() string
	Find(selector string) Element
}

// Page exposes every calculator block of a surface.
type Page interface {
	Blocks() []Block
}

// GraphVariant selects how the payment breakdown is drawn.
type GraphVariant int

const (
	// BarGraph sets segment widths as percentages.
	BarGraph GraphVariant = iota
	// CircularGraph stacks stroke offsets on concentric circles.
	CircularGraph
)

func (g GraphVariant) String() string {
	if g == CircularGraph {
		return "circular"
	}
	return "bar"
}

// Fields maps logical fields to bound elements. Missing entries are allowed:
// reads return "" and writes are dropped, so templates without optional
// graph elements keep working.
type Fields map[Field]Element

// Bind locates every field inside block. A cost-over-graph element, when
// present, replaces the monthly display and selects the circular variant.
func Bind(block Block) (Fields, GraphVariant) {
	fields := make(Fields, len(fieldSelectors))
	for _, fs := range fieldSelectors {
		if el := block.Find(fs.selector); el != nil {
			fields[fs.field] = el
		}
	}

	variant := BarGraph
	if over := block.Find(CostOverGraphSelector); over != nil {
		fields[FieldInfoCostTotal] = over
		variant = CircularGraph
	}
	return fields, variant
}

// Has reports whether f is bound.
func (f Fields) Has(field Field) bool {
	_, ok := f[field]
	return ok
}

func (f Fields) value(field Field) string {
	if el, ok := f[field]; ok {
		return el.Value()
	}
	return ""
}

func (f Fields) setValue(field Field, value string) {
	if el, ok := f[field]; ok {
		el.SetValue(value)
	}
}

func (f Fields) setText(field Field, text string) {
	if el, ok := f[field]; ok {
		el.SetText(text)
	}
}

func (f Fields) setHTML(field Field, html string) {
	if el, ok := f[field]; ok {
		el.SetHTML(html)
	}
}

func (f Fields) setStyle(field Field, property, value string) {
	if el, ok := f[field]; ok {
		el.SetStyle(property, value)
	}
}

func (f Fields) attr(field Field, name string) (string, bool) {
	if el, ok := f[field]; ok {
		return el.Attr(name)
	}
	return "", false
}
