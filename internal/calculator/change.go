package calculator

// Change describes which field the user edited and its new raw value. The
// set of variants is closed; Calculator.Apply handles each one.
type Change interface {
	// Field is the edited field, or "" for a bare recompute.
	Field() Field
	// RawValue is the edited field's new content.
	RawValue() string

	sealed()
}

// InterestSliderChanged copies the slider into the interest text.
type InterestSliderChanged struct{ Value string }

// PriceSliderChanged reformats the price text and rederives the downpayment
// from the current percentage.
type PriceSliderChanged struct{ Value string }

// DownpaymentSliderChanged updates the percentage text and rederives the
// downpayment amount.
type DownpaymentSliderChanged struct{ Value string }

// InterestTextChanged moves the interest slider to the typed rate.
type InterestTextChanged struct{ Value string }

// PriceTextChanged moves the price slider and rederives the downpayment.
type PriceTextChanged struct{ Value string }

// DownpaymentPercentTextChanged moves the downpayment slider and rederives
// the downpayment without rounding.
type DownpaymentPercentTextChanged struct{ Value string }

// DownpaymentTextChanged rederives the percentage from a typed amount.
type DownpaymentTextChanged struct{ Value string }

// Recalculate only recomputes. It covers the term selector, tax and HOA
// inputs, and the initial computation (zero Target).
type Recalculate struct {
	Target Field
	Value  string
}

func (c InterestSliderChanged) Field() Field         { return FieldInterestSlider }
func (c PriceSliderChanged) Field() Field            { return FieldPriceSlider }
func (c DownpaymentSliderChanged) Field() Field      { return FieldDownpaymentSlider }
func (c InterestTextChanged) Field() Field           { return FieldInterestText }
func (c PriceTextChanged) Field() Field              { return FieldPriceText }
func (c DownpaymentPercentTextChanged) Field() Field { return FieldDownpaymentTextP }
func (c DownpaymentTextChanged) Field() Field        { return FieldDownpaymentText }
func (c Recalculate) Field() Field                   { return c.Target }

func (c InterestSliderChanged) RawValue() string         { return c.Value }
func (c PriceSliderChanged) RawValue() string            { return c.Value }
func (c DownpaymentSliderChanged) RawValue() string      { return c.Value }
func (c InterestTextChanged) RawValue() string           { return c.Value }
func (c PriceTextChanged) RawValue() string              { return c.Value }
func (c DownpaymentPercentTextChanged) RawValue() string { return c.Value }
func (c DownpaymentTextChanged) RawValue() string        { return c.Value }
func (c Recalculate) RawValue() string                   { return c.Value }

func (InterestSliderChanged) sealed()         {}
func (PriceSliderChanged) sealed()            {}
func (DownpaymentSliderChanged) sealed()      {}
func (InterestTextChanged) sealed()           {}
func (PriceTextChanged) sealed()              {}
func (DownpaymentPercentTextChanged) sealed() {}
func (DownpaymentTextChanged) sealed()        {}
func (Recalculate) sealed()                   {}

// ChangeFor maps an edited field and its value onto the matching Change.
// Fields without a propagation rule yield Recalculate.
func ChangeFor(field Field, value string) Change {
	switch field {
	case FieldInterestSlider:
		return InterestSliderChanged{Value: value}
	case FieldPriceSlider:
		return PriceSliderChanged{Value: value}
	case FieldDownpaymentSlider:
		return DownpaymentSliderChanged{Value: value}
	case FieldInterestText:
		return InterestTextChanged{Value: value}
	case FieldPriceText:
		return PriceTextChanged{Value: value}
	case FieldDownpaymentTextP:
		return DownpaymentPercentTextChanged{Value: value}
	case FieldDownpaymentText:
		return DownpaymentTextChanged{Value: value}
	default:
		return Recalculate{Target: field, Value: value}
	}
}
