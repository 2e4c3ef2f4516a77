package calculator

import (
	"fmt"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mathutil"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
	"github.com/iwvelando/mortgage-calc/pkg/numeric"
	"go.uber.org/zap"
)

// Calculator is the state of one calculator block. It is not safe for
// concurrent use; callers deliver events one at a time.
type Calculator struct {
	logger  *zap.Logger
	id      string
	fields  Fields
	variant GraphVariant
	values  mortgage.Values
	result  mortgage.Result
}

// NewCalculator binds a calculator to block. Nothing is computed until
// Recompute or Apply is called.
func NewCalculator(logger *zap.Logger, block Block) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Calculator{logger: logger, id: block.ID()}
	c.Rebind(block)
	return c
}

// Rebind points the field map at block's elements, keeping the calculator
// itself.
func (c *Calculator) Rebind(block Block) {
	c.fields, c.variant = Bind(block)
	c.logger.Debug(fmt.Sprintf("bound calculator %s with %d fields", c.id, len(c.fields)),
		zap.String("op", "calculator.Rebind"),
		zap.String("variant", c.variant.String()),
	)
}

// ID returns the identity of the bound block.
func (c *Calculator) ID() string { return c.id }

// Variant returns the graph variant detected at binding.
func (c *Calculator) Variant() GraphVariant { return c.variant }

// Fields returns the bound field map.
func (c *Calculator) Fields() Fields { return c.fields }

// Values returns the last input snapshot.
func (c *Calculator) Values() mortgage.Values { return c.values }

// Result returns the last computed totals.
func (c *Calculator) Result() mortgage.Result { return c.result }

// Apply writes the change into its field, propagates it to the dependent
// fields and recomputes.
func (c *Calculator) Apply(change Change) {
	if change == nil {
		change = Recalculate{}
	}
	if field := change.Field(); field.Input() {
		c.fields.setValue(field, change.RawValue())
	}
	c.values = ReadValues(c.fields)

	v := c.values
	switch ch := change.(type) {
	case InterestSliderChanged:
		c.fields.setValue(FieldInterestText, format.PercentText(ch.Value))

	case PriceSliderChanged:
		c.fields.setValue(FieldPriceText, c.amount(numeric.ParseFloat(ch.Value)))
		c.setDownpayment(mathutil.RoundHalfUp(mathutil.ApplyPercentage(numeric.ParseFloat(ch.Value), v.DownpaymentPercent)))

	case DownpaymentSliderChanged:
		c.fields.setValue(FieldDownpaymentTextP, format.PercentText(ch.Value))
		c.setDownpayment(mathutil.RoundHalfUp(mathutil.ApplyPercentage(v.Price, numeric.ParseFloat(ch.Value))))

	case InterestTextChanged:
		c.fields.setValue(FieldInterestSlider, format.Number(v.Interest))

	case PriceTextChanged:
		c.fields.setValue(FieldPriceSlider, format.Number(v.Price))
		c.setDownpayment(mathutil.RoundHalfUp(mathutil.ApplyPercentage(v.Price, v.DownpaymentPercent)))

	case DownpaymentPercentTextChanged:
		c.fields.setValue(FieldDownpaymentSlider, format.Number(v.DownpaymentPercent))
		c.setDownpayment(mathutil.ApplyPercentage(v.Price, v.DownpaymentPercent))

	case DownpaymentTextChanged:
		price := mathutil.Max(v.Price, v.Downpayment)
		percent := format.Percent(mathutil.CalculatePercentage(v.Downpayment, price))
		c.fields.setValue(FieldDownpaymentTextP, format.PercentText(percent))
		c.fields.setValue(FieldDownpaymentSlider, percent)

	case Recalculate:
	}

	c.logger.Debug(fmt.Sprintf("applied %T to calculator %s", change, c.id),
		zap.String("op", "calculator.Apply"),
		zap.String("field", string(change.Field())),
	)

	c.Recompute()
}

// Recompute re-reads the inputs, recomputes the totals and renders them.
func (c *Calculator) Recompute() mortgage.Result {
	c.values = ReadValues(c.fields)
	c.result = mortgage.Compute(c.values)
	c.render()

	c.logger.Debug(fmt.Sprintf("calculator %s: %.2f per month, %.2f principal and interest",
		c.id, c.result.PaymentPerMonth, c.result.PrincipalInterest),
		zap.String("op", "calculator.Recompute"),
	)
	return c.result
}

// Focus strips a text field down to its numeric content for editing.
func (c *Calculator) Focus(field Field) {
	if !field.Input() {
		return
	}
	c.fields.setValue(field, numeric.Normalize(c.fields.value(field)))
}

// Blur restores display formatting: percent suffixes on the rate and
// downpayment percentage, currency formatting on price and downpayment.
func (c *Calculator) Blur() {
	for _, field := range []Field{FieldInterestText, FieldDownpaymentTextP} {
		if c.fields.Has(field) {
			c.fields.setValue(field, format.PercentText(numeric.Normalize(c.fields.value(field))))
		}
	}
	for _, field := range []Field{FieldPriceText, FieldDownpaymentText} {
		if c.fields.Has(field) {
			c.fields.setValue(field, c.amountString(c.fields.value(field)))
		}
	}
}

func (c *Calculator) setDownpayment(amount float64) {
	c.fields.setValue(FieldDownpaymentText, c.amount(amount))
}

func (c *Calculator) amount(v float64) string {
	return format.Amount(v, c.sign(), c.values.SignPosition)
}

func (c *Calculator) amountString(raw string) string {
	return format.AmountString(raw, c.sign(), c.values.SignPosition)
}

func (c *Calculator) sign() string {
	if c.values.CurrencySign == "" {
		return constants.DefaultCurrencySign
	}
	return c.values.CurrencySign
}
