package calculator

import (
	"strings"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
	"github.com/iwvelando/mortgage-calc/pkg/numeric"
)

// ReadValues parses the current contents of every bound field. It has no
// side effects. Blank or unparseable numbers read as 0; a blank currency
// sign reads as "$" and a blank sign position as "before".
func ReadValues(fields Fields) mortgage.Values {
	sign := fields.value(FieldCurrencySign)
	if sign == "" {
		sign = constants.DefaultCurrencySign
	}

	position := format.SignPosition(strings.TrimSpace(fields.value(FieldSignPosition)))
	if position == "" {
		position = format.SignBefore
	}

	return mortgage.Values{
		Term:               numeric.ParseInt(fields.value(FieldTerm)),
		Interest:           numeric.ParseFloat(fields.value(FieldInterestText)),
		Price:              numeric.ParseFloat(fields.value(FieldPriceText)),
		Downpayment:        numeric.ParseFloat(fields.value(FieldDownpaymentText)),
		DownpaymentPercent: numeric.ParseFloat(fields.value(FieldDownpaymentTextP)),
		Tax:                numeric.ParseFloat(fields.value(FieldTax)),
		HOA:                numeric.ParseFloat(fields.value(FieldHOA)),
		CurrencySign:       sign,
		SignPosition:       position,
	}
}
