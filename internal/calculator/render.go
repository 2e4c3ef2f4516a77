package calculator

import (
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/format"
)

func (c *Calculator) render() {
	v, r := c.values, c.result

	c.fields.setText(FieldInfoTerm, strconv.Itoa(v.Term))
	c.fields.setText(FieldInfoInterest, format.Number(v.Interest))
	c.fields.setText(FieldInfoCostInterest, c.amount(r.PrincipalInterest))

	monthly := c.amount(r.PaymentPerMonth)
	if c.variant == CircularGraph {
		prefix, _ := c.fields.attr(FieldInfoCostTotal, CostPrefixAttr)
		c.fields.setHTML(FieldInfoCostTotal, "<strong>"+html.EscapeString(monthly)+"</strong>"+prefix)

		bands := r.Percentage.Cumulative()
		c.updateCircle(FieldGraphInterest, bands[0])
		c.updateCircle(FieldGraphTax, bands[1])
		c.updateCircle(FieldGraphHOA, bands[2])
		return
	}

	c.fields.setText(FieldInfoCostTotal, monthly)
	c.fields.setStyle(FieldGraphInterest, "width", format.Number(r.Percentage.PI)+constants.PercentSuffix)
	c.fields.setStyle(FieldGraphTax, "width", format.Number(r.Percentage.Tax)+constants.PercentSuffix)
	c.fields.setStyle(FieldGraphHOA, "width", format.Number(r.Percentage.HOA)+constants.PercentSuffix)
}

// updateCircle draws the band of a circular graph that ends at percent.
func (c *Calculator) updateCircle(field Field, percent float64) {
	if !c.fields.Has(field) {
		return
	}
	radius, _ := c.fields.attr(field, RadiusAttr)
	dasharray, dashoffset := CircleStroke(parseRadius(radius), percent)
	c.fields.setStyle(field, "stroke-dasharray", format.Number(dasharray))
	c.fields.setStyle(field, "stroke-dashoffset", format.Number(dashoffset))
}

// CircleStroke returns the circumference of a circle of radius r and the
// dash offset that leaves percent of it visible.
func CircleStroke(r, percent float64) (circumference, offset float64) {
	circumference = math.Pi * (r * 2)
	offset = ((constants.PercentageMultiplier - percent) / constants.PercentageMultiplier) * circumference
	return circumference, offset
}

func parseRadius(raw string) float64 {
	r, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || r < 0 {
		return 0
	}
	return r
}
