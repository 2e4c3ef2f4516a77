package validation

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// ValidateTerm warns about terms that leave nothing to amortize.
func ValidateTerm(years int) string {
	if years <= 0 {
		return fmt.Sprintf("Term of %d years makes the loan due at once", years)
	}
	return ""
}

// ValidateDownpaymentPercent warns when the downpayment covers more than the
// price or is negative.
func ValidateDownpaymentPercent(percent float64) string {
	switch {
	case percent < 0:
		return fmt.Sprintf("Downpayment of %s%% is negative", formatFloat(percent))
	case percent > constants.PercentageMultiplier:
		return fmt.Sprintf("Downpayment of %s%% exceeds the price", formatFloat(percent))
	}
	return ""
}

// ValidateSliderStep warns about slider increments that cannot move a slider.
func ValidateSliderStep(step float64) string {
	if step <= 0 {
		return fmt.Sprintf("Slider step %s is not positive, sliders will not move", formatFloat(step))
	}
	return ""
}

// ValidateSignPosition warns about unknown currency sign placements.
func ValidateSignPosition(position string) string {
	switch position {
	case "", constants.SignPositionBefore, constants.SignPositionAfter:
		return ""
	}
	return fmt.Sprintf("Unknown sign position '%s', using '%s'", position, constants.SignPositionBefore)
}

// CalculatorDefaults are the configured starting values checked by ValidateAll.
type CalculatorDefaults struct {
	Term               int
	DownpaymentPercent float64
	SliderStep         float64
	SignPosition       string
}

// ValidateAll validates the calculator defaults and returns warnings
func (d CalculatorDefaults) ValidateAll() []string {
	var warnings []string
	for _, warning := range []string{
		ValidateSignPosition(d.SignPosition),
		ValidateTerm(d.Term),
		ValidateDownpaymentPercent(d.DownpaymentPercent),
		ValidateSliderStep(d.SliderStep),
	} {
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}
	return warnings
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
