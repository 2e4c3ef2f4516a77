package validation

import (
	"strings"
	"testing"
)

func TestValidateTerm(t *testing.T) {
	tests := []struct {
		name       string
		years      int
		expectWarn bool
	}{
		{name: "Thirty years", years: 30, expectWarn: false},
		{name: "One year", years: 1, expectWarn: false},
		{name: "Zero years", years: 0, expectWarn: true},
		{name: "Negative years", years: -5, expectWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateTerm(tt.years)
			if tt.expectWarn && warning == "" {
				t.Errorf("ValidateTerm(%d) expected warning but got none", tt.years)
			}
			if !tt.expectWarn && warning != "" {
				t.Errorf("ValidateTerm(%d) unexpected warning: %s", tt.years, warning)
			}
		})
	}
}

func TestValidateDownpaymentPercent(t *testing.T) {
	tests := []struct {
		name     string
		percent  float64
		contains string
	}{
		{name: "Typical", percent: 20, contains: ""},
		{name: "No downpayment", percent: 0, contains: ""},
		{name: "Full price", percent: 100, contains: ""},
		{name: "Above price", percent: 120.5, contains: "120.5% exceeds"},
		{name: "Negative", percent: -1, contains: "-1% is negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := ValidateDownpaymentPercent(tt.percent)
			if tt.contains == "" {
				if warning != "" {
					t.Errorf("ValidateDownpaymentPercent(%v) unexpected warning: %s", tt.percent, warning)
				}
				return
			}
			if !strings.Contains(warning, tt.contains) {
				t.Errorf("ValidateDownpaymentPercent(%v) = %q, want it to contain %q", tt.percent, warning, tt.contains)
			}
		})
	}
}

func TestValidateSignPosition(t *testing.T) {
	for _, position := range []string{"", "before", "after"} {
		if warning := ValidateSignPosition(position); warning != "" {
			t.Errorf("ValidateSignPosition(%q) unexpected warning: %s", position, warning)
		}
	}
	if warning := ValidateSignPosition("left"); !strings.Contains(warning, "'left'") {
		t.Errorf("ValidateSignPosition(left) = %q", warning)
	}
}

func TestCalculatorDefaults_ValidateAll(t *testing.T) {
	valid := CalculatorDefaults{Term: 30, DownpaymentPercent: 20, SliderStep: 1, SignPosition: "before"}
	if warnings := valid.ValidateAll(); len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	broken := CalculatorDefaults{Term: 0, DownpaymentPercent: 150, SliderStep: 0, SignPosition: "middle"}
	warnings := broken.ValidateAll()
	if len(warnings) != 4 {
		t.Fatalf("Expected 4 warnings, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "sign position") {
		t.Errorf("Expected sign position warning first, got %s", warnings[0])
	}
}
