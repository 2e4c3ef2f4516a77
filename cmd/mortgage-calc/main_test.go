package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calc/internal/config"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"go.uber.org/zap"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    config.LoggingConfig
		override  string
		expectErr bool
	}{
		{name: "Defaults", config: config.LoggingConfig{}},
		{name: "Console debug", config: config.LoggingConfig{Level: "debug", Format: "console"}},
		{name: "Override level", config: config.LoggingConfig{Level: "bogus"}, override: "warn"},
		{name: "Invalid level", config: config.LoggingConfig{Level: "loud"}, expectErr: true},
		{name: "Invalid format", config: config.LoggingConfig{Format: "xml"}, expectErr: true},
		{name: "Output file", config: config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "calc.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("expected logger")
			}
		})
	}
}

func TestLoadConfigurationFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	conf, err := loadConfiguration(constants.DefaultConfigFile)
	if err != nil {
		t.Fatalf("loadConfiguration() error = %v", err)
	}
	if conf.Calculator.Price != constants.DefaultPrice {
		t.Errorf("expected default price, got %v", conf.Calculator.Price)
	}

	if _, err := loadConfiguration(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for an explicit missing config")
	}
}

func TestValueOverrides(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, calc config.CalculatorConfig)
	}{
		{
			name: "No flags keep config",
			args: nil,
			check: func(t *testing.T, calc config.CalculatorConfig) {
				if calc.Price != constants.DefaultPrice || calc.Term != constants.DefaultTerm {
					t.Errorf("unexpected values: %+v", calc)
				}
			},
		},
		{
			name: "Zero values are honored",
			args: []string{"-interest", "0", "-tax", "0"},
			check: func(t *testing.T, calc config.CalculatorConfig) {
				if calc.Interest != 0 {
					t.Errorf("expected interest 0, got %v", calc.Interest)
				}
			},
		},
		{
			name: "Downpayment amount becomes a percentage of the new price",
			args: []string{"-price", "400000", "-downpayment", "100000"},
			check: func(t *testing.T, calc config.CalculatorConfig) {
				if calc.Price != 400000 || calc.DownpaymentPercent != 25 {
					t.Errorf("expected 25%% of 400000, got %v%% of %v", calc.DownpaymentPercent, calc.Price)
				}
			},
		},
		{
			name: "Term and dues",
			args: []string{"-term", "15", "-hoa", "80", "-downpayment-percent", "10"},
			check: func(t *testing.T, calc config.CalculatorConfig) {
				if calc.Term != 15 || calc.HOA != 80 || calc.DownpaymentPercent != 10 {
					t.Errorf("unexpected values: %+v", calc)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			var overrides valueOverrides
			overrides.register(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			calc := config.Default().Calculator
			overrides.apply(fs, &calc)
			tt.check(t, calc)
		})
	}
}

func TestRunQuote(t *testing.T) {
	calc := config.Default().Calculator
	calc.Interest = 0
	pdfPath := filepath.Join(t.TempDir(), "quote.pdf")

	var buf bytes.Buffer
	if err := runQuote(&buf, calc, constants.OutputFormatPretty, pdfPath); err != nil {
		t.Fatalf("runQuote() error = %v", err)
	}
	if !strings.Contains(buf.String(), "$666.67") {
		t.Errorf("expected monthly payment in output:\n%s", buf.String())
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("expected a PDF file")
	}

	calc.Price = -1
	if err := runQuote(&buf, calc, constants.OutputFormatPretty, ""); err == nil {
		t.Error("expected error for a negative price")
	}
}

func TestRunRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	page := `<div class="rh_property__mc"><input class="mc_home_price" value="250000"><p class="mc_cost_total"><span></span></p></div>`
	if err := os.WriteFile(path, []byte(page), 0600); err != nil {
		t.Fatalf("write page: %v", err)
	}

	var buf bytes.Buffer
	if err := runRender(zap.NewNop(), &buf, path); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if !strings.Contains(buf.String(), `value="$250,000"`) {
		t.Errorf("expected formatted price in output:\n%s", buf.String())
	}

	if err := runRender(zap.NewNop(), &buf, ""); err == nil {
		t.Error("expected error without -html")
	}
}
