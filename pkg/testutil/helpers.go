// Package testutil provides common utility functions for testing.
package testutil

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/iwvelando/mortgage-calc/internal/calculator"
)

// FindCalculator finds a calculator by block id in the calcs slice.
// Returns nil if none matches.
func FindCalculator(calcs []*calculator.Calculator, id string) *calculator.Calculator {
	for _, calc := range calcs {
		if calc.ID() == id {
			return calc
		}
	}
	return nil
}

// ParseHTML parses the provided HTML payload into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
