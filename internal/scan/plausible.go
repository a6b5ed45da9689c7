package scan

import (
	"regexp"
	"strings"
)

// pricePattern matches a price-shaped token: digits, a decimal point, and
// exactly two digits.
var pricePattern = regexp.MustCompile(`\d+\.\d{2}`)

var currencySymbols = []string{"$", "€", "£"}

// receiptVocabulary is the merchant/payment wording that suggests a purchase
// receipt. Kept deliberately broad: this backs a cheap yes/no gate, not a
// classifier with tunable precision.
var receiptVocabulary = []string{
	"total",
	"purchase",
	"price",
	"visa",
	"mastercard",
	"cash",
	"card",
	"payment",
	"walmart",
	"target",
	"costco",
	"safeway",
	"kroger",
	"cvs",
	"walgreens",
	"trader joe",
	"grocery",
	"market",
	"restaurant",
	"cafe",
	"coffee",
	"pizza",
	"food",
}

// LooksLikeReceipt reports whether a recognized-text block plausibly comes
// from a purchase receipt: it contains a price-shaped token, a currency
// symbol, or any receipt/merchant vocabulary. Callers use the answer to
// decide whether to trust parse output or request a retake; a false result
// is a hint, never an error.
func LooksLikeReceipt(text string) bool {
	if pricePattern.MatchString(text) {
		return true
	}
	for _, sym := range currencySymbols {
		if strings.Contains(text, sym) {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, word := range receiptVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
