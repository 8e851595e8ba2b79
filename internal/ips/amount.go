package ips

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

const displayZeroAmount = "0,00"

// MaxAmountDigits bounds the integer part of an amount.
const MaxAmountDigits = 15

var maxAmount = decimal.New(1, MaxAmountDigits)

// CanonicalAmount turns user input such as "1.234,56" into the canonical
// form "1234.56". A lone dot without a comma is taken as the decimal point,
// so canonical input is returned unchanged.
func CanonicalAmount(input string) string {
	s := strings.TrimSpace(input)

	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	return s
}

// PayloadAmount formats a canonical amount with exactly two decimals and no
// grouping, as embedded in the payload.
func PayloadAmount(canonical string) (string, error) {
	d, err := parseAmount(canonical)
	if err != nil {
		return "", err
	}

	return d.StringFixed(amountPlaces), nil
}

// DisplayAmount formats a canonical amount for people: dots group
// thousands and a comma separates decimals. Unparseable input yields "0,00".
func DisplayAmount(canonical string) string {
	d, err := parseAmount(canonical)
	if err != nil {
		return displayZeroAmount
	}

	fixed := d.StringFixed(amountPlaces)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return groupThousands(intPart) + "," + fracPart
}

// ParseAmount returns the numeric value of a canonical amount.
func ParseAmount(canonical string) (decimal.Decimal, error) {
	return parseAmount(canonical)
}

func parseAmount(canonical string) (decimal.Decimal, error) {
	s := strings.TrimSpace(canonical)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty amount", ErrMalformedAmount)
	}

	if strings.ContainsAny(s, "eE") {
		return decimal.Decimal{}, fmt.Errorf("%w: exponent in %q", ErrMalformedAmount, canonical)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %s", ErrMalformedAmount, canonical, err)
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative amount %q", ErrMalformedAmount, canonical)
	}

	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, fmt.Errorf("%w: more than %d integer digits in %q", ErrMalformedAmount, MaxAmountDigits, canonical)
	}

	return d, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder

	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}

		b.WriteString(digits[i : i+3])
	}

	return b.String()
}
