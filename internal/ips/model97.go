package ips

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Model97Code is the reference model whose references carry MOD 97-10 check digits.
const Model97Code = "97"

var (
	big97  = big.NewInt(97)
	big98  = big.NewInt(98)
	big100 = big.NewInt(100)
)

// Model97 returns the reference prefixed with its two ISO 7064 MOD 97-10
// check digits. Letters count as 10..35. Spaces and hyphens are dropped and
// the rest is upper-cased. A reference that does not reduce to a number gets
// "00" as check digits.
func Model97(reference string) string {
	clean := cleanReference(reference)
	if clean == "" {
		return ""
	}

	check, ok := model97CheckDigits(clean)
	if !ok {
		return "00" + clean
	}

	return fmt.Sprintf("%02d", check) + clean
}

func cleanReference(reference string) string {
	var b strings.Builder

	for _, r := range reference {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}

		b.WriteRune(r)
	}

	// Full case mapping: ß becomes SS.
	return cases.Upper(language.Und).String(b.String())
}

func model97CheckDigits(clean string) (int64, bool) {
	var numeral strings.Builder

	for _, r := range clean {
		switch {
		case r >= 'A' && r <= 'Z':
			numeral.WriteString(strconv.Itoa(int(r-'A') + 10))
		default:
			// Digits pass through; anything else makes the numeral unparseable below.
			numeral.WriteRune(r)
		}
	}

	s := numeral.String()
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, false
	}

	// (98 - (N*100 mod 97)) mod 97
	n.Mul(n, big100)
	n.Mod(n, big97)
	n.Sub(big98, n)
	n.Mod(n, big97)

	return n.Int64(), true
}
