package ips

import (
	"strings"
)

const (
	AccountLength  = 18
	bankCodeLength = 3
)

// NormalizeAccount keeps only digits, preserves the 3-digit bank code and
// left-pads the rest with zeros so that the result has 18 digits.
// Inputs longer than 18 digits lose their trailing digits.
func NormalizeAccount(raw string) string {
	cleaned := digitsOnly(raw)
	if cleaned == "" {
		return ""
	}

	if len(cleaned) <= bankCodeLength {
		return truncate(cleaned+strings.Repeat("0", AccountLength-bankCodeLength), AccountLength)
	}

	bank, rest := cleaned[:bankCodeLength], cleaned[bankCodeLength:]
	if pad := AccountLength - bankCodeLength - len(rest); pad > 0 {
		rest = strings.Repeat("0", pad) + rest
	}

	return truncate(bank+rest, AccountLength)
}

// FormatAccountDisplay renders an account as bank-number-control groups,
// e.g. 160-0000000000123-45.
func FormatAccountDisplay(account string) string {
	cleaned := digitsOnly(account)

	switch {
	case len(cleaned) <= 3:
		return cleaned
	case len(cleaned) <= 16:
		return cleaned[:3] + "-" + cleaned[3:]
	default:
		return cleaned[:3] + "-" + cleaned[3:16] + "-" + cleaned[16:]
	}
}

// DigitCount returns the number of ASCII digits in s.
func DigitCount(s string) int {
	return len(digitsOnly(s))
}

func digitsOnly(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}
