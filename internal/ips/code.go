package ips

import (
	"strconv"
	"strings"
)

const (
	DefaultPaymentCode = 189
	// Electronic payment codes are the paper-slip codes shifted by 100 (189 -> 289).
	electronicCodeOffset = 100
)

// TransformCode derives the payload SF code from the base payment code.
// Empty or non-numeric codes fall back to 189.
func TransformCode(code string) string {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		n = DefaultPaymentCode
	}

	return strconv.Itoa(n + electronicCodeOffset)
}
