// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from strings
// and converting between paise and rupee representations.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalToPaise converts a decimal string to paise with proper rounding.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. A third
// decimal digit of 6 or more rounds up; 5 or less is dropped. The result is
// always positive paise. Returns an error for invalid formats, negative
// values, or zero amounts.
//
// Examples:
//
//	ParseDecimalToPaise("12.34") -> 1234, nil
//	ParseDecimalToPaise("12,34") -> 1234, nil
//	ParseDecimalToPaise("12.345") -> 1234, nil (rounds down)
//	ParseDecimalToPaise("12.346") -> 1235, nil (rounds up)
func ParseDecimalToPaise(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only positive values allowed
		return 0, ErrInvalidAmount
	}
	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	// Convert integer part - check for overflow
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	// Take first two fractional digits; a third digit above 5 rounds up
	var fracPaise int64 = 0
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracPaise = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracPaise += d2
			if len(fracPart) > 2 {
				if fracPart[2] > '5' {
					fracPaise++
				}
			}
		}
	}
	paise := iv*100 + fracPaise
	if paise <= 0 {
		return 0, ErrInvalidAmount
	}
	return paise, nil
}

// Rupees returns the rupee value as a float64 for display purposes.
// Use paise for calculations to avoid floating-point precision issues.
func (m Money) Rupees() float64 {
	return float64(m.Paise) / 100.0
}

// String formats the amount as rupees with two decimals.
func (m Money) String() string {
	sign := ""
	p := m.Paise
	if p < 0 {
		sign = "-"
		p = -p
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, p/100, p%100)
}

// MonthlyEquivalent normalizes a recurring amount to its monthly cost:
// the amount itself for a monthly cycle, half-up amount/12 for a yearly
// cycle. A yearly ₹1499 contributes ₹124.92 (149900 -> 12492 paise).
func MonthlyEquivalent(amount Money, cycle BillingCycle) Money {
	if cycle == Yearly {
		return Money{Paise: (amount.Paise + 6) / 12}
	}
	return amount
}
